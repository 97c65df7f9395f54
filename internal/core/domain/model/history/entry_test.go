package history_test

import (
	"testing"
	"time"

	"shiptracker/internal/core/domain/model/history"
	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("should create valid entry with server-assigned timestamp", func(t *testing.T) {
		before := time.Now().UTC()

		entry, err := history.NewEntry(42, shipment.InTransit, "left the warehouse")

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, int64(0), entry.ID())
		assert.Equal(t, int64(42), entry.OrderID())
		assert.Equal(t, shipment.InTransit, entry.Status())
		assert.Equal(t, "left the warehouse", entry.Note())
		assert.False(t, entry.ChangedAt().Before(before))
		assert.False(t, entry.ChangedAt().After(time.Now().UTC()))
	})

	t.Run("should allow an empty note", func(t *testing.T) {
		entry, err := history.NewEntry(42, shipment.Delivered, "")

		require.NoError(t, err)
		assert.Equal(t, "", entry.Note())
	})

	t.Run("should fail without a shipment identifier", func(t *testing.T) {
		entry, err := history.NewEntry(0, shipment.Pending, "note")

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "order_id")
	})

	t.Run("should fail with a status outside the enumeration", func(t *testing.T) {
		entry, err := history.NewEntry(42, shipment.Status("vanished"), "note")

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestRestoreEntry(t *testing.T) {
	changedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore entry from persisted state", func(t *testing.T) {
		entry, err := history.RestoreEntry(5, 42, shipment.Shipped, "dispatched", changedAt)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, int64(5), entry.ID())
		assert.Equal(t, int64(42), entry.OrderID())
		assert.Equal(t, shipment.Shipped, entry.Status())
		assert.Equal(t, changedAt, entry.ChangedAt())
	})

	t.Run("should fail without identifiers", func(t *testing.T) {
		_, err := history.RestoreEntry(0, 42, shipment.Shipped, "", changedAt)
		require.Error(t, err)

		_, err = history.RestoreEntry(5, 0, shipment.Shipped, "", changedAt)
		require.Error(t, err)
	})
}

func TestEntry_AssignID(t *testing.T) {
	t.Run("should assign the identifier once", func(t *testing.T) {
		entry, err := history.NewEntry(42, shipment.Pending, history.CreationNote)
		require.NoError(t, err)

		require.NoError(t, entry.AssignID(9))
		assert.Equal(t, int64(9), entry.ID())

		require.Error(t, entry.AssignID(10))
		assert.Equal(t, int64(9), entry.ID())
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Run("should fail for nil or zero-value entry", func(t *testing.T) {
		var nilEntry *history.Entry
		require.Error(t, nilEntry.Validate())
		assert.Equal(t, history.ErrEntryIsNotConstructed, nilEntry.Validate())

		var zeroEntry history.Entry
		require.Error(t, zeroEntry.Validate())
	})
}

func TestCreationNote(t *testing.T) {
	t.Run("should carry the fixed creation annotation", func(t *testing.T) {
		assert.Equal(t, "Order created", history.CreationNote)
	})
}
