package shipment_test

import (
	"fmt"
	"testing"

	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct wire values", func(t *testing.T) {
		assert.Equal(t, "pending", shipment.Pending.String())
		assert.Equal(t, "processing", shipment.Processing.String())
		assert.Equal(t, "shipped", shipment.Shipped.String())
		assert.Equal(t, "in_transit", shipment.InTransit.String())
		assert.Equal(t, "out_for_delivery", shipment.OutForDelivery.String())
		assert.Equal(t, "delivered", shipment.Delivered.String())
		assert.Equal(t, "cancelled", shipment.Cancelled.String())
	})

	t.Run("should default to pending", func(t *testing.T) {
		assert.Equal(t, shipment.Pending, shipment.DefaultStatus)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all members of the enumeration", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.Pending,
			shipment.Processing,
			shipment.Shipped,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
			shipment.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject values outside the enumeration", func(t *testing.T) {
		invalidStatuses := []shipment.Status{
			"",
			"unknown",
			"PENDING",
			"in transit",
			"returned",
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status %q", string(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid status", string(status)))
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should map the empty string to the default status", func(t *testing.T) {
		status, err := shipment.ParseStatus("")

		require.NoError(t, err)
		assert.Equal(t, shipment.DefaultStatus, status)
	})

	t.Run("should parse every member of the enumeration", func(t *testing.T) {
		rawValues := []string{
			"pending", "processing", "shipped",
			"in_transit", "out_for_delivery",
			"delivered", "cancelled",
		}

		for _, raw := range rawValues {
			t.Run(fmt.Sprintf("should parse %s", raw), func(t *testing.T) {
				status, err := shipment.ParseStatus(raw)

				require.NoError(t, err)
				assert.Equal(t, raw, status.String())
			})
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		status, err := shipment.ParseStatus("teleported")

		require.Error(t, err)
		assert.Equal(t, shipment.Status(""), status)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should not normalize case", func(t *testing.T) {
		_, err := shipment.ParseStatus("Delivered")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report delivered and cancelled as terminal", func(t *testing.T) {
		assert.True(t, shipment.Delivered.IsTerminal())
		assert.True(t, shipment.Cancelled.IsTerminal())
	})

	t.Run("should report all other statuses as non-terminal", func(t *testing.T) {
		nonTerminal := []shipment.Status{
			shipment.Pending,
			shipment.Processing,
			shipment.Shipped,
			shipment.InTransit,
			shipment.OutForDelivery,
		}

		for _, status := range nonTerminal {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}
