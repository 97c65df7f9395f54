package queries_test

import (
	"testing"

	"shiptracker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchShipmentsQuery_Valid(t *testing.T) {
	query := queries.NewSearchShipmentsQuery("alice", 1, 10)
	err := query.Validate()
	require.NoError(t, err)
	assert.Equal(t, "alice", query.Term())
}

func TestNewSearchShipmentsQuery_TrimsTerm(t *testing.T) {
	query := queries.NewSearchShipmentsQuery("  555-0100  ", 1, 10)
	assert.Equal(t, "555-0100", query.Term())
}

func TestNewSearchShipmentsQuery_AllowsBlankTerm(t *testing.T) {
	// A blank term is not an error; it matches everything.
	query := queries.NewSearchShipmentsQuery("   ", 1, 10)
	require.NoError(t, query.Validate())
	assert.Equal(t, "", query.Term())
}

func TestNewSearchShipmentsQuery_NormalizesPagination(t *testing.T) {
	query := queries.NewSearchShipmentsQuery("alice", -1, 1000)

	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 100, query.PageSize())
}

func TestSearchShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.SearchShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSearchShipmentsQueryIsNotConstructed)
}
