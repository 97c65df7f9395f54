package queries_test

import (
	"testing"

	"shiptracker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListShipmentsQuery_Valid(t *testing.T) {
	query := queries.NewListShipmentsQuery(2, 25)
	err := query.Validate()
	require.NoError(t, err)
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.PageSize())
}

func TestNewListShipmentsQuery_NormalizesPagination(t *testing.T) {
	testCases := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values fall back to defaults", 0, 0, 1, 10},
		{"negative page falls back to first page", -3, 20, 1, 20},
		{"negative page size falls back to default", 4, -1, 4, 10},
		{"page size above the cap is clamped", 1, 500, 1, 100},
		{"page size at the cap is kept", 1, 100, 1, 100},
		{"large page numbers are kept", 9999, 10, 9999, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query := queries.NewListShipmentsQuery(tc.page, tc.pageSize)

			require.NoError(t, query.Validate())
			assert.Equal(t, tc.wantPage, query.Page())
			assert.Equal(t, tc.wantPageSize, query.PageSize())
		})
	}
}

func TestListShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)
}
