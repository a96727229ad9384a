package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationClamping(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		p := PaginatedRequest{}
		assert.Equal(t, DefaultPerPage, p.Limit())
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("per page capped at maximum", func(t *testing.T) {
		p := PaginatedRequest{Page: 2, PerPage: 500}
		assert.Equal(t, MaxPerPage, p.Limit())
		assert.Equal(t, MaxPerPage, p.Offset())
	})

	t.Run("offset follows page", func(t *testing.T) {
		p := PaginatedRequest{Page: 3, PerPage: 20}
		assert.Equal(t, 20, p.Limit())
		assert.Equal(t, 40, p.Offset())
	})
}
