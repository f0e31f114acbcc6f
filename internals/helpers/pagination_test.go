package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty set", 0, 1, 20, 1, false, false},
		{"single page", 15, 1, 20, 1, false, false},
		{"exact boundary", 40, 1, 20, 2, true, false},
		{"middle page", 100, 3, 20, 5, true, true},
		{"last page", 100, 5, 20, 5, false, true},
		{"defaults on bad input", 10, 0, 0, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
