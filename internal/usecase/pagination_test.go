package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOffsetLimit(t *testing.T) {
	for page := 1; page <= 500; page++ {
		offset, limit := ToOffsetLimit(page)
		assert.Equal(t, (page-1)*20, offset, "page %d", page)
		assert.Equal(t, 20, limit, "page %d", page)
	}
}

func TestToOffsetLimit_Saturates(t *testing.T) {
	offset, limit := ToOffsetLimit(math.MaxInt)
	assert.Equal(t, math.MaxInt, offset)
	assert.Equal(t, PageSize, limit)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		items int
		want  int
	}{
		{0, 0},
		{1, 1},
		{19, 1},
		{20, 1},
		{21, 2},
		{25, 2},
		{40, 2},
		{41, 3},
		{1000, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.items), "items=%d", tt.items)
	}

	for n := 0; n <= 1000; n++ {
		want := int(math.Ceil(float64(n) / 20))
		assert.Equal(t, want, TotalPages(n), "items=%d", n)
	}
}
