package usecase

import "math"

// PageSize is the fixed number of catalog assets in one page.
const PageSize = 20

// ToOffsetLimit translates a 1-indexed page into a store window. The page
// must already be validated as positive. Pages far past the data yield an
// offset that simply reads nothing; the offset saturates instead of
// overflowing.
func ToOffsetLimit(page int) (offset, limit int) {
	if page-1 > math.MaxInt/PageSize {
		return math.MaxInt, PageSize
	}
	return (page - 1) * PageSize, PageSize
}

// TotalPages returns ceil(totalItems / PageSize).
func TotalPages(totalItems int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems + PageSize - 1) / PageSize
}
