// Package pagination grows a visible window over a product sequence one page
// at a time. The window is always a prefix of the sequence.
package pagination

import "github.com/byxorna/storefront/pkg/types/v1"

// DefaultPageSize is how many products one "load more" adds.
const DefaultPageSize = 10

// FirstPage returns the first page of full.
func FirstPage(full []v1.Product, pageSize int) []v1.Product {
	n := min(pageSize, len(full))
	out := make([]v1.Product, n)
	copy(out, full[:n])
	return out
}

// Extend appends the next min(pageSize, remaining) products of full to a copy
// of visible. exhausted reports that nothing is left to load.
//
// visible must be a prefix of full; a window longer than full is clamped.
func Extend(full, visible []v1.Product, pageSize int) (next []v1.Product, exhausted bool) {
	start := min(len(visible), len(full))
	end := min(start+pageSize, len(full))

	next = make([]v1.Product, 0, end)
	next = append(next, full[:start]...)
	next = append(next, full[start:end]...)
	return next, len(next) >= len(full)
}

// Pages returns how many pages total products span, at least one.
func Pages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// LoadedPages returns how many pages a window of length visible covers.
func LoadedPages(visible, pageSize int) int {
	return Pages(visible, pageSize)
}
