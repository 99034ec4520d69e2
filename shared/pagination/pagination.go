// Package pagination holds the fixed-size page arithmetic shared by every listing.
package pagination

import "marquee/shared/constant"

// PageSize is the number of rows on every listing page.
const PageSize = constant.DefaultValueLimit

// MaxPage returns the number of pages needed for total rows, 0 when there are none.
func MaxPage(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}

	return (total + size - 1) / size
}

// Clamp returns the page to serve. A page outside [1, MaxPage] falls back to the
// first page; an empty result set still has a first page.
func Clamp(page, total, size int) int {
	maxPage := max(MaxPage(total, size), 1)

	if page < 1 || page > maxPage {
		return constant.DefaultValuePage
	}

	return page
}

// Offset returns the number of rows preceding page.
func Offset(page, size int) int {
	if page < 1 {
		return 0
	}

	return (page - 1) * size
}
