package chatpager

import "github.com/samber/lo"

const (
	DefaultItemsPerPage        = 10
	DefaultJumperStartButtons  = 3
	DefaultJumperEndButtons    = 3
	MaxTemplateDepth           = 32
	pageJumpersMinPages        = 3
	targetPageIndexPlaceholder = "%target_page_index%"
)

// NormalizePage clamps page into [1, totalPages]. A non-positive totalPages is
// treated as a single page.
func NormalizePage(page int, totalPages int) int {
	return lo.Clamp(page, 1, max(totalPages, 1))
}

// TotalPages returns ceil(itemCount/itemsPerPage) with a minimum of one page, so an
// empty list still renders a single (empty) page.
func TotalPages(itemCount int, itemsPerPage int) int {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}

	pages := (itemCount + itemsPerPage - 1) / itemsPerPage
	if pages < 1 {
		return 1
	}

	return pages
}
