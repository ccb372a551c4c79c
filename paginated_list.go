package chatpager

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// PaginatedList renders pages of a fixed item snapshot as chat menu markup.
//
// A page consists of:
//   - a header, by default identifying the items listed on the page;
//   - the items, separated by new lines by default;
//   - a footer, by default holding previous/next buttons and page jumpers.
//
// A PaginatedList never changes after construction, so it may be shared by
// concurrent readers.
type PaginatedList[T ListItem] struct {
	items   []T
	options ListOptions
	logger  *zap.Logger
}

// New creates a PaginatedList over a copy of items.
func New[T ListItem](items []T, options ListOptions) *PaginatedList[T] {
	return &PaginatedList[T]{
		items:   slices.Clone(items),
		options: options,
		logger:  zap.NewNop(),
	}
}

// NewDefault creates a PaginatedList with DefaultOptions.
func NewDefault[T ListItem](items []T) *PaginatedList[T] {
	return New(items, DefaultOptions())
}

// WithLogger returns a copy of the list that reports through logger.
func (l *PaginatedList[T]) WithLogger(logger *zap.Logger) *PaginatedList[T] {
	if l == nil {
		l = New[T](nil, DefaultOptions())
	}

	cp := *l
	cp.logger = lo.Ternary(logger != nil, logger, zap.NewNop())

	return &cp
}

// Options returns the options the list renders with.
func (l *PaginatedList[T]) Options() ListOptions {
	return l.options
}

// TotalItems returns the number of items in the snapshot.
func (l *PaginatedList[T]) TotalItems() int {
	return len(l.items)
}

// TotalPages returns ceil(TotalItems/ItemsPerPage). An empty list has one page.
func (l *PaginatedList[T]) TotalPages() int {
	return TotalPages(len(l.items), l.options.pageSize())
}

// NearestValidPageNumber clamps page into [1, TotalPages].
func (l *PaginatedList[T]) NearestValidPageNumber(page int) int {
	return NormalizePage(page, l.TotalPages())
}

// Page renders page sorted ascending by name.
func (l *PaginatedList[T]) Page(page int) (string, error) {
	return l.RawPage(page, true, NameSortOption[T]())
}

// NearestValidPage renders the nearest existing page to the requested one, so it
// never fails with ErrPageOutOfRange.
func (l *PaginatedList[T]) NearestValidPage(page int, ascending bool, sortOption SortOption[T]) (string, error) {
	return l.RawPage(l.NearestValidPageNumber(page), ascending, sortOption)
}

// RawPage renders page as raw, pre-markup text:
//  1. the expanded header, followed by a blank line if configured;
//  2. the page's items, sorted by sortOption, escaped if configured and joined with
//     the item separator;
//  3. a blank line if configured, followed by the expanded footer.
//
// Parts are joined with new lines. Blank header and footer templates are omitted.
// A page outside [1, TotalPages] yields *PageOutOfRangeError.
func (l *PaginatedList[T]) RawPage(page int, ascending bool, sortOption SortOption[T]) (string, error) {
	err := l.validatePage(page)
	if err != nil {
		return "", err
	}

	f := l.formatter()
	parts := make([]string, 0, 5)

	if !isBlank(l.options.headerFormat) {
		header, err := f.expand(l.options.headerFormat, page, 0)
		if err != nil {
			return "", l.renderFailed(page, "header", err)
		}

		parts = append(parts, header)
		if l.options.spaceAfterHeader {
			parts = append(parts, "")
		}
	}

	pageItems := l.slice(sortOption.Sort(l.items, ascending), page)
	rendered := lo.Map(itemStrings(pageItems), func(s string, _ int) string {
		return l.options.escape(s)
	})
	parts = append(parts, strings.Join(rendered, l.options.itemSeparator))

	if !isBlank(l.options.footerFormat) {
		footer, err := f.expand(l.options.footerFormat, page, 0)
		if err != nil {
			return "", l.renderFailed(page, "footer", err)
		}

		if l.options.spaceBeforeFooter {
			parts = append(parts, "")
		}
		parts = append(parts, footer)
	}

	l.logger.Debug("Rendered page",
		zap.Int("page", page),
		zap.Int("totalPages", l.TotalPages()),
		zap.Int("items", len(pageItems)),
		zap.String("sort", sortOption.Name()),
		zap.Bool("ascending", ascending))

	return strings.Join(parts, "\n"), nil
}

// PageItems returns the items shown on page after sorting.
func (l *PaginatedList[T]) PageItems(page int, ascending bool, sortOption SortOption[T]) ([]T, error) {
	err := l.validatePage(page)
	if err != nil {
		return nil, err
	}

	return l.slice(sortOption.Sort(l.items, ascending), page), nil
}

// PageJumperButtons renders only the page-jump buttons for page, without the
// surrounding page jumpers template. Pages outside [1, TotalPages] fail with
// ErrPageOutOfRange.
func (l *PaginatedList[T]) PageJumperButtons(page int) (string, error) {
	err := l.validatePage(page)
	if err != nil {
		return "", err
	}

	buttons, err := l.formatter().jumpButtons(page, 0)
	if err != nil {
		return "", l.renderFailed(page, "page jumpers", err)
	}

	return buttons, nil
}

// FormatPageString expands the placeholders of an arbitrary template for page.
// Pages outside [1, TotalPages] fail with ErrPageOutOfRange.
func (l *PaginatedList[T]) FormatPageString(format string, page int) (string, error) {
	err := l.validatePage(page)
	if err != nil {
		return "", err
	}

	out, err := l.formatter().expand(format, page, 0)
	if err != nil {
		return "", l.renderFailed(page, "template", err)
	}

	return out, nil
}

func (l *PaginatedList[T]) validatePage(page int) error {
	totalPages := l.TotalPages()
	if page < 1 || page > totalPages {
		return &PageOutOfRangeError{Page: page, TotalPages: totalPages}
	}

	return nil
}

func (l *PaginatedList[T]) formatter() *formatter {
	return &formatter{
		options:     l.options,
		totalItems:  len(l.items),
		totalPages:  l.TotalPages(),
		itemsOnPage: l.itemsOnPage,
	}
}

// pageBounds returns the [start, end) window of page within n items. Pages past
// the end produce an empty window.
func (l *PaginatedList[T]) pageBounds(n int, page int) (int, int) {
	perPage := l.options.pageSize()
	start := lo.Clamp((page-1)*perPage, 0, n)
	end := lo.Clamp(page*perPage, start, n)

	return start, end
}

func (l *PaginatedList[T]) slice(items []T, page int) []T {
	start, end := l.pageBounds(len(items), page)

	return items[start:end]
}

func (l *PaginatedList[T]) itemsOnPage(page int) int {
	start, end := l.pageBounds(len(l.items), page)

	return end - start
}

func (l *PaginatedList[T]) renderFailed(page int, part string, err error) error {
	l.logger.Warn("Failed to render page",
		zap.Int("page", page),
		zap.String("part", part),
		zap.Error(err))

	return fmt.Errorf("cannot render %s of page %d: %w", part, page, err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
