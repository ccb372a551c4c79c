package chatpager

import "fmt"

// PageRequest is intended for command arguments and API payloads. For proper code
// generation, inline it:
//
//	type ListHomesRequest struct {
//	    Paging PageRequest `json:",inline"`
//	}
type PageRequest struct {
	// Page - 1-based page number. Out of range values are clamped when rendering.
	Page int `json:"page"`
	// Sort - sort option name, case-insensitive. Empty means the first registered
	// option, or name order when none are registered.
	Sort string `json:"sort"`
	// Order - "asc" or "desc", case-insensitive. Empty means ascending.
	Order string `json:"order"`
}

// ResolvedPageRequest is a PageRequest bound to a concrete SortOption.
type ResolvedPageRequest[T ListItem] struct {
	Page       int
	Direction  Direction
	SortOption SortOption[T]
}

// DecodePageRequest resolves the sort option and direction of req against options.
func DecodePageRequest[T ListItem](req PageRequest, options SortOptions[T]) (ResolvedPageRequest[T], error) {
	direction, err := ParseDirection(req.Order)
	if err != nil {
		return ResolvedPageRequest[T]{}, fmt.Errorf("cannot decode page request: %w", err)
	}

	sortOption := NameSortOption[T]()
	switch {
	case req.Sort != "":
		sortOption, err = options.Find(req.Sort)
		if err != nil {
			return ResolvedPageRequest[T]{}, fmt.Errorf("cannot decode page request: %w", err)
		}
	case len(options) > 0:
		sortOption = options[0]
	}

	return ResolvedPageRequest[T]{
		Page:       req.Page,
		Direction:  direction,
		SortOption: sortOption,
	}, nil
}

// Render renders the nearest valid page for a resolved request.
func (l *PaginatedList[T]) Render(req ResolvedPageRequest[T]) (string, error) {
	return l.NearestValidPage(req.Page, req.Direction.Ascending(), req.SortOption)
}
