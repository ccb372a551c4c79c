package chatpager

import (
	"errors"
	"fmt"
)

var (
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrInvalidOptions    = errors.New("invalid list options")
	ErrTemplateTooDeep   = errors.New("template nesting too deep")
	ErrUnknownSortOption = errors.New("unknown sort option")
	ErrInvalidDirection  = errors.New("invalid sort direction")
)

// PageOutOfRangeError is returned when a page outside [1, TotalPages] is requested.
// It unwraps to ErrPageOutOfRange.
type PageOutOfRangeError struct {
	Page       int
	TotalPages int
}

func (e *PageOutOfRangeError) Error() string {
	if e.Page < 1 {
		return fmt.Sprintf("%s: page index must be >= 1, got %d", ErrPageOutOfRange, e.Page)
	}

	return fmt.Sprintf("%s: page index must be <= the total number of pages (%d), got %d",
		ErrPageOutOfRange, e.TotalPages, e.Page)
}

func (e *PageOutOfRangeError) Unwrap() error {
	return ErrPageOutOfRange
}
