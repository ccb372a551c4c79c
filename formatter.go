package chatpager

import (
	"fmt"
	"strconv"
	"strings"
)

const placeholderDelimiter = '%'

// Recognized placeholder names. Matching ignores case.
const (
	PlaceholderTopic                = "topic"
	PlaceholderColor                = "color"
	PlaceholderFirstItemOnPageIndex = "first_item_on_page_index"
	PlaceholderLastItemOnPageIndex  = "last_item_on_page_index"
	PlaceholderTotalItems           = "total_items"
	PlaceholderCurrentPage          = "current_page"
	PlaceholderTotalPages           = "total_pages"
	PlaceholderPreviousPageButton   = "previous_page_button"
	PlaceholderNextPageButton       = "next_page_button"
	PlaceholderNextPageIndex        = "next_page_index"
	PlaceholderPreviousPageIndex    = "previous_page_index"
	PlaceholderCommand              = "command"
	PlaceholderPageJumpers          = "page_jumpers"
	PlaceholderPageJumpButtons      = "page_jump_buttons"
)

// formatter expands %name% placeholders of a template for a given page. It reads an
// immutable view of the list and never mutates it.
type formatter struct {
	options    ListOptions
	totalItems int
	totalPages int
	// itemsOnPage returns how many items the given page shows.
	itemsOnPage func(page int) int
}

// expand scans format once. Text outside placeholders is copied verbatim; a closing
// delimiter resolves the accumulated name. A trailing unterminated placeholder is
// dropped. Templates that recurse deeper than MaxTemplateDepth fail with
// ErrTemplateTooDeep.
func (f *formatter) expand(format string, page int, depth int) (string, error) {
	if depth > MaxTemplateDepth {
		return "", fmt.Errorf("%w: exceeded %d levels", ErrTemplateTooDeep, MaxTemplateDepth)
	}

	var (
		out         strings.Builder
		placeholder strings.Builder
		reading     bool
	)

	// The delimiter is ASCII, so a byte scan never splits a multi-byte sequence and
	// copies invalid UTF-8 through untouched.
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != placeholderDelimiter {
			if reading {
				placeholder.WriteByte(c)
			} else {
				out.WriteByte(c)
			}

			continue
		}

		if reading {
			value, err := f.resolve(strings.ToLower(placeholder.String()), page, depth)
			if err != nil {
				return "", err
			}
			out.WriteString(value)
		} else {
			placeholder.Reset()
		}
		reading = !reading
	}

	return out.String(), nil
}

// resolve computes the replacement of a single placeholder. Unknown names resolve
// to an empty string.
func (f *formatter) resolve(name string, page int, depth int) (string, error) {
	perPage := f.options.pageSize()

	switch name {
	case PlaceholderTopic:
		return f.expand(f.options.topic, page, depth+1)
	case PlaceholderColor:
		return f.options.HexColor(), nil
	case PlaceholderFirstItemOnPageIndex:
		return strconv.Itoa((page-1)*perPage + 1), nil
	case PlaceholderLastItemOnPageIndex:
		return strconv.Itoa((page-1)*perPage + f.itemsOnPage(page)), nil
	case PlaceholderTotalItems:
		return strconv.Itoa(f.totalItems), nil
	case PlaceholderCurrentPage:
		return strconv.Itoa(page), nil
	case PlaceholderTotalPages:
		return strconv.Itoa(f.totalPages), nil
	case PlaceholderPreviousPageButton:
		if page > 1 {
			return f.expand(f.options.previousButtonFormat, page, depth+1)
		}
	case PlaceholderNextPageButton:
		if page < f.totalPages {
			return f.expand(f.options.nextButtonFormat, page, depth+1)
		}
	case PlaceholderNextPageIndex:
		return strconv.Itoa(page + 1), nil
	case PlaceholderPreviousPageIndex:
		return strconv.Itoa(page - 1), nil
	case PlaceholderCommand:
		return f.options.command, nil
	case PlaceholderPageJumpers:
		if f.totalPages >= pageJumpersMinPages {
			return f.expand(f.options.pageJumpersFormat, page, depth+1)
		}
	case PlaceholderPageJumpButtons:
		return f.jumpButtons(page, depth+1)
	}

	return "", nil
}
