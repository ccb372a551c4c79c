package chatpager

import (
	"strconv"
	"strings"
)

// jumperState accumulates page-jump buttons. Visible pages are fed in increasing
// order; consecutive pages share a run, and a gap closes the run into a group.
type jumperState struct {
	groups   []string
	run      []string
	lastPage int
}

func (s *jumperState) add(page int, button string, pageSeparator string) {
	if len(s.run) > 0 && page-s.lastPage > 1 {
		s.flush(pageSeparator)
	}

	s.run = append(s.run, button)
	s.lastPage = page
}

func (s *jumperState) flush(pageSeparator string) {
	if len(s.run) == 0 {
		return
	}

	s.groups = append(s.groups, strings.Join(s.run, pageSeparator))
	s.run = nil
}

func (s *jumperState) result(pageSeparator string, groupSeparator string) string {
	s.flush(pageSeparator)

	return strings.Join(s.groups, groupSeparator)
}

// jumperVisible reports whether page gets a button: it lies in the leading window,
// in the trailing window, or is the current page.
func jumperVisible(page int, currentPage int, totalPages int, startButtons int, endButtons int) bool {
	return page <= startButtons || page > totalPages-endButtons || page == currentPage
}

// jumpButtons renders the page-jump buttons for currentPage. The current page uses
// the current-page template; any other page uses the jump template with
// %target_page_index% substituted first. Each button is expanded with its own page
// as the page argument.
func (f *formatter) jumpButtons(currentPage int, depth int) (string, error) {
	opts := f.options
	state := jumperState{}

	for i := 1; i <= f.totalPages; i++ {
		if !jumperVisible(i, currentPage, f.totalPages, opts.pageJumperStartButtons, opts.pageJumperEndButtons) {
			continue
		}

		format := opts.pageJumperCurrentPageFormat
		if i != currentPage {
			format = strings.ReplaceAll(opts.pageJumperPageFormat, targetPageIndexPlaceholder, strconv.Itoa(i))
		}

		button, err := f.expand(format, i, depth)
		if err != nil {
			return "", err
		}

		state.add(i, button, opts.pageJumperPageSeparator)
	}

	return state.result(opts.pageJumperPageSeparator, opts.pageJumperGroupSeparator), nil
}
