// Package chatpager renders large item collections as paginated, clickable chat menus.
//
// Overview
//
// A PaginatedList holds an immutable snapshot of items together with ListOptions and
// produces the raw markup of a single page on request. The produced string is meant to
// be handed to a MineDown-style renderer which turns bracket/color/action syntax into
// rich text; rendering itself is out of scope.
//
// Key concepts
//   - ListItem: anything exposing a display string via ItemString.
//   - ListOptions: templates, separators and knobs, built once with OptionsBuilder.
//   - Placeholders: %name% tokens inside templates, expanded per page. Some
//     placeholders (topic, previous/next buttons, page jumpers) expand into other
//     templates, which are expanded recursively.
//   - Page jumpers: direct page-jump buttons grouped into runs of consecutive pages
//     and separated by a group separator when a gap exists.
//   - SortOption: a named ordering applied to the snapshot before slicing a page.
//
// Example:
//
//	list := chatpager.NewDefault(chatpager.StringItems("b", "a", "c"))
//	page, err := list.Page(1)
package chatpager
