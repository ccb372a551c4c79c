package chatpager

import "github.com/samber/lo"

// ListItem is the only requirement on pageable data: a stable display string.
type ListItem interface {
	ItemString() string
}

// StringItem is a ListItem backed by a plain string.
type StringItem string

// ItemString - implements ListItem.
func (s StringItem) ItemString() string {
	return string(s)
}

// StringItems wraps plain strings into StringItem values.
func StringItems(values ...string) []StringItem {
	return lo.Map(values, func(v string, _ int) StringItem {
		return StringItem(v)
	})
}

func itemStrings[T ListItem](items []T) []string {
	return lo.Map(items, func(item T, _ int) string {
		return item.ItemString()
	})
}

var _ ListItem = StringItem("")
