package chatpager

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const NameSortOptionName = "name"

// SortOption is a named ordering over items. It is stateless and may be shared.
// The zero value orders by ItemString.
type SortOption[T ListItem] struct {
	name    string
	compare func(a, b T) int
}

// NewSortOption creates a sort option. compare follows the cmp.Compare contract.
func NewSortOption[T ListItem](name string, compare func(a, b T) int) SortOption[T] {
	return SortOption[T]{
		name:    name,
		compare: compare,
	}
}

// NameSortOption orders items lexicographically by their display string.
func NameSortOption[T ListItem]() SortOption[T] {
	return NewSortOption(NameSortOptionName, compareItemStrings[T])
}

func (o SortOption[T]) Name() string {
	if o.name == "" && o.compare == nil {
		return NameSortOptionName
	}

	return o.name
}

// MatchesName reports whether name identifies this option, ignoring case.
func (o SortOption[T]) MatchesName(name string) bool {
	return strings.EqualFold(o.Name(), name)
}

// Sort returns a newly ordered copy of items. The ascending order is a stable sort;
// descending is the ascending result reversed, so equal items keep their relative
// order flipped along with everything else. items is never modified.
func (o SortOption[T]) Sort(items []T, ascending bool) []T {
	compare := o.compare
	if compare == nil {
		compare = compareItemStrings[T]
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compare)
	if !ascending {
		slices.Reverse(sorted)
	}

	return sorted
}

func compareItemStrings[T ListItem](a, b T) int {
	return strings.Compare(a.ItemString(), b.ItemString())
}

// SortOptions is a registry of sort options addressable by name.
type SortOptions[T ListItem] []SortOption[T]

// Find returns the option matching name, ignoring case. An unknown name yields
// ErrUnknownSortOption with the closest registered name as a hint.
func (s SortOptions[T]) Find(name string) (SortOption[T], error) {
	option, ok := lo.Find(s, func(o SortOption[T]) bool {
		return o.MatchesName(name)
	})
	if ok {
		return option, nil
	}

	if len(s) == 0 {
		return SortOption[T]{}, fmt.Errorf("%w '%s'", ErrUnknownSortOption, name)
	}

	return SortOption[T]{}, fmt.Errorf("%w '%s'. closest: '%s'", ErrUnknownSortOption, name, closestName(name, s.Names()))
}

// Names lists registered option names in registration order.
func (s SortOptions[T]) Names() []string {
	return lo.Map(s, func(o SortOption[T], _ int) string {
		return o.Name()
	})
}

func closestName(input string, dataSet []string) string {
	minDist := math.MaxInt
	closest := ""

	for _, candidate := range dataSet {
		dist := levenshtein([]rune(strings.ToLower(candidate)), []rune(strings.ToLower(input)))
		if dist < minDist {
			minDist = dist
			closest = candidate
		}
	}

	return closest
}
