package chatpager

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

// generateItems returns size items built from format, '#' replaced by the 1-based index.
func generateItems(size int, format string) []StringItem {
	items := make([]StringItem, 0, size)
	for i := 0; i < size; i++ {
		items = append(items, StringItem(strings.ReplaceAll(format, "#", strconv.Itoa(i+1))))
	}

	return items
}

func Test_PaginatedList_TotalPages(t *testing.T) {
	tests := []struct {
		name         string
		itemCount    int
		itemsPerPage int
		want         int
	}{
		{"page item dividing", 40, 10, 4},
		{"partial last page", 41, 10, 5},
		{"empty list", 0, 10, 1},
		{"fewer items than a page", 3, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := New(generateItems(tt.itemCount, "Item #"), NewOptionsBuilder().WithItemsPerPage(tt.itemsPerPage).MustBuild())
			assert.Equal(t, tt.want, list.TotalPages())
			assert.Equal(t, tt.itemCount, list.TotalItems())
		})
	}
}

func Test_PaginatedList_RawPage_Default(t *testing.T) {
	list := NewDefault(StringItems("b", "a", "c"))

	got, err := list.RawPage(1, true, NameSortOption[StringItem]())
	require.NoError(t, err)
	assert.Equal(t, "[List (1-3 of 3):](#00fb9a)\n\na\nb\nc\n\nPage [1](#00fb9a)/[1](#00fb9a)   ", got)

	page, err := list.Page(1)
	require.NoError(t, err)
	assert.Equal(t, got, page)
}

func Test_PaginatedList_RawPage_Assembly(t *testing.T) {
	items := StringItems("&cred", "[x](y)", "plain")

	tests := []struct {
		name    string
		builder *OptionsBuilder
		want    string
	}{
		{
			name: "no blank lines",
			builder: NewOptionsBuilder().
				WithHeaderFormat("H").
				WithFooterFormat("F").
				WithSpaceAfterHeader(false).
				WithSpaceBeforeFooter(false),
			want: "H\n\\&cred\n\\[x](y)\nplain\nF",
		},
		{
			name: "blank header and footer are omitted with their blank lines",
			builder: NewOptionsBuilder().
				WithHeaderFormat("  ").
				WithFooterFormat(""),
			want: "\\&cred\n\\[x](y)\nplain",
		},
		{
			name: "escaping disabled and custom separator",
			builder: NewOptionsBuilder().
				WithHeaderFormat("").
				WithFooterFormat("").
				WithEscapeItems(false).
				WithItemSeparator(", "),
			want: "&cred, [x](y), plain",
		},
		{
			name: "header and footer with blank lines",
			builder: NewOptionsBuilder().
				WithHeaderFormat("%topic% %current_page%/%total_pages%").
				WithFooterFormat("end").
				WithTopic("Things").
				WithEscapeItems(false),
			want: "Things 1/1\n\n&cred\n[x](y)\nplain\n\nend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := New(items, tt.builder.MustBuild())

			got, err := list.RawPage(1, true, NameSortOption[StringItem]())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_PaginatedList_RawPage_Header(t *testing.T) {
	list := New(generateItems(45, "Item #"), NewOptionsBuilder().
		WithFooterFormat("").
		WithEscapeItems(false).
		MustBuild())

	got, err := list.RawPage(5, true, NewSortOption("insertion", func(a, b StringItem) int { return 0 }))
	require.NoError(t, err)
	assert.Equal(t, "[List (41-45 of 45):](#00fb9a)\n\nItem 41\nItem 42\nItem 43\nItem 44\nItem 45", got)
}

func Test_PaginatedList_RawPage_OutOfRange(t *testing.T) {
	list := NewDefault(generateItems(100, "Element #"))

	tests := []struct {
		name    string
		page    int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"after last", 11, true},
		{"first", 1, false},
		{"middle", 3, false},
		{"last", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := list.RawPage(tt.page, true, NameSortOption[StringItem]())
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotEmpty(t, got)
				return
			}

			require.ErrorIs(t, err, ErrPageOutOfRange)

			var rangeErr *PageOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.page, rangeErr.Page)
			assert.Equal(t, 10, rangeErr.TotalPages)
		})
	}
}

func Test_PaginatedList_PartialRender_OutOfRange(t *testing.T) {
	list := NewDefault(generateItems(30, "Item #"))

	tests := []struct {
		name string
		page int
	}{
		{"zero", 0},
		{"negative", -7},
		{"after last", 4},
		{"largest int", math.MaxInt},
		{"smallest int", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := list.FormatPageString("%first_item_on_page_index%-%last_item_on_page_index%", tt.page)
			require.ErrorIs(t, err, ErrPageOutOfRange)

			_, err = list.PageJumperButtons(tt.page)
			require.ErrorIs(t, err, ErrPageOutOfRange)

			var rangeErr *PageOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.page, rangeErr.Page)
			assert.Equal(t, 3, rangeErr.TotalPages)
		})
	}

	got, err := list.FormatPageString("%first_item_on_page_index%-%last_item_on_page_index%", 3)
	require.NoError(t, err)
	assert.Equal(t, "21-30", got)
}

func Test_PageOutOfRangeError_Error(t *testing.T) {
	assert.Equal(t, "page out of range: page index must be >= 1, got 0",
		(&PageOutOfRangeError{Page: 0, TotalPages: 4}).Error())
	assert.Equal(t, "page out of range: page index must be <= the total number of pages (4), got 5",
		(&PageOutOfRangeError{Page: 5, TotalPages: 4}).Error())
}

func Test_PaginatedList_RawPage_EmptyList(t *testing.T) {
	list := NewDefault[StringItem](nil)

	got, err := list.RawPage(1, true, NameSortOption[StringItem]())
	require.NoError(t, err)
	assert.Equal(t, "[List (1-0 of 0):](#00fb9a)\n\n\n\nPage [1](#00fb9a)/[1](#00fb9a)   ", got)

	_, err = list.RawPage(2, true, NameSortOption[StringItem]())
	require.ErrorIs(t, err, ErrPageOutOfRange)
}

func Test_PaginatedList_PageItems_CoverEveryItemOnce(t *testing.T) {
	items := generateItems(57, "Item #")
	options := NewOptionsBuilder().WithItemsPerPage(10).MustBuild()
	list := New(items, options)

	for _, ascending := range []bool{true, false} {
		var all []StringItem
		for page := 1; page <= list.TotalPages(); page++ {
			pageItems, err := list.PageItems(page, ascending, NameSortOption[StringItem]())
			require.NoError(t, err)
			require.LessOrEqual(t, len(pageItems), options.ItemsPerPage())

			all = append(all, pageItems...)
		}

		assert.Equal(t, NameSortOption[StringItem]().Sort(items, ascending), all)
	}

	_, err := list.PageItems(7, true, NameSortOption[StringItem]())
	require.ErrorIs(t, err, ErrPageOutOfRange)
}

func Test_PaginatedList_SnapshotIsIndependent(t *testing.T) {
	items := StringItems("b", "a")
	list := New(items, NewOptionsBuilder().WithHeaderFormat("").WithFooterFormat("").MustBuild())

	items[0] = "z"

	got, err := list.Page(1)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	_, err = list.RawPage(1, false, NameSortOption[StringItem]())
	require.NoError(t, err)
	assert.Equal(t, StringItems("z", "a"), items)
}

func Test_PaginatedList_NearestValidPage(t *testing.T) {
	list := New(generateItems(30, "Item #"), NewOptionsBuilder().
		WithHeaderFormat("%current_page%").
		WithFooterFormat("").
		WithSpaceAfterHeader(false).
		MustBuild())

	tests := []struct {
		name     string
		page     int
		wantPage int
	}{
		{"below range", -4, 1},
		{"zero", 0, 1},
		{"in range", 2, 2},
		{"above range", 99, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPage, list.NearestValidPageNumber(tt.page))

			got, err := list.NearestValidPage(tt.page, true, NameSortOption[StringItem]())
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, strconv.Itoa(tt.wantPage)+"\n"), got)
		})
	}

	_, err := NewDefault[StringItem](nil).NearestValidPage(5, true, NameSortOption[StringItem]())
	require.NoError(t, err)
}

func Test_PaginatedList_RawPage_SelfReferencingTemplate(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	list := New(generateItems(5, "Item #"), NewOptionsBuilder().WithTopic("[%topic%]").MustBuild()).
		WithLogger(zap.New(core))

	_, err := list.RawPage(1, true, NameSortOption[StringItem]())
	require.ErrorIs(t, err, ErrTemplateTooDeep)
	assert.Contains(t, err.Error(), "cannot render header of page 1")
	assert.Equal(t, 1, logs.FilterMessage("Failed to render page").Len())
}

func Test_PaginatedList_WithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := NewDefault(generateItems(25, "Item #"))
	logged := base.WithLogger(zap.New(core))

	_, err := logged.RawPage(2, false, NameSortOption[StringItem]())
	require.NoError(t, err)

	entries := logs.FilterMessage("Rendered page").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["page"])
	assert.Equal(t, int64(10), entries[0].ContextMap()["items"])
	assert.Equal(t, false, entries[0].ContextMap()["ascending"])

	_, err = base.RawPage(2, false, NameSortOption[StringItem]())
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len(), "the base list keeps its own logger")

	assert.NotNil(t, (*PaginatedList[StringItem])(nil).WithLogger(nil))
}

func Test_PaginatedList_ConcurrentReaders(t *testing.T) {
	list := NewDefault(generateItems(200, "Item #")).WithLogger(zaptest.NewLogger(t, zaptest.Level(zapcore.WarnLevel)))

	want := make([]string, list.TotalPages())
	for i := range want {
		page, err := list.RawPage(i+1, true, NameSortOption[StringItem]())
		require.NoError(t, err)
		want[i] = page
	}

	var g errgroup.Group
	for worker := 0; worker < 8; worker++ {
		g.Go(func() error {
			for i := range want {
				got, err := list.RawPage(i+1, true, NameSortOption[StringItem]())
				if err != nil {
					return err
				}
				if got != want[i] {
					return fmt.Errorf("page %d differs", i+1)
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func Test_PaginatedList_RawPage_CustomSort(t *testing.T) {
	list := New(StringItems("ccc", "a", "bb"), NewOptionsBuilder().
		WithHeaderFormat("").
		WithFooterFormat("").
		WithItemsPerPage(2).
		MustBuild())

	first, err := list.RawPage(1, false, byLength())
	require.NoError(t, err)
	assert.Equal(t, "ccc\nbb", first)

	second, err := list.RawPage(2, false, byLength())
	require.NoError(t, err)
	assert.Equal(t, "a", second)

	assert.True(t, slices.Equal(StringItems("ccc", "a", "bb"), list.items))
}
