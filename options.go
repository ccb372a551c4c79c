package chatpager

import (
	"fmt"
	"image/color"
)

const (
	DefaultHeaderFormat                = "[%topic% (%first_item_on_page_index%-%last_item_on_page_index% of %total_items%):](%color%)"
	DefaultFooterFormat                = "%previous_page_button%Page [%current_page%](%color%)/[%total_pages%](%color%)%next_page_button%   %page_jumpers%"
	DefaultPreviousButtonFormat        = "[◁](white show_text=%color%View previous page \\(%previous_page_index%\\) run_command=/%command% %previous_page_index%) "
	DefaultNextButtonFormat            = " [▷](white show_text=%color%View next page \\(%next_page_index%\\) run_command=/%command% %next_page_index%)"
	DefaultPageJumpersFormat           = "(%page_jump_buttons%)"
	DefaultPageJumperPageSeparator     = "|"
	DefaultPageJumperGroupSeparator    = "…"
	DefaultPageJumperCurrentPageFormat = "[%current_page%](%color%)"
	DefaultPageJumperPageFormat        = "[%target_page_index%](show_text=&7Jump to page %target_page_index% run_command=/%command% %target_page_index%)"
	DefaultTopic                       = "List"
	DefaultCommand                     = "example"
	DefaultItemSeparator               = "\n"
)

// DefaultThemeColor is #00fb9a.
var DefaultThemeColor = color.RGBA{R: 0x00, G: 0xfb, B: 0x9a, A: 0xff}

// ListOptions is an immutable set of templates, separators and knobs used to render
// the pages of a PaginatedList. Build it with OptionsBuilder or start from
// DefaultOptions. The zero value is not usable.
type ListOptions struct {
	headerFormat                string
	footerFormat                string
	previousButtonFormat        string
	nextButtonFormat            string
	pageJumpersFormat           string
	pageJumperPageSeparator     string
	pageJumperGroupSeparator    string
	pageJumperCurrentPageFormat string
	pageJumperPageFormat        string
	topic                       string
	command                     string
	themeColor                  color.RGBA
	spaceAfterHeader            bool
	spaceBeforeFooter           bool
	escapeItems                 bool
	escaper                     Escaper
	itemSeparator               string
	itemsPerPage                int
	pageJumperStartButtons      int
	pageJumperEndButtons        int
}

// DefaultOptions returns the stock menu layout: 10 items per page, three jump
// buttons at each end and escaping enabled.
func DefaultOptions() ListOptions {
	return ListOptions{
		headerFormat:                DefaultHeaderFormat,
		footerFormat:                DefaultFooterFormat,
		previousButtonFormat:        DefaultPreviousButtonFormat,
		nextButtonFormat:            DefaultNextButtonFormat,
		pageJumpersFormat:           DefaultPageJumpersFormat,
		pageJumperPageSeparator:     DefaultPageJumperPageSeparator,
		pageJumperGroupSeparator:    DefaultPageJumperGroupSeparator,
		pageJumperCurrentPageFormat: DefaultPageJumperCurrentPageFormat,
		pageJumperPageFormat:        DefaultPageJumperPageFormat,
		topic:                       DefaultTopic,
		command:                     DefaultCommand,
		themeColor:                  DefaultThemeColor,
		spaceAfterHeader:            true,
		spaceBeforeFooter:           true,
		escapeItems:                 true,
		escaper:                     EscapeMineDown,
		itemSeparator:               DefaultItemSeparator,
		itemsPerPage:                DefaultItemsPerPage,
		pageJumperStartButtons:      DefaultJumperStartButtons,
		pageJumperEndButtons:        DefaultJumperEndButtons,
	}
}

func (o ListOptions) HeaderFormat() string                { return o.headerFormat }
func (o ListOptions) FooterFormat() string                { return o.footerFormat }
func (o ListOptions) PreviousButtonFormat() string        { return o.previousButtonFormat }
func (o ListOptions) NextButtonFormat() string            { return o.nextButtonFormat }
func (o ListOptions) PageJumpersFormat() string           { return o.pageJumpersFormat }
func (o ListOptions) PageJumperPageSeparator() string     { return o.pageJumperPageSeparator }
func (o ListOptions) PageJumperGroupSeparator() string    { return o.pageJumperGroupSeparator }
func (o ListOptions) PageJumperCurrentPageFormat() string { return o.pageJumperCurrentPageFormat }
func (o ListOptions) PageJumperPageFormat() string        { return o.pageJumperPageFormat }
func (o ListOptions) Topic() string                       { return o.topic }
func (o ListOptions) Command() string                     { return o.command }
func (o ListOptions) ThemeColor() color.RGBA              { return o.themeColor }
func (o ListOptions) SpaceAfterHeader() bool              { return o.spaceAfterHeader }
func (o ListOptions) SpaceBeforeFooter() bool             { return o.spaceBeforeFooter }
func (o ListOptions) EscapeItems() bool                   { return o.escapeItems }
func (o ListOptions) ItemSeparator() string               { return o.itemSeparator }
func (o ListOptions) ItemsPerPage() int                   { return o.itemsPerPage }
func (o ListOptions) PageJumperStartButtons() int         { return o.pageJumperStartButtons }
func (o ListOptions) PageJumperEndButtons() int           { return o.pageJumperEndButtons }

// HexColor formats the theme color as a lowercase "#rrggbb" string, alpha dropped.
func (o ListOptions) HexColor() string {
	return fmt.Sprintf("#%02x%02x%02x", o.themeColor.R, o.themeColor.G, o.themeColor.B)
}

func (o ListOptions) escape(s string) string {
	if !o.escapeItems {
		return s
	}
	if o.escaper == nil {
		return EscapeMineDown(s)
	}

	return o.escaper(s)
}

func (o ListOptions) validate() error {
	if o.itemsPerPage < 1 {
		return fmt.Errorf("%w: items per page must be >= 1, got %d", ErrInvalidOptions, o.itemsPerPage)
	}

	if o.pageJumperStartButtons < 0 {
		return fmt.Errorf("%w: page jumper start buttons must be >= 0, got %d", ErrInvalidOptions, o.pageJumperStartButtons)
	}

	if o.pageJumperEndButtons < 0 {
		return fmt.Errorf("%w: page jumper end buttons must be >= 0, got %d", ErrInvalidOptions, o.pageJumperEndButtons)
	}

	return nil
}

// OptionsBuilder accumulates ListOptions. Setters are safe to call on a nil builder;
// a nil builder starts from DefaultOptions.
//
//	opts, err := chatpager.NewOptionsBuilder().
//		WithTopic("Homes").
//		WithItemsPerPage(8).
//		Build()
type OptionsBuilder struct {
	options ListOptions
}

func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{options: DefaultOptions()}
}

// NewOptionsBuilderFrom starts a builder from existing options.
func NewOptionsBuilderFrom(options ListOptions) *OptionsBuilder {
	return &OptionsBuilder{options: options}
}

func (b *OptionsBuilder) WithHeaderFormat(headerFormat string) *OptionsBuilder {
	b = b.init()
	b.options.headerFormat = headerFormat

	return b
}

func (b *OptionsBuilder) WithFooterFormat(footerFormat string) *OptionsBuilder {
	b = b.init()
	b.options.footerFormat = footerFormat

	return b
}

func (b *OptionsBuilder) WithPreviousButtonFormat(previousButtonFormat string) *OptionsBuilder {
	b = b.init()
	b.options.previousButtonFormat = previousButtonFormat

	return b
}

func (b *OptionsBuilder) WithNextButtonFormat(nextButtonFormat string) *OptionsBuilder {
	b = b.init()
	b.options.nextButtonFormat = nextButtonFormat

	return b
}

func (b *OptionsBuilder) WithPageJumpersFormat(pageJumpersFormat string) *OptionsBuilder {
	b = b.init()
	b.options.pageJumpersFormat = pageJumpersFormat

	return b
}

func (b *OptionsBuilder) WithPageJumperPageSeparator(separator string) *OptionsBuilder {
	b = b.init()
	b.options.pageJumperPageSeparator = separator

	return b
}

func (b *OptionsBuilder) WithPageJumperGroupSeparator(separator string) *OptionsBuilder {
	b = b.init()
	b.options.pageJumperGroupSeparator = separator

	return b
}

// WithPageJumperCurrentPageFormat sets the template of the (usually unclickable)
// button shown for the page being viewed.
func (b *OptionsBuilder) WithPageJumperCurrentPageFormat(format string) *OptionsBuilder {
	b = b.init()
	b.options.pageJumperCurrentPageFormat = format

	return b
}

// WithPageJumperPageFormat sets the template of a jump button. %target_page_index%
// is replaced by the target page before the rest of the template is expanded.
func (b *OptionsBuilder) WithPageJumperPageFormat(format string) *OptionsBuilder {
	b = b.init()
	b.options.pageJumperPageFormat = format

	return b
}

// WithTopic sets the list topic. The topic may itself contain placeholders.
func (b *OptionsBuilder) WithTopic(topic string) *OptionsBuilder {
	b = b.init()
	b.options.topic = topic

	return b
}

// WithCommand sets the command used in generated run_command actions. It is
// inserted verbatim.
func (b *OptionsBuilder) WithCommand(command string) *OptionsBuilder {
	b = b.init()
	b.options.command = command

	return b
}

func (b *OptionsBuilder) WithThemeColor(themeColor color.Color) *OptionsBuilder {
	b = b.init()
	c := color.NRGBAModel.Convert(themeColor).(color.NRGBA)
	b.options.themeColor = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}

	return b
}

func (b *OptionsBuilder) WithSpaceAfterHeader(spaceAfterHeader bool) *OptionsBuilder {
	b = b.init()
	b.options.spaceAfterHeader = spaceAfterHeader

	return b
}

func (b *OptionsBuilder) WithSpaceBeforeFooter(spaceBeforeFooter bool) *OptionsBuilder {
	b = b.init()
	b.options.spaceBeforeFooter = spaceBeforeFooter

	return b
}

func (b *OptionsBuilder) WithEscapeItems(escapeItems bool) *OptionsBuilder {
	b = b.init()
	b.options.escapeItems = escapeItems

	return b
}

// WithEscaper replaces the MineDown escaper. It only applies while escaping is
// enabled.
func (b *OptionsBuilder) WithEscaper(escaper Escaper) *OptionsBuilder {
	b = b.init()
	b.options.escaper = escaper

	return b
}

func (b *OptionsBuilder) WithItemSeparator(itemSeparator string) *OptionsBuilder {
	b = b.init()
	b.options.itemSeparator = itemSeparator

	return b
}

// WithItemsPerPage sets the page size. Build rejects values below 1.
func (b *OptionsBuilder) WithItemsPerPage(itemsPerPage int) *OptionsBuilder {
	b = b.init()
	b.options.itemsPerPage = itemsPerPage

	return b
}

// WithPageJumperStartButtons sets how many leading pages always get a jump button.
func (b *OptionsBuilder) WithPageJumperStartButtons(count int) *OptionsBuilder {
	b = b.init()
	b.options.pageJumperStartButtons = count

	return b
}

// WithPageJumperEndButtons sets how many trailing pages always get a jump button.
func (b *OptionsBuilder) WithPageJumperEndButtons(count int) *OptionsBuilder {
	b = b.init()
	b.options.pageJumperEndButtons = count

	return b
}

// Build validates and returns a copy of the accumulated options. Later builder
// calls do not affect the returned value.
func (b *OptionsBuilder) Build() (ListOptions, error) {
	b = b.init()

	err := b.options.validate()
	if err != nil {
		return ListOptions{}, err
	}

	return b.options, nil
}

// MustBuild is like Build but panics on invalid options.
func (b *OptionsBuilder) MustBuild() ListOptions {
	options, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("cannot build list options: %w", err))
	}

	return options
}

func (b *OptionsBuilder) init() *OptionsBuilder {
	if b == nil {
		return NewOptionsBuilder()
	}

	return b
}

// pageSize guards against zero-value options, which were never validated by Build.
func (o ListOptions) pageSize() int {
	if o.itemsPerPage < 1 {
		return DefaultItemsPerPage
	}

	return o.itemsPerPage
}
