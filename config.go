package chatpager

import (
	"fmt"
	"image/color"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// OptionsConfig is the file representation of ListOptions. Keys absent from the
// file keep their default values.
//
// Example (TOML):
//
//	topic = "Homes"
//	command = "homelist"
//	theme_color = "#ff6600"
//	items_per_page = 8
type OptionsConfig struct {
	HeaderFormat                string `koanf:"header_format"`
	FooterFormat                string `koanf:"footer_format"`
	PreviousButtonFormat        string `koanf:"previous_button_format"`
	NextButtonFormat            string `koanf:"next_button_format"`
	PageJumpersFormat           string `koanf:"page_jumpers_format"`
	PageJumperPageSeparator     string `koanf:"page_jumper_page_separator"`
	PageJumperGroupSeparator    string `koanf:"page_jumper_group_separator"`
	PageJumperCurrentPageFormat string `koanf:"page_jumper_current_page_format"`
	PageJumperPageFormat        string `koanf:"page_jumper_page_format"`
	Topic                       string `koanf:"topic"`
	Command                     string `koanf:"command"`
	ThemeColor                  string `koanf:"theme_color"` // "#rrggbb"
	SpaceAfterHeader            bool   `koanf:"space_after_header"`
	SpaceBeforeFooter           bool   `koanf:"space_before_footer"`
	EscapeItems                 bool   `koanf:"escape_items"`
	ItemSeparator               string `koanf:"item_separator"`
	ItemsPerPage                int    `koanf:"items_per_page"`
	PageJumperStartButtons      int    `koanf:"page_jumper_start_buttons"`
	PageJumperEndButtons        int    `koanf:"page_jumper_end_buttons"`
}

// DefaultOptionsConfig mirrors DefaultOptions.
func DefaultOptionsConfig() OptionsConfig {
	o := DefaultOptions()

	return OptionsConfig{
		HeaderFormat:                o.headerFormat,
		FooterFormat:                o.footerFormat,
		PreviousButtonFormat:        o.previousButtonFormat,
		NextButtonFormat:            o.nextButtonFormat,
		PageJumpersFormat:           o.pageJumpersFormat,
		PageJumperPageSeparator:     o.pageJumperPageSeparator,
		PageJumperGroupSeparator:    o.pageJumperGroupSeparator,
		PageJumperCurrentPageFormat: o.pageJumperCurrentPageFormat,
		PageJumperPageFormat:        o.pageJumperPageFormat,
		Topic:                       o.topic,
		Command:                     o.command,
		ThemeColor:                  o.HexColor(),
		SpaceAfterHeader:            o.spaceAfterHeader,
		SpaceBeforeFooter:           o.spaceBeforeFooter,
		EscapeItems:                 o.escapeItems,
		ItemSeparator:               o.itemSeparator,
		ItemsPerPage:                o.itemsPerPage,
		PageJumperStartButtons:      o.pageJumperStartButtons,
		PageJumperEndButtons:        o.pageJumperEndButtons,
	}
}

// Options validates the config and converts it into ListOptions.
func (c OptionsConfig) Options() (ListOptions, error) {
	themeColor, err := parseThemeColor(c.ThemeColor)
	if err != nil {
		return ListOptions{}, err
	}

	return NewOptionsBuilder().
		WithHeaderFormat(c.HeaderFormat).
		WithFooterFormat(c.FooterFormat).
		WithPreviousButtonFormat(c.PreviousButtonFormat).
		WithNextButtonFormat(c.NextButtonFormat).
		WithPageJumpersFormat(c.PageJumpersFormat).
		WithPageJumperPageSeparator(c.PageJumperPageSeparator).
		WithPageJumperGroupSeparator(c.PageJumperGroupSeparator).
		WithPageJumperCurrentPageFormat(c.PageJumperCurrentPageFormat).
		WithPageJumperPageFormat(c.PageJumperPageFormat).
		WithTopic(c.Topic).
		WithCommand(c.Command).
		WithThemeColor(themeColor).
		WithSpaceAfterHeader(c.SpaceAfterHeader).
		WithSpaceBeforeFooter(c.SpaceBeforeFooter).
		WithEscapeItems(c.EscapeItems).
		WithItemSeparator(c.ItemSeparator).
		WithItemsPerPage(c.ItemsPerPage).
		WithPageJumperStartButtons(c.PageJumperStartButtons).
		WithPageJumperEndButtons(c.PageJumperEndButtons).
		Build()
}

// LoadOptions reads ListOptions from a TOML file. Missing keys keep defaults.
func LoadOptions(path string) (ListOptions, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return ListOptions{}, fmt.Errorf("failed to load list options from %s: %w", path, err)
	}

	return OptionsFromKoanf(k, "")
}

// OptionsFromKoanf reads ListOptions stored under key of an already loaded koanf
// instance. An empty key reads the root.
func OptionsFromKoanf(k *koanf.Koanf, key string) (ListOptions, error) {
	cfg := DefaultOptionsConfig()

	if err := k.Unmarshal(key, &cfg); err != nil {
		return ListOptions{}, fmt.Errorf("error unmarshaling list options: %w", err)
	}

	options, err := cfg.Options()
	if err != nil {
		return ListOptions{}, fmt.Errorf("invalid list options config: %w", err)
	}

	return options, nil
}

func parseThemeColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: theme color '%s': %w", ErrInvalidOptions, hex, err)
	}

	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
