// Package themeconfig turns blog theme options into a configuration
// extension that a site descriptor can build on.
package themeconfig

import (
	goerrors "github.com/goliatone/go-errors"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/palette"
)

const (
	textCodeOptionsInvalid = "THEME_OPTIONS_INVALID"
	textCodePaletteUnknown = "THEME_PALETTE_UNKNOWN"
)

// DefaultThemeColor is used when options leave themeColor empty.
const DefaultThemeColor = "vp-default"

// GetThemeConfig validates opts and wraps them as an extension descriptor
// whose themeConfig.blog holds a private copy of the options. Options are
// kept as declared; nothing is defaulted into the result.
func GetThemeConfig(opts descriptor.BlogOptions) (descriptor.Descriptor, error) {
	if err := opts.Validate(); err != nil {
		return descriptor.Descriptor{}, goerrors.Wrap(err, goerrors.CategoryValidation, "theme options invalid").
			WithTextCode(textCodeOptionsInvalid)
	}
	blog := opts.Clone()
	return descriptor.Descriptor{
		ThemeConfig: descriptor.ThemeConfig{Blog: &blog},
	}, nil
}

// Palette resolves the palette selected by opts.ThemeColor.
func Palette(opts descriptor.BlogOptions) (palette.Palette, error) {
	token := opts.ThemeColor
	if token == "" {
		token = DefaultThemeColor
	}
	resolved, err := palette.Resolve(token)
	if err != nil {
		return palette.Palette{}, goerrors.Wrap(err, goerrors.CategoryValidation, "theme palette unknown").
			WithTextCode(textCodePaletteUnknown)
	}
	return resolved, nil
}
