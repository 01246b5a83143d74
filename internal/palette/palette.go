// Package palette knows the color tokens accepted by the blog theme's
// themeColor option and resolves each to a set of CSS variables through a
// go-theme registry.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ErrUnknownToken is returned for themeColor values outside the palette.
var ErrUnknownToken = errors.New("palette: unknown theme color token")

// CSSVariablePrefix is prepended to every generated CSS variable.
const CSSVariablePrefix = "--blog-"

const manifestVersion = "1.0.0"

// Palette is the resolved form of a themeColor token.
type Palette struct {
	Token   string            `json:"token"`
	Tokens  map[string]string `json:"tokens"`
	CSSVars map[string]string `json:"cssVars"`
}

type swatch struct {
	brand   string
	light   string
	lighter string
	dark    string
}

// Palettes shipped by the theme. vp-* follow the generator defaults, el-*
// follow Element Plus.
var swatches = map[string]swatch{
	"vp-default": {brand: "#3451b2", light: "#3a5ccc", lighter: "#5672cd", dark: "#3a5ccc"},
	"vp-green":   {brand: "#10b981", light: "#34d399", lighter: "#6ee7b7", dark: "#059669"},
	"vp-yellow":  {brand: "#d97706", light: "#f59e0b", lighter: "#fbbf24", dark: "#b45309"},
	"vp-red":     {brand: "#f43f5e", light: "#fb7185", lighter: "#fda4af", dark: "#e11d48"},
	"el-blue":    {brand: "#409eff", light: "#79bbff", lighter: "#a0cfff", dark: "#337ecc"},
	"el-yellow":  {brand: "#e6a23c", light: "#eebe77", lighter: "#f3d19e", dark: "#b88230"},
	"el-green":   {brand: "#67c23a", light: "#95d475", lighter: "#b3e19d", dark: "#529b2e"},
	"el-red":     {brand: "#f56c6c", light: "#f89898", lighter: "#fab6b6", dark: "#c45656"},
}

var (
	registryOnce sync.Once
	registry     *gotheme.MemoryRegistry
	registryErr  error
)

func sharedRegistry() (*gotheme.MemoryRegistry, error) {
	registryOnce.Do(func() {
		registry = gotheme.NewRegistry()
		for _, token := range Tokens() {
			s := swatches[token]
			manifest := &gotheme.Manifest{
				Name:    token,
				Version: manifestVersion,
				Tokens: map[string]string{
					"brand":         s.brand,
					"brand-light":   s.light,
					"brand-lighter": s.lighter,
					"brand-dark":    s.dark,
				},
			}
			if err := registry.Register(manifest); err != nil {
				registryErr = fmt.Errorf("palette: register %s: %w", token, err)
				return
			}
		}
	})
	return registry, registryErr
}

// Tokens lists every recognised token in sorted order.
func Tokens() []string {
	out := make([]string, 0, len(swatches))
	for token := range swatches {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// IsKnown reports whether token names a palette. Tokens are matched
// exactly, the theme does not fold case.
func IsKnown(token string) bool {
	_, ok := swatches[token]
	return ok
}

// Resolve looks token up in the registry and returns its color tokens and
// CSS variables.
func Resolve(token string) (Palette, error) {
	name := token
	if !IsKnown(name) {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}

	reg, err := sharedRegistry()
	if err != nil {
		return Palette{}, err
	}

	selector := gotheme.Selector{Registry: reg, DefaultTheme: name}
	selection, err := selector.Select(name, "")
	if err != nil {
		return Palette{}, fmt.Errorf("palette: select %s: %w", name, err)
	}

	return Palette{
		Token:   name,
		Tokens:  selection.Tokens(),
		CSSVars: selection.CSSVariables(CSSVariablePrefix),
	}, nil
}
