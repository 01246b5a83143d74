package themeconfig_test

import (
	"encoding/json"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/themeconfig"
)

func options() descriptor.BlogOptions {
	return descriptor.BlogOptions{
		Footer:     &descriptor.Footer{Copyright: "MIT License | chiko", Version: descriptor.Bool(false)},
		ThemeColor: "el-yellow",
		Author:     "Chiko",
		Recommend:  &descriptor.Recommend{Title: "✨ 相关文章", PageSize: 10},
		Comment: &descriptor.Comment{
			Repo:          "chen-ziwen/chiko_blog",
			RepoID:        "R_kgDON_Ep0g",
			Category:      "Announcements",
			CategoryID:    "DIC_kwDON_Ep0s4CndAR",
			InputPosition: descriptor.InputPositionBottom,
		},
	}
}

func TestGetThemeConfigWrapsOptions(t *testing.T) {
	opts := options()
	ext, err := themeconfig.GetThemeConfig(opts)
	if err != nil {
		t.Fatalf("GetThemeConfig returned error: %v", err)
	}
	if ext.ThemeConfig.Blog == nil {
		t.Fatal("expected blog options on the extension")
	}
	if ext.Title != "" || ext.Lang != "" || len(ext.ThemeConfig.Nav) != 0 {
		t.Fatalf("expected only blog options to be set, got %+v", ext)
	}

	ext.ThemeConfig.Blog.Comment.Repo = "someone/else"
	if opts.Comment.Repo != "chen-ziwen/chiko_blog" {
		t.Fatal("extension aliases the caller's options")
	}
}

func TestGetThemeConfigKeepsFooterExactly(t *testing.T) {
	ext, err := themeconfig.GetThemeConfig(options())
	if err != nil {
		t.Fatalf("GetThemeConfig returned error: %v", err)
	}
	data, err := json.Marshal(ext.ThemeConfig.Blog.Footer)
	if err != nil {
		t.Fatalf("marshal footer: %v", err)
	}
	if string(data) != `{"copyright":"MIT License | chiko","version":false}` {
		t.Fatalf("unexpected footer json %s", data)
	}
}

func TestGetThemeConfigRejectsInvalidOptions(t *testing.T) {
	cases := map[string]func(*descriptor.BlogOptions){
		"unknown color":       func(o *descriptor.BlogOptions) { o.ThemeColor = "hot-pink" },
		"upper case color":    func(o *descriptor.BlogOptions) { o.ThemeColor = "EL-YELLOW" },
		"padded color":        func(o *descriptor.BlogOptions) { o.ThemeColor = " el-yellow " },
		"zero page size":      func(o *descriptor.BlogOptions) { o.Recommend.PageSize = 0 },
		"missing category":    func(o *descriptor.BlogOptions) { o.Comment.CategoryID = "" },
		"left input position": func(o *descriptor.BlogOptions) { o.Comment.InputPosition = "left" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := options()
			mutate(&opts)
			_, err := themeconfig.GetThemeConfig(opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation category, got %v", err)
			}
		})
	}
}

func TestGetThemeConfigAcceptsEmptyOptions(t *testing.T) {
	if _, err := themeconfig.GetThemeConfig(descriptor.BlogOptions{}); err != nil {
		t.Fatalf("expected empty options to be valid, got %v", err)
	}
}

func TestPaletteResolvesThemeColor(t *testing.T) {
	p, err := themeconfig.Palette(options())
	if err != nil {
		t.Fatalf("Palette returned error: %v", err)
	}
	if p.Token != "el-yellow" {
		t.Fatalf("expected el-yellow, got %s", p.Token)
	}

	fallback, err := themeconfig.Palette(descriptor.BlogOptions{})
	if err != nil {
		t.Fatalf("Palette returned error for default: %v", err)
	}
	if fallback.Token != themeconfig.DefaultThemeColor {
		t.Fatalf("expected default palette, got %s", fallback.Token)
	}
}
