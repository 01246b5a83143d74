// Package comments renders the giscus comment binding declared in the theme
// options into the script tag giscus expects.
package comments

import (
	"html"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
)

// ClientScript is the giscus loader.
const ClientScript = "https://giscus.app/client.js"

const (
	DefaultMapping = "pathname"
	DefaultLang    = "zh-CN"
	DefaultLoading = "lazy"
	DefaultTheme   = "preferred_color_scheme"
)

const textCodeBindingInvalid = "COMMENT_BINDING_INVALID"

// Attributes returns the data-* attributes of the giscus script for c.
// Unset optional fields fall back to the defaults above; siteLang, when not
// empty, replaces DefaultLang.
func Attributes(c descriptor.Comment, siteLang string) (map[string]string, error) {
	if err := c.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "comment binding invalid").
			WithTextCode(textCodeBindingInvalid)
	}

	lang := firstNonEmpty(c.Lang, siteLang, DefaultLang)
	return map[string]string{
		"data-repo":              c.Repo,
		"data-repo-id":           c.RepoID,
		"data-category":          c.Category,
		"data-category-id":       c.CategoryID,
		"data-mapping":           firstNonEmpty(c.Mapping, DefaultMapping),
		"data-strict":            "0",
		"data-reactions-enabled": "1",
		"data-emit-metadata":     "0",
		"data-input-position":    c.InputPosition,
		"data-theme":             DefaultTheme,
		"data-lang":              lang,
		"data-loading":           firstNonEmpty(c.Loading, DefaultLoading),
	}, nil
}

// ScriptTag returns the binding as a head tag that loads the giscus client.
func ScriptTag(c descriptor.Comment, siteLang string) (descriptor.HeadTag, error) {
	attrs, err := Attributes(c, siteLang)
	if err != nil {
		return descriptor.HeadTag{}, err
	}
	attrs["src"] = ClientScript
	attrs["crossorigin"] = "anonymous"
	attrs["async"] = ""
	return descriptor.Script(attrs, ""), nil
}

// Snippet renders the script tag as HTML with attributes in sorted order.
func Snippet(c descriptor.Comment, siteLang string) (string, error) {
	tag, err := ScriptTag(c, siteLang)
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(tag.Attrs))
	for key := range tag.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<script")
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		if value := tag.Attrs[key]; value != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(value))
			b.WriteByte('"')
		}
	}
	b.WriteString("></script>")
	return b.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
