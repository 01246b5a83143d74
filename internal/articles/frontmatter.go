package articles

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the post metadata understood by the theme.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title,omitempty"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Author      string         `yaml:"author" json:"author,omitempty"`
	Date        time.Time      `yaml:"date" json:"date,omitempty"`
	Tags        []string       `yaml:"tags" json:"tags,omitempty"`
	Cover       string         `yaml:"cover" json:"cover,omitempty"`
	Top         int            `yaml:"top" json:"top,omitempty"`
	Hidden      bool           `yaml:"hidden" json:"hidden,omitempty"`
	Recommend   *bool          `yaml:"recommend" json:"recommend,omitempty"`
	Custom      map[string]any `yaml:",inline" json:"custom,omitempty"`
}

// Recommendable reports whether the post may appear in related lists.
func (f FrontMatter) Recommendable() bool {
	if f.Hidden {
		return false
	}
	return f.Recommend == nil || *f.Recommend
}

// ParseFrontMatter splits source into its metadata and markdown body.
// Sources without a frontmatter block return empty metadata and the whole
// source as body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta, body, nil
}
