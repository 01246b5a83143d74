package descriptor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-slug"

	"github.com/chen-ziwen/chiko-blog/internal/palette"
)

// MaxNavDepth is the deepest nesting allowed below the top navigation bar.
const MaxNavDepth = 2

var (
	repoPattern    = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
	headTagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

var (
	errNavLinkRequired = validation.NewError("blog.nav.link_required", "a navigation leaf must have a link")
	errNavBranchLink   = validation.NewError("blog.nav.branch_link", "a navigation group must not have its own link")
	errNavTooDeep      = validation.NewError("blog.nav.too_deep", fmt.Sprintf("navigation must not nest deeper than %d levels", MaxNavDepth))
	errOutlineLevels   = validation.NewError("blog.outline.levels", "outline levels must be distinct ascending heading depths between 1 and 6")
)

// Validate checks the site level invariants, including everything nested
// under themeConfig.
func (d Descriptor) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Lang, validation.Required),
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Head),
		validation.Field(&d.ThemeConfig),
	)
}

func (t ThemeConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Blog),
		validation.Field(&t.Nav, validation.By(navTree)),
		validation.Field(&t.SocialLinks),
		validation.Field(&t.Outline),
	)
}

func (b BlogOptions) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Footer),
		validation.Field(&b.ThemeColor, validation.By(knownThemeColor)),
		validation.Field(&b.Recommend),
		validation.Field(&b.Comment),
		validation.Field(&b.Friend),
		validation.Field(&b.Popover),
	)
}

func (f Footer) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ICPRecord),
		validation.Field(&f.SecurityRecord),
	)
}

func (r RecordLink) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Link, validation.Required, is.RequestURL),
	)
}

func (r Recommend) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageSize, validation.Required, validation.Min(1)),
		validation.Field(&r.Sort, validation.In("date", "filename")),
	)
}

// Validate requires every binding field once the comment block is present.
func (c Comment) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Repo, validation.Required, validation.Match(repoPattern)),
		validation.Field(&c.RepoID, validation.Required),
		validation.Field(&c.Category, validation.Required),
		validation.Field(&c.CategoryID, validation.Required),
		validation.Field(&c.InputPosition, validation.Required, validation.In(InputPositionTop, InputPositionBottom)),
		validation.Field(&c.Mapping, validation.In("pathname", "url", "title", "og:title", "specific", "number")),
		validation.Field(&c.Loading, validation.In("lazy", "eager")),
	)
}

func (f FriendLink) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Nickname, validation.Required),
		validation.Field(&f.URL, validation.Required, is.RequestURL),
	)
}

func (p Popover) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Body),
		validation.Field(&p.Duration, validation.Min(-1)),
	)
}

func (p PopoverBlock) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.Required, validation.In(PopoverText, PopoverImage, PopoverButton)),
		validation.Field(&p.Content, validation.When(p.Type == PopoverText || p.Type == PopoverButton, validation.Required)),
		validation.Field(&p.Src, validation.When(p.Type == PopoverImage, validation.Required)),
		validation.Field(&p.Link, validation.When(p.Type == PopoverButton, validation.Required)),
	)
}

// Validate checks the leaf/branch shape of the item and its children.
// Depth and sibling checks run on the whole tree in ThemeConfig.Validate.
func (n NavItem) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Text, validation.Required),
		validation.Field(&n.Link, validation.By(func(value any) error {
			link, _ := value.(string)
			hasLink := strings.TrimSpace(link) != ""
			switch {
			case n.IsBranch() && hasLink:
				return errNavBranchLink
			case !n.IsBranch() && !hasLink:
				return errNavLinkRequired
			}
			return nil
		})),
		validation.Field(&n.Items),
	)
}

func (s SocialLink) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Icon, validation.Required),
		validation.Field(&s.Link, validation.Required, is.RequestURL),
	)
}

func (o Outline) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Level, validation.By(outlineLevels)),
	)
}

func (h HeadTag) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Tag, validation.Required, validation.Match(headTagPattern)),
	)
}

func knownThemeColor(value any) error {
	token, _ := value.(string)
	if token == "" || palette.IsKnown(token) {
		return nil
	}
	return validation.NewError("blog.theme_color.unknown",
		"must be one of "+strings.Join(palette.Tokens(), ", "))
}

func outlineLevels(value any) error {
	levels, _ := value.([]int)
	for i, level := range levels {
		if level < 1 || level > 6 {
			return errOutlineLevels
		}
		if i > 0 && levels[i-1] >= level {
			return errOutlineLevels
		}
	}
	return nil
}

func navTree(value any) error {
	items, _ := value.([]NavItem)
	return checkNavLevel(items, 0)
}

func checkNavLevel(items []NavItem, depth int) error {
	if len(items) > 0 && depth > MaxNavDepth {
		return errNavTooDeep
	}
	seen := make(map[string]int, len(items))
	for i, item := range items {
		key := NavKey(item.Text)
		if prev, ok := seen[key]; ok {
			return validation.NewError("blog.nav.duplicate",
				fmt.Sprintf("items %d and %d share the label %q", prev, i, item.Text))
		}
		seen[key] = i
		if err := checkNavLevel(item.Items, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// NavKey is the comparison key of a navigation label. ASCII labels compare
// by slug ("About Me" and "about-me" collide); other labels compare by their
// trimmed lower-cased text.
func NavKey(text string) string {
	trimmed := strings.TrimSpace(text)
	if isASCII(trimmed) {
		if normalized, err := slug.Normalize(trimmed); err == nil && normalized != "" {
			return normalized
		}
	}
	return strings.ToLower(trimmed)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
