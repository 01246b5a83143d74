package descriptor

import "maps"

// Clone returns a deep copy. Extends is cloned as well so the copy shares no
// memory with d.
func (d Descriptor) Clone() Descriptor {
	out := d
	if d.Extends != nil {
		base := d.Extends.Clone()
		out.Extends = &base
	}
	out.Head = cloneSlice(d.Head, HeadTag.clone)
	out.LastUpdated = cloneBool(d.LastUpdated)
	out.CleanURLs = cloneBool(d.CleanURLs)
	out.ThemeConfig = d.ThemeConfig.Clone()
	return out
}

// Clone returns a deep copy of the theme configuration.
func (t ThemeConfig) Clone() ThemeConfig {
	out := t
	if t.Blog != nil {
		blog := t.Blog.Clone()
		out.Blog = &blog
	}
	out.Nav = cloneSlice(t.Nav, NavItem.clone)
	out.SocialLinks = cloneSlice(t.SocialLinks, func(s SocialLink) SocialLink { return s })
	if t.Outline != nil {
		outline := *t.Outline
		outline.Level = cloneSlice(t.Outline.Level, func(v int) int { return v })
		out.Outline = &outline
	}
	return out
}

// Clone returns a deep copy of the blog options.
func (b BlogOptions) Clone() BlogOptions {
	out := b
	if b.Footer != nil {
		footer := *b.Footer
		footer.Message = cloneSlice(b.Footer.Message, func(s string) string { return s })
		footer.Version = cloneBool(b.Footer.Version)
		footer.ICPRecord = clonePtr(b.Footer.ICPRecord)
		footer.SecurityRecord = clonePtr(b.Footer.SecurityRecord)
		out.Footer = &footer
	}
	out.Recommend = clonePtr(b.Recommend)
	out.Comment = clonePtr(b.Comment)
	out.Friend = cloneSlice(b.Friend, func(f FriendLink) FriendLink { return f })
	if b.Popover != nil {
		popover := *b.Popover
		popover.Body = cloneSlice(b.Popover.Body, func(p PopoverBlock) PopoverBlock { return p })
		out.Popover = &popover
	}
	if b.Article != nil {
		out.Article = &Article{
			ReadingTime: cloneBool(b.Article.ReadingTime),
			HiddenCover: cloneBool(b.Article.HiddenCover),
		}
	}
	return out
}

func (h HeadTag) clone() HeadTag {
	out := h
	if h.Attrs != nil {
		out.Attrs = maps.Clone(h.Attrs)
	}
	return out
}

func (n NavItem) clone() NavItem {
	out := n
	out.Items = cloneSlice(n.Items, NavItem.clone)
	return out
}

func cloneSlice[T any](in []T, copyFn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, item := range in {
		out[i] = copyFn(item)
	}
	return out
}

func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func cloneBool(in *bool) *bool {
	return clonePtr(in)
}
