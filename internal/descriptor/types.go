// Package descriptor holds the Site Descriptor consumed by the external site
// generator: site metadata, head tags, navigation, and the blog theme options
// nested under themeConfig.blog. JSON keys follow the generator's own
// configuration keys so the exported document can be read as-is.
package descriptor

// Descriptor is the complete site configuration. Extends points at the
// configuration it builds on; it is resolved by the site configuration unit
// and never serialized.
type Descriptor struct {
	Extends     *Descriptor `json:"-" yaml:"-"`
	Lang        string      `json:"lang,omitempty" yaml:"lang,omitempty"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Head        []HeadTag   `json:"head,omitempty" yaml:"head,omitempty"`
	LastUpdated *bool       `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	CleanURLs   *bool       `json:"cleanUrls,omitempty" yaml:"cleanUrls,omitempty"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
}

// ThemeConfig groups the options read by the theme at render time.
type ThemeConfig struct {
	Blog            *BlogOptions `json:"blog,omitempty" yaml:"blog,omitempty"`
	Logo            string       `json:"logo,omitempty" yaml:"logo,omitempty"`
	Nav             []NavItem    `json:"nav,omitempty" yaml:"nav,omitempty"`
	SocialLinks     []SocialLink `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	Outline         *Outline     `json:"outline,omitempty" yaml:"outline,omitempty"`
	LastUpdatedText string       `json:"lastUpdatedText,omitempty" yaml:"lastUpdatedText,omitempty"`
}

// BlogOptions are the blog theme's own options.
type BlogOptions struct {
	Footer     *Footer      `json:"footer,omitempty" yaml:"footer,omitempty"`
	ThemeColor string       `json:"themeColor,omitempty" yaml:"themeColor,omitempty"`
	Author     string       `json:"author,omitempty" yaml:"author,omitempty"`
	Recommend  *Recommend   `json:"recommend,omitempty" yaml:"recommend,omitempty"`
	Comment    *Comment     `json:"comment,omitempty" yaml:"comment,omitempty"`
	Friend     []FriendLink `json:"friend,omitempty" yaml:"friend,omitempty"`
	Popover    *Popover     `json:"popover,omitempty" yaml:"popover,omitempty"`
	Article    *Article     `json:"article,omitempty" yaml:"article,omitempty"`
}

// Footer is the static text rendered at the bottom of every page. Message
// entries may contain HTML.
type Footer struct {
	Message        []string    `json:"message,omitempty" yaml:"message,omitempty"`
	Copyright      string      `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Version        *bool       `json:"version,omitempty" yaml:"version,omitempty"`
	ICPRecord      *RecordLink `json:"icpRecord,omitempty" yaml:"icpRecord,omitempty"`
	SecurityRecord *RecordLink `json:"securityRecord,omitempty" yaml:"securityRecord,omitempty"`
}

// RecordLink is a legal registration record shown in the footer.
type RecordLink struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link" yaml:"link"`
}

// Recommend configures the related articles widget.
type Recommend struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	PageSize int    `json:"pageSize,omitempty" yaml:"pageSize,omitempty"`
	NextText string `json:"nextText,omitempty" yaml:"nextText,omitempty"`
	Sort     string `json:"sort,omitempty" yaml:"sort,omitempty"`
}

// Comment binds article pages to a giscus discussion category.
type Comment struct {
	Repo          string `json:"repo,omitempty" yaml:"repo,omitempty"`
	RepoID        string `json:"repoId,omitempty" yaml:"repoId,omitempty"`
	Category      string `json:"category,omitempty" yaml:"category,omitempty"`
	CategoryID    string `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	Mapping       string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	InputPosition string `json:"inputPosition,omitempty" yaml:"inputPosition,omitempty"`
	Lang          string `json:"lang,omitempty" yaml:"lang,omitempty"`
	Loading       string `json:"loading,omitempty" yaml:"loading,omitempty"`
}

// Input positions accepted by the comment widget.
const (
	InputPositionTop    = "top"
	InputPositionBottom = "bottom"
)

// FriendLink is a card on the friends page.
type FriendLink struct {
	Nickname string `json:"nickname" yaml:"nickname"`
	Des      string `json:"des,omitempty" yaml:"des,omitempty"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	URL      string `json:"url" yaml:"url"`
}

// Popover is the announcement dialog.
type Popover struct {
	Title    string         `json:"title" yaml:"title"`
	Body     []PopoverBlock `json:"body,omitempty" yaml:"body,omitempty"`
	Duration int            `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Popover block types.
const (
	PopoverText   = "text"
	PopoverImage  = "image"
	PopoverButton = "button"
)

// PopoverBlock is one entry of the announcement body.
type PopoverBlock struct {
	Type    string `json:"type" yaml:"type"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Src     string `json:"src,omitempty" yaml:"src,omitempty"`
	Link    string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Article toggles per-article display features.
type Article struct {
	ReadingTime *bool `json:"readingTime,omitempty" yaml:"readingTime,omitempty"`
	HiddenCover *bool `json:"hiddenCover,omitempty" yaml:"hiddenCover,omitempty"`
}

// NavItem is a node of the header navigation tree. A leaf carries Link, a
// branch carries Items and no Link.
type NavItem struct {
	Text        string    `json:"text" yaml:"text"`
	Link        string    `json:"link,omitempty" yaml:"link,omitempty"`
	ActiveMatch string    `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`
	Items       []NavItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// IsBranch reports whether the item groups children.
func (n NavItem) IsBranch() bool {
	return len(n.Items) > 0
}

// SocialLink is an icon link rendered in the header.
type SocialLink struct {
	Icon      string `json:"icon" yaml:"icon"`
	Link      string `json:"link" yaml:"link"`
	AriaLabel string `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
}

// Outline controls which heading depths the in-page table of contents shows.
type Outline struct {
	Level []int  `json:"level,omitempty" yaml:"level,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Bool returns a pointer to v, for the optional toggles above.
func Bool(v bool) *bool {
	return &v
}
