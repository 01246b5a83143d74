package blog

import "github.com/chen-ziwen/chiko-blog/internal/descriptor"

// BlogTheme returns the theme options of the blog. Friend links, the
// announcement popover and the ICP/security record links are not used.
func BlogTheme() descriptor.BlogOptions {
	return descriptor.BlogOptions{
		Footer: &descriptor.Footer{
			Copyright: "MIT License | chiko",
			Version:   descriptor.Bool(false),
		},
		ThemeColor: "el-yellow",
		Author:     "Chiko",
		Recommend: &descriptor.Recommend{
			Title:    "✨ 相关文章",
			PageSize: 10,
		},
		Comment: &descriptor.Comment{
			Repo:          "chen-ziwen/chiko_blog",
			RepoID:        "R_kgDON_Ep0g",
			Category:      "Announcements",
			CategoryID:    "DIC_kwDON_Ep0s4CndAR",
			InputPosition: descriptor.InputPositionBottom,
		},
		Article: &descriptor.Article{
			ReadingTime: descriptor.Bool(true),
		},
	}
}
