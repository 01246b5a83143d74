package blog

import "github.com/chen-ziwen/chiko-blog/internal/descriptor"

// Site returns the site level settings. Extends is left empty; the module
// points it at the theme extension when the descriptor is built.
func Site() descriptor.Descriptor {
	return descriptor.Descriptor{
		Lang:        "zh-CN",
		Title:       "Chiko Blog",
		Description: "Chiko 的个人博客，记录前端、工程化与生活",
		Head: []descriptor.HeadTag{
			descriptor.Link(map[string]string{"rel": "icon", "href": "/favicon.ico"}),
			descriptor.Meta(map[string]string{"name": "referrer", "content": "no-referrer"}),
		},
		LastUpdated: descriptor.Bool(true),
		ThemeConfig: descriptor.ThemeConfig{
			Logo: "/logo.png",
			Nav: []descriptor.NavItem{
				{Text: "首页", Link: "/"},
				{Text: "前端", Items: []descriptor.NavItem{
					{Text: "Vue", Link: "/frontend/vue/"},
					{Text: "React", Link: "/frontend/react/"},
					{Text: "工程化", Link: "/frontend/engineering/"},
				}},
				{Text: "后端", Items: []descriptor.NavItem{
					{Text: "Node.js", Link: "/backend/node/"},
					{Text: "Go", Link: "/backend/go/"},
				}},
				{Text: "关于", Link: "/about/"},
			},
			SocialLinks: []descriptor.SocialLink{
				{Icon: "github", Link: "https://github.com/chen-ziwen"},
			},
			Outline: &descriptor.Outline{
				Level: []int{2, 3},
				Label: "目录",
			},
			LastUpdatedText: "上次更新",
		},
	}
}
