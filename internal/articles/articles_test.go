package articles

import (
	"context"
	"testing"
	"testing/fstest"
	"time"
)

const samplePost = `---
title: Vue 响应式原理
date: 2024-03-01
tags:
  - vue
  - frontend
---

# 响应式

Vue uses proxies to track reads.

` + "```js\nconst state = reactive({ count: 0 })\n```\n"

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte(samplePost))
	if err != nil {
		t.Fatalf("ParseFrontMatter returned error: %v", err)
	}
	if meta.Title != "Vue 响应式原理" {
		t.Fatalf("unexpected title %q", meta.Title)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "vue" {
		t.Fatalf("unexpected tags %v", meta.Tags)
	}
	if meta.Date.Year() != 2024 || meta.Date.Month() != time.March {
		t.Fatalf("unexpected date %v", meta.Date)
	}
	if len(body) == 0 || body[0] == '-' {
		t.Fatalf("expected body without frontmatter, got %q", body)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("# Just text\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter returned error: %v", err)
	}
	if meta.Title != "" || string(body) != "# Just text\n" {
		t.Fatalf("unexpected result %+v %q", meta, body)
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"latin", "Hello brave new world", 4},
		{"cjk", "你好世界", 4},
		{"mixed", "学习 Go 语言 in 2024", 7},
		{"apostrophe", "don't stop", 2},
		{"code skipped", "one\n\n```go\nfunc main() {}\n```\n", 1},
		{"inline emphasis", "a **bold** move", 3},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountWords([]byte(tc.body)); got != tc.want {
				t.Fatalf("expected %d words, got %d", tc.want, got)
			}
		})
	}
}

func TestReadingMinutes(t *testing.T) {
	cases := []struct {
		words, wpm, want int
	}{
		{0, 300, 0},
		{1, 300, 1},
		{300, 300, 1},
		{301, 300, 2},
		{600, 0, 2},
	}
	for _, tc := range cases {
		if got := ReadingMinutes(tc.words, tc.wpm); got != tc.want {
			t.Fatalf("ReadingMinutes(%d, %d) = %d, want %d", tc.words, tc.wpm, got, tc.want)
		}
	}
}

func TestInspectFallsBackToDefaultAuthor(t *testing.T) {
	inspector := NewInspector(Config{DefaultAuthor: "Chiko"}, nil)
	post, err := inspector.Inspect("posts/vue.md", []byte(samplePost))
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if post.FrontMatter.Author != "Chiko" {
		t.Fatalf("expected default author, got %q", post.FrontMatter.Author)
	}
	if post.Words == 0 || post.ReadingMinutes != 1 {
		t.Fatalf("unexpected counts words=%d minutes=%d", post.Words, post.ReadingMinutes)
	}

	own, err := inspector.Inspect("posts/own.md", []byte("---\nauthor: Guest\n---\nhi\n"))
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if own.FrontMatter.Author != "Guest" {
		t.Fatalf("expected declared author, got %q", own.FrontMatter.Author)
	}
	if own.Title() != "own" {
		t.Fatalf("expected file name title, got %q", own.Title())
	}
}

func TestInspectHonoursHiddenReadingTime(t *testing.T) {
	inspector := NewInspector(Config{HideReadingTime: true}, nil)
	post, err := inspector.Inspect("posts/vue.md", []byte(samplePost))
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if post.Words == 0 {
		t.Fatal("expected words to be counted")
	}
	if post.ReadingMinutes != 0 {
		t.Fatalf("expected no reading time, got %d", post.ReadingMinutes)
	}
}

func TestLoadDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/a.md":        {Data: []byte("---\ntitle: A\n---\nalpha\n")},
		"posts/nested/b.md": {Data: []byte("---\ntitle: B\n---\nbeta\n")},
		"posts/notes.txt":   {Data: []byte("ignored")},
		"posts/nested/c.md": {Data: []byte("gamma delta\n")},
	}
	inspector := NewInspector(Config{}, nil)
	posts, err := inspector.LoadDirectory(context.Background(), fsys, "posts")
	if err != nil {
		t.Fatalf("LoadDirectory returned error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Path != "posts/a.md" || posts[2].Path != "posts/nested/c.md" {
		t.Fatalf("unexpected order %s %s %s", posts[0].Path, posts[1].Path, posts[2].Path)
	}
}

func TestLoadDirectoryHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fsys := fstest.MapFS{"posts/a.md": {Data: []byte("a")}}
	if _, err := NewInspector(Config{}, nil).LoadDirectory(ctx, fsys, "posts"); err == nil {
		t.Fatal("expected cancelled context to stop loading")
	}
}

func datedPost(path string, date string, tags ...string) *Post {
	parsed, _ := time.Parse("2006-01-02", date)
	return &Post{Path: path, FrontMatter: FrontMatter{Date: parsed, Tags: tags}}
}

func TestRelatedRanksBySharedTagsThenDate(t *testing.T) {
	current := datedPost("vue.md", "2024-03-01", "vue", "frontend")
	hidden := datedPost("hidden.md", "2024-05-01", "vue", "frontend")
	hidden.FrontMatter.Hidden = true
	optOut := datedPost("optout.md", "2024-05-01", "vue")
	no := false
	optOut.FrontMatter.Recommend = &no

	posts := []*Post{
		current,
		datedPost("react.md", "2024-01-01", "frontend"),
		datedPost("pinia.md", "2023-01-01", "vue", "frontend"),
		datedPost("css.md", "2024-02-01", "frontend"),
		datedPost("go.md", "2024-06-01", "backend"),
		hidden,
		optOut,
	}

	got := Related(posts, current, 3)
	want := []string{"pinia.md", "css.md", "react.md"}
	if len(got) != len(want) {
		t.Fatalf("expected %d related posts, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.Path != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], p.Path)
		}
	}

	all := Related(posts, current, 0)
	if len(all) != 4 {
		t.Fatalf("expected every recommendable post without a limit, got %d", len(all))
	}
}
