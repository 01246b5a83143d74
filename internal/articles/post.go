package articles

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/chen-ziwen/chiko-blog/internal/identity"
	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// Post is a parsed markdown article.
type Post struct {
	ID             uuid.UUID   `json:"id"`
	Path           string      `json:"path"`
	FrontMatter    FrontMatter `json:"frontmatter"`
	Words          int         `json:"words"`
	ReadingMinutes int         `json:"readingMinutes,omitempty"`
	Body           []byte      `json:"-"`
}

// Title returns the frontmatter title, or the file name without extension.
func (p Post) Title() string {
	if title := strings.TrimSpace(p.FrontMatter.Title); title != "" {
		return title
	}
	return strings.TrimSuffix(path.Base(p.Path), path.Ext(p.Path))
}

// Config controls how posts are inspected.
type Config struct {
	// DefaultAuthor is used when a post does not name its author.
	DefaultAuthor string
	// WordsPerMinute drives the reading time estimate.
	WordsPerMinute int
	// HideReadingTime leaves ReadingMinutes at zero, mirroring a theme
	// that switched article.readingTime off.
	HideReadingTime bool
	// Pattern selects files when loading a directory. Defaults to "*.md".
	Pattern string
}

// Inspector turns markdown sources into posts.
type Inspector struct {
	cfg    Config
	logger interfaces.Logger
}

// NewInspector returns an inspector. A nil logger discards output.
func NewInspector(cfg Config, logger interfaces.Logger) *Inspector {
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = DefaultWordsPerMinute
	}
	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "*.md"
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Inspector{cfg: cfg, logger: logger}
}

// Inspect parses source as the post stored at name.
func (i *Inspector) Inspect(name string, source []byte) (*Post, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("articles: %s: %w", name, err)
	}
	if strings.TrimSpace(meta.Author) == "" {
		meta.Author = i.cfg.DefaultAuthor
	}

	words := CountWords(body)
	post := &Post{
		ID:          identity.ArticleUUID(name),
		Path:        name,
		FrontMatter: meta,
		Words:       words,
		Body:        body,
	}
	if !i.cfg.HideReadingTime {
		post.ReadingMinutes = ReadingMinutes(words, i.cfg.WordsPerMinute)
	}
	logging.WithArticleContext(i.logger, name).Debug("article.inspected",
		"words", words,
		"reading_minutes", post.ReadingMinutes,
	)
	return post, nil
}

// LoadFile reads and inspects a single post from fsys.
func (i *Inspector) LoadFile(ctx context.Context, fsys fs.FS, name string) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("articles: read %s: %w", name, err)
	}
	return i.Inspect(name, data)
}

// LoadDirectory inspects every post under dir matching the configured
// pattern, sorted by path.
func (i *Inspector) LoadDirectory(ctx context.Context, fsys fs.FS, dir string) ([]*Post, error) {
	var posts []*Post
	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := path.Match(i.cfg.Pattern, path.Base(name))
		if err != nil {
			return fmt.Errorf("articles: pattern %q: %w", i.cfg.Pattern, err)
		}
		if !matched {
			return nil
		}
		post, err := i.LoadFile(ctx, fsys, name)
		if err != nil {
			return err
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(a, b int) bool { return posts[a].Path < posts[b].Path })
	i.logger.Info("articles.loaded", "dir", dir, "count", len(posts))
	return posts, nil
}

// Related lists the posts recommended under current: other recommendable
// posts ranked by the number of tags they share with current, then newest
// first, then by path. At most pageSize posts are returned; pageSize <= 0
// means no limit.
func Related(posts []*Post, current *Post, pageSize int) []*Post {
	if current == nil {
		return nil
	}
	tags := make(map[string]struct{}, len(current.FrontMatter.Tags))
	for _, tag := range current.FrontMatter.Tags {
		tags[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	type ranked struct {
		post   *Post
		shared int
	}
	candidates := make([]ranked, 0, len(posts))
	for _, post := range posts {
		if post == nil || post.Path == current.Path || !post.FrontMatter.Recommendable() {
			continue
		}
		shared := 0
		for _, tag := range post.FrontMatter.Tags {
			if _, ok := tags[strings.ToLower(strings.TrimSpace(tag))]; ok {
				shared++
			}
		}
		candidates = append(candidates, ranked{post: post, shared: shared})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		left, right := candidates[a], candidates[b]
		if left.shared != right.shared {
			return left.shared > right.shared
		}
		if !left.post.FrontMatter.Date.Equal(right.post.FrontMatter.Date) {
			return left.post.FrontMatter.Date.After(right.post.FrontMatter.Date)
		}
		return left.post.Path < right.post.Path
	})

	if pageSize > 0 && len(candidates) > pageSize {
		candidates = candidates[:pageSize]
	}
	out := make([]*Post, len(candidates))
	for idx, c := range candidates {
		out[idx] = c.post
	}
	return out
}
