// Package blog assembles the chiko blog site descriptor: the theme options,
// the site settings layered over them, and the exports handed to the static
// site generator.
package blog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chen-ziwen/chiko-blog/internal/articles"
	"github.com/chen-ziwen/chiko-blog/internal/commands"
	sitecmd "github.com/chen-ziwen/chiko-blog/internal/commands/site"
	"github.com/chen-ziwen/chiko-blog/internal/comments"
	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/export"
	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/internal/palette"
	"github.com/chen-ziwen/chiko-blog/internal/siteconfig"
	"github.com/chen-ziwen/chiko-blog/internal/themeconfig"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// ErrCommentsDisabled is returned by CommentSnippet when the theme declares
// no comment binding.
var ErrCommentsDisabled = errors.New("blog: comments are not configured")

// Descriptor is the finished site configuration.
type Descriptor = descriptor.Descriptor

// BlogOptions are the theme options stored under themeConfig.blog.
type BlogOptions = descriptor.BlogOptions

// Module is the runtime facade over the site descriptor. The descriptor is
// built once by New and never changes afterwards.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	site     descriptor.Descriptor

	exportHandler   *sitecmd.ExportSiteHandler
	validateHandler *sitecmd.ValidateSiteHandler
	inspector       *articles.Inspector
}

// New validates cfg, builds the descriptor and wires the command handlers.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.provider
	if provider == nil {
		built, err := newLoggerProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("blog: logger provider: %w", err)
		}
		provider = built
	}

	if strings.TrimSpace(cfg.OverridesPath) != "" {
		fromFile, err := LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return nil, err
		}
		options.overrides = append([]descriptor.Descriptor{fromFile}, options.overrides...)
	}

	theme := BlogTheme()
	if options.theme != nil {
		theme = *options.theme
	}
	site := Site()
	if options.site != nil {
		site = *options.site
	}

	m := &Module{
		cfg:      cfg,
		provider: provider,
		logger:   logging.ModuleLogger(provider, ""),
	}

	built, err := m.build(theme, site, options.overrides)
	if err != nil {
		return nil, err
	}
	m.site = built

	m.wireHandlers(options)

	merged := m.ThemeOptions()
	m.inspector = articles.NewInspector(articles.Config{
		DefaultAuthor:   merged.Author,
		WordsPerMinute:  cfg.Articles.WordsPerMinute,
		HideReadingTime: merged.Article != nil && merged.Article.ReadingTime != nil && !*merged.Article.ReadingTime,
	}, logging.ArticlesLogger(provider))

	return m, nil
}

func (m *Module) build(theme descriptor.BlogOptions, site descriptor.Descriptor, overrides []descriptor.Descriptor) (descriptor.Descriptor, error) {
	themeLogger := logging.ThemeLogger(m.provider)
	extension, err := themeconfig.GetThemeConfig(theme)
	if err != nil {
		themeLogger.Error("theme.options.invalid", "error", err)
		return descriptor.Descriptor{}, err
	}
	themeLogger.Debug("theme.extension.ready", "theme_color", theme.ThemeColor)

	head := site.Clone()
	head.Extends = &extension
	for _, override := range overrides {
		next := override.Clone()
		base := head
		next.Extends = &base
		head = next
	}

	return siteconfig.DefineConfig(head,
		siteconfig.WithLogger(logging.SiteLogger(m.provider)),
		siteconfig.WithSchemaValidation(m.cfg.Schema.Enabled),
	)
}

func (m *Module) wireHandlers(options moduleOptions) {
	source := func() (descriptor.Descriptor, error) {
		return m.site.Clone(), nil
	}

	exportLogger := logging.ExportLogger(m.provider)
	exporters := func(dir string) *export.Exporter {
		var writer export.ArtifactWriter = export.NewDirWriter(dir)
		if options.writers != nil {
			writer = options.writers(dir)
		}
		return export.NewExporter(writer,
			export.WithLogger(logging.WithExportContext(exportLogger, dir, "")),
			export.WithClock(options.clock),
		)
	}

	formats, err := export.ParseFormats(strings.Join(m.cfg.Export.Formats, ","))
	if err != nil {
		// cfg.Validate already rejected unknown formats.
		formats = []export.Format{export.FormatJSON}
	}

	m.exportHandler = sitecmd.NewExportSiteHandler(source, exporters, sitecmd.ExportDefaults{
		Dir:     m.cfg.Export.Dir,
		Formats: formats,
	}, commands.CommandLogger(m.provider, "site"),
		commands.WithTimeout[sitecmd.ExportSiteCommand](m.cfg.Commands.Timeout),
	)
	m.validateHandler = sitecmd.NewValidateSiteHandler(source,
		commands.CommandLogger(m.provider, "site"),
		commands.WithTimeout[sitecmd.ValidateSiteCommand](m.cfg.Commands.Timeout),
	)
}

// Config returns the runtime configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// Descriptor returns a deep copy of the finished site descriptor.
func (m *Module) Descriptor() Descriptor {
	return m.site.Clone()
}

// ThemeOptions returns a copy of the merged theme options.
func (m *Module) ThemeOptions() BlogOptions {
	if m.site.ThemeConfig.Blog == nil {
		return BlogOptions{}
	}
	return m.site.ThemeConfig.Blog.Clone()
}

// Palette resolves the palette selected by the merged themeColor.
func (m *Module) Palette() (palette.Palette, error) {
	return themeconfig.Palette(m.ThemeOptions())
}

// ExportOptions override the configured export target for one call.
type ExportOptions struct {
	Dir     string
	Formats []string
	Force   bool
	DryRun  bool
}

// Export writes the descriptor through the export command handler.
func (m *Module) Export(ctx context.Context, opts ExportOptions) (*export.Result, error) {
	var result *export.Result
	err := m.exportHandler.Execute(ctx, sitecmd.ExportSiteCommand{
		Dir:     opts.Dir,
		Formats: opts.Formats,
		Force:   opts.Force,
		DryRun:  opts.DryRun,
		ResultCallback: func(r *export.Result) {
			result = r
		},
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Validate re-checks the descriptor, including the JSON schema when enabled.
func (m *Module) Validate(ctx context.Context) error {
	return m.validateHandler.Execute(ctx, sitecmd.ValidateSiteCommand{
		SkipSchema: !m.cfg.Schema.Enabled,
	})
}

// Encode renders the descriptor in format ("json" or "yaml").
func (m *Module) Encode(format string) ([]byte, error) {
	formats, err := export.ParseFormats(format)
	if err != nil {
		return nil, err
	}
	return export.Encode(m.site, formats[0])
}

// Inspect reads the markdown post at path.
func (m *Module) Inspect(ctx context.Context, path string) (*articles.Post, error) {
	return m.inspector.LoadFile(ctx, os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Posts loads every post under the configured articles directory.
func (m *Module) Posts(ctx context.Context) ([]*articles.Post, error) {
	return m.inspector.LoadDirectory(ctx, os.DirFS(m.cfg.Articles.Dir), ".")
}

// Related returns the posts recommended under the post stored at name,
// relative to the articles directory, capped by recommend.pageSize.
func (m *Module) Related(ctx context.Context, name string) ([]*articles.Post, error) {
	posts, err := m.Posts(ctx)
	if err != nil {
		return nil, err
	}
	name = filepath.ToSlash(filepath.Clean(name))
	var current *articles.Post
	for _, post := range posts {
		if post.Path == name {
			current = post
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("blog: post %q not found under %s: %w", name, m.cfg.Articles.Dir, os.ErrNotExist)
	}

	pageSize := 0
	if recommend := m.ThemeOptions().Recommend; recommend != nil {
		pageSize = recommend.PageSize
	}
	return articles.Related(posts, current, pageSize), nil
}

// CommentSnippet renders the giscus script tag for the configured binding.
func (m *Module) CommentSnippet() (string, error) {
	options := m.ThemeOptions()
	if options.Comment == nil {
		return "", ErrCommentsDisabled
	}
	return comments.Snippet(*options.Comment, m.site.Lang)
}
