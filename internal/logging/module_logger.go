package logging

import (
	"context"
	"strings"

	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

const (
	rootModule     = "blog"
	themeModule    = "blog.theme"
	siteModule     = "blog.site"
	exportModule   = "blog.export"
	articlesModule = "blog.articles"
)

const (
	fieldArticlePath = "article_path"
	fieldExportDir   = "output_dir"
	fieldExportFmt   = "format"
)

// ModuleLogger returns a logger scoped to module. A nil provider yields the
// no-op logger. The module name is attached as the "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ThemeLogger returns the logger used by the theme configuration unit.
func ThemeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themeModule)
}

// SiteLogger returns the logger used by the site configuration unit.
func SiteLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, siteModule)
}

// ExportLogger returns the logger used by descriptor writers.
func ExportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exportModule)
}

// ArticlesLogger returns the logger used when inspecting markdown posts.
func ArticlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articlesModule)
}

// WithExportContext adds the output directory and format to logger.
// Empty values are skipped.
func WithExportContext(logger interfaces.Logger, dir, format string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(dir); trimmed != "" {
		fields[fieldExportDir] = trimmed
	}
	if trimmed := strings.TrimSpace(format); trimmed != "" {
		fields[fieldExportFmt] = trimmed
	}
	return WithFields(logger, fields)
}

// WithArticleContext adds the markdown path being inspected to logger.
func WithArticleContext(logger interfaces.Logger, path string) interfaces.Logger {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		return WithFields(logger, map[string]any{fieldArticlePath: trimmed})
	}
	return logger
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
