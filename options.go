package blog

import (
	"time"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/export"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// Option customises Module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider  interfaces.LoggerProvider
	theme     *descriptor.BlogOptions
	site      *descriptor.Descriptor
	overrides []descriptor.Descriptor
	writers   func(dir string) export.ArtifactWriter
	clock     func() time.Time
}

// WithLoggerProvider replaces the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithThemeOptions replaces BlogTheme().
func WithThemeOptions(opts descriptor.BlogOptions) Option {
	return func(o *moduleOptions) {
		clone := opts.Clone()
		o.theme = &clone
	}
}

// WithSite replaces Site(). Its Extends field is ignored.
func WithSite(site descriptor.Descriptor) Option {
	return func(o *moduleOptions) {
		clone := site.Clone()
		clone.Extends = nil
		o.site = &clone
	}
}

// WithOverrides merges d over the site. Repeated calls stack in order, the
// last one wins.
func WithOverrides(d descriptor.Descriptor) Option {
	return func(o *moduleOptions) {
		clone := d.Clone()
		clone.Extends = nil
		o.overrides = append(o.overrides, clone)
	}
}

// WithArtifactWriters routes exports through the writer returned for each
// target directory instead of the filesystem.
func WithArtifactWriters(fn func(dir string) export.ArtifactWriter) Option {
	return func(o *moduleOptions) {
		o.writers = fn
	}
}

// WithClock sets the time stamped into export manifests.
func WithClock(now func() time.Time) Option {
	return func(o *moduleOptions) {
		o.clock = now
	}
}
