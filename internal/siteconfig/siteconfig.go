// Package siteconfig finishes a site descriptor: it resolves the extension
// chain, merges it, and validates the result.
package siteconfig

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/internal/validation"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

const (
	textCodeExtendsCycle = "SITE_EXTENDS_CYCLE"
	textCodeMergeFailed  = "SITE_MERGE_FAILED"
	textCodeInvalid      = "SITE_CONFIG_INVALID"
	textCodeSchema       = "SITE_SCHEMA_INVALID"
)

// Option configures DefineConfig.
type Option func(*definer)

type definer struct {
	logger interfaces.Logger
	schema bool
}

// WithLogger sets the logger used while the descriptor is built.
func WithLogger(logger interfaces.Logger) Option {
	return func(d *definer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSchemaValidation toggles the JSON schema check of the finished
// descriptor. It is on by default.
func WithSchemaValidation(enabled bool) Option {
	return func(d *definer) {
		d.schema = enabled
	}
}

// DefineConfig resolves site.Extends (oldest base first), merges each level
// with override-wins semantics and validates the result. The returned
// descriptor has Extends cleared and shares no memory with site.
func DefineConfig(site descriptor.Descriptor, opts ...Option) (descriptor.Descriptor, error) {
	d := definer{logger: logging.NoOp(), schema: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}

	resolved, err := descriptor.Resolve(site)
	if err != nil {
		d.logger.Error("site.resolve.failed", "error", err)
		if errors.Is(err, descriptor.ErrExtendsCycle) {
			return descriptor.Descriptor{}, goerrors.Wrap(err, goerrors.CategoryValidation, "site extends chain is cyclic").
				WithTextCode(textCodeExtendsCycle)
		}
		return descriptor.Descriptor{}, goerrors.Wrap(err, goerrors.CategoryValidation, "site descriptor merge failed").
			WithTextCode(textCodeMergeFailed)
	}

	if err := resolved.Validate(); err != nil {
		d.logger.Error("site.validate.failed", "error", err)
		return descriptor.Descriptor{}, goerrors.Wrap(err, goerrors.CategoryValidation, "site descriptor invalid").
			WithTextCode(textCodeInvalid)
	}

	if d.schema {
		if err := validation.ValidateSite(resolved); err != nil {
			d.logger.Error("site.schema.failed", "error", err, "issues", len(validation.Issues(err)))
			return descriptor.Descriptor{}, goerrors.Wrap(err, goerrors.CategoryValidation, "site descriptor does not match schema").
				WithTextCode(textCodeSchema)
		}
	}

	d.logger.Info("site.defined",
		"title", resolved.Title,
		"lang", resolved.Lang,
		"nav_items", len(resolved.ThemeConfig.Nav),
		"head_tags", len(resolved.Head),
	)
	return resolved, nil
}
