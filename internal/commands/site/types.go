package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chen-ziwen/chiko-blog/internal/export"
)

const (
	exportSiteMessageType   = "blog.site.export"
	validateSiteMessageType = "blog.site.validate"
)

// ResultCallback receives the export result. It is optional and runs
// synchronously inside the handler.
type ResultCallback func(*export.Result)

// ExportSiteCommand writes the site descriptor to disk.
type ExportSiteCommand struct {
	Dir            string         `json:"dir,omitempty"`
	Formats        []string       `json:"formats,omitempty"`
	Force          bool           `json:"force,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ExportSiteCommand) Type() string { return exportSiteMessageType }

// Validate rejects unknown formats and blank directories.
func (m ExportSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.Dir != "" && strings.TrimSpace(m.Dir) == "" {
		errs["dir"] = validation.NewError("blog.site.export.dir_blank", "dir must not be blank")
	}
	for _, format := range m.Formats {
		if _, err := export.ParseFormats(format); err != nil || strings.TrimSpace(format) == "" {
			errs["formats"] = validation.NewError("blog.site.export.format_invalid", "formats must be json or yaml")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSiteCommand rebuilds the descriptor and runs every check on it.
type ValidateSiteCommand struct {
	// SkipSchema disables the JSON schema check.
	SkipSchema bool `json:"skip_schema,omitempty"`
}

// Type implements command.Message.
func (ValidateSiteCommand) Type() string { return validateSiteMessageType }

// Validate implements command.Message validation; there is nothing to check.
func (ValidateSiteCommand) Validate() error { return nil }
