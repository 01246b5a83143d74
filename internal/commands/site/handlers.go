package sitecmd

import (
	"context"
	"strings"

	"github.com/chen-ziwen/chiko-blog/internal/commands"
	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/export"
	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/internal/validation"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// Source builds the current site descriptor.
type Source func() (descriptor.Descriptor, error)

// ExporterFactory returns an exporter writing into dir.
type ExporterFactory func(dir string) *export.Exporter

// ExportDefaults fill fields an ExportSiteCommand leaves empty.
type ExportDefaults struct {
	Dir     string
	Formats []export.Format
}

// ExportSiteHandler writes the descriptor using the shared command handler.
type ExportSiteHandler struct {
	inner *commands.Handler[ExportSiteCommand]
}

// NewExportSiteHandler constructs a handler exporting what source builds.
func NewExportSiteHandler(source Source, exporters ExporterFactory, defaults ExportDefaults, logger interfaces.Logger, opts ...commands.HandlerOption[ExportSiteCommand]) *ExportSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportSiteCommand) error {
		dir := strings.TrimSpace(msg.Dir)
		if dir == "" {
			dir = defaults.Dir
		}
		formats := defaults.Formats
		if len(msg.Formats) > 0 {
			parsed, err := export.ParseFormats(strings.Join(msg.Formats, ","))
			if err != nil {
				return err
			}
			formats = parsed
		}

		site, err := source()
		if err != nil {
			return err
		}

		exporter := exporters(dir)
		result, err := exporter.Export(ctx, site, export.Request{
			Formats: formats,
			Force:   msg.Force,
			DryRun:  msg.DryRun,
		})
		if err != nil {
			return err
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportSiteCommand]{
		commands.WithLogger[ExportSiteCommand](baseLogger),
		commands.WithOperation[ExportSiteCommand]("site.export"),
		commands.WithMessageFields[ExportSiteCommand](func(msg ExportSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.Dir != "" {
				fields["dir"] = msg.Dir
			}
			if len(msg.Formats) > 0 {
				fields["formats"] = strings.Join(msg.Formats, ",")
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportSiteCommand].
func (h *ExportSiteHandler) Execute(ctx context.Context, msg ExportSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateSiteHandler rebuilds the descriptor and checks it.
type ValidateSiteHandler struct {
	inner *commands.Handler[ValidateSiteCommand]
}

// NewValidateSiteHandler constructs a validation handler.
func NewValidateSiteHandler(source Source, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateSiteCommand]) *ValidateSiteHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ValidateSiteCommand) error {
		site, err := source()
		if err != nil {
			return err
		}
		if err := site.Validate(); err != nil {
			return err
		}
		if msg.SkipSchema {
			return nil
		}
		return validation.ValidateSite(site)
	}

	handlerOpts := []commands.HandlerOption[ValidateSiteCommand]{
		commands.WithLogger[ValidateSiteCommand](logger),
		commands.WithOperation[ValidateSiteCommand]("site.validate"),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateSiteCommand](logger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateSiteCommand].
func (h *ValidateSiteHandler) Execute(ctx context.Context, msg ValidateSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
