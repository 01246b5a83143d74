package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	blog "github.com/chen-ziwen/chiko-blog"
	"github.com/chen-ziwen/chiko-blog/internal/articles"
	"github.com/chen-ziwen/chiko-blog/internal/export"
	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/internal/runtimeconfig"
	"github.com/chen-ziwen/chiko-blog/internal/validation"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// siteModule is the part of blog.Module the CLI drives.
type siteModule interface {
	Encode(format string) ([]byte, error)
	Validate(ctx context.Context) error
	Export(ctx context.Context, opts blog.ExportOptions) (*export.Result, error)
	Inspect(ctx context.Context, path string) (*articles.Post, error)
	CommentSnippet() (string, error)
	Logger() interfaces.Logger
}

type moduleOptions struct {
	OverridesPath string
}

var moduleBuilder = buildModule

var stdout io.Writer = os.Stdout

func buildModule(opts moduleOptions) (siteModule, error) {
	// Status lines go through the module logger, so the CLI logs unless
	// BLOGCONF_FEATURE_LOGGER turns it off.
	base := blog.DefaultConfig()
	base.Features.Logger = true
	cfg, err := runtimeconfig.FromEnv(base)
	if err != nil {
		return nil, err
	}
	if path := strings.TrimSpace(opts.OverridesPath); path != "" {
		cfg.OverridesPath = path
	}
	module, err := blog.New(cfg)
	if err != nil {
		return nil, err
	}
	return module, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("blogconf: %v", err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("blogconf", flag.ContinueOnError)
	overrides := global.String("overrides", "", "YAML file merged over the site configuration")
	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errors.New("missing subcommand (print, validate, export, inspect, giscus, schema)")
	}

	subcommand, subArgs := rest[0], rest[1:]
	switch subcommand {
	case "schema":
		// The schema does not depend on the site, so no module is built.
		_, err := stdout.Write(validation.SiteSchema())
		return err
	case "print", "validate", "export", "inspect", "giscus":
	default:
		return fmt.Errorf("unknown subcommand %q", subcommand)
	}

	module, err := moduleBuilder(moduleOptions{OverridesPath: *overrides})
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}
	if module == nil {
		return errors.New("site module not configured")
	}

	logger := module.Logger()
	if logger == nil {
		logger = logging.NoOp()
	}

	ctx := context.Background()
	switch subcommand {
	case "print":
		return runPrint(module, subArgs)
	case "validate":
		return runValidate(ctx, module, logger, subArgs)
	case "export":
		return runExport(ctx, module, logger, subArgs)
	case "inspect":
		return runInspect(ctx, module, subArgs)
	default:
		return runGiscus(module, subArgs)
	}
}

func runPrint(module siteModule, args []string) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	format := fs.String("format", "json", "Output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := module.Encode(*format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func runValidate(ctx context.Context, module siteModule, logger interfaces.Logger, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := module.Validate(ctx); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	logger.Info("blogconf.validate", "status", "ok")
	return nil
}

func runExport(ctx context.Context, module siteModule, logger interfaces.Logger, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", "", "Output directory (defaults to BLOGCONF_EXPORT_DIR)")
	formats := fs.String("format", "", "Comma separated formats: json,yaml")
	force := fs.Bool("force", false, "Write even when nothing changed")
	dryRun := fs.Bool("dry-run", false, "Report what would be written without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := module.Export(ctx, blog.ExportOptions{
		Dir:     *out,
		Formats: splitList(*formats),
		Force:   *force,
		DryRun:  *dryRun,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if result == nil {
		logger.Info("blogconf.export", "status", "done")
		return nil
	}

	status := "written"
	switch {
	case result.Skipped:
		status = "skipped"
	case result.DryRun:
		status = "dry_run"
	}
	logger.Info("blogconf.export",
		"status", status,
		"files", strings.Join(result.Files, ","),
		"removed", strings.Join(result.Removed, ","),
		"checksum", result.Checksum,
	)
	return nil
}

func runInspect(ctx context.Context, module siteModule, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	file := fs.String("file", "", "Markdown post to inspect")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*file) == "" {
		return errors.New("inspect: --file is required")
	}

	post, err := module.Inspect(ctx, *file)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	fmt.Fprintf(stdout, "title: %s\nauthor: %s\ntags: %s\nwords: %d\nreading_minutes: %d\n",
		post.Title(), post.FrontMatter.Author, strings.Join(post.FrontMatter.Tags, ","), post.Words, post.ReadingMinutes)
	return nil
}

func runGiscus(module siteModule, args []string) error {
	fs := flag.NewFlagSet("giscus", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	snippet, err := module.CommentSnippet()
	if err != nil {
		return fmt.Errorf("giscus: %w", err)
	}
	_, err = fmt.Fprintln(stdout, snippet)
	return err
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
