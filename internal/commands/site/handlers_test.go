package sitecmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/chen-ziwen/chiko-blog/internal/descriptor"
	"github.com/chen-ziwen/chiko-blog/internal/export"
)

func validSite() (descriptor.Descriptor, error) {
	return descriptor.Descriptor{
		Lang:  "zh-CN",
		Title: "Chiko",
		ThemeConfig: descriptor.ThemeConfig{
			Nav: []descriptor.NavItem{{Text: "首页", Link: "/"}},
		},
	}, nil
}

func dirExporters(root string) ExporterFactory {
	return func(dir string) *export.Exporter {
		return export.NewExporter(export.NewDirWriter(filepath.Join(root, dir)))
	}
}

func TestExportSiteCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		msg     ExportSiteCommand
		wantErr bool
	}{
		{"empty", ExportSiteCommand{}, false},
		{"formats", ExportSiteCommand{Formats: []string{"json", "yaml"}}, false},
		{"unknown format", ExportSiteCommand{Formats: []string{"toml"}}, true},
		{"blank format", ExportSiteCommand{Formats: []string{" "}}, true},
		{"blank dir", ExportSiteCommand{Dir: "  "}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestExportSiteHandlerWritesAndReports(t *testing.T) {
	root := t.TempDir()
	handler := NewExportSiteHandler(validSite, dirExporters(root), ExportDefaults{
		Dir:     "default",
		Formats: []export.Format{export.FormatJSON},
	}, nil)

	var result *export.Result
	err := handler.Execute(context.Background(), ExportSiteCommand{
		Dir:            "out",
		Formats:        []string{"yaml"},
		ResultCallback: func(r *export.Result) { result = r },
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result == nil || len(result.Files) != 1 || result.Files[0] != "site.yaml" {
		t.Fatalf("unexpected result %+v", result)
	}

	manifest, err := export.NewExporter(export.NewDirWriter(filepath.Join(root, "out"))).ReadManifest(context.Background())
	if err != nil || manifest == nil {
		t.Fatalf("expected manifest in out dir, got %v %v", manifest, err)
	}
}

func TestExportSiteHandlerUsesDefaults(t *testing.T) {
	root := t.TempDir()
	handler := NewExportSiteHandler(validSite, dirExporters(root), ExportDefaults{
		Dir:     "default",
		Formats: []export.Format{export.FormatJSON},
	}, nil)

	var result *export.Result
	if err := handler.Execute(context.Background(), ExportSiteCommand{
		DryRun:         true,
		ResultCallback: func(r *export.Result) { result = r },
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result == nil || !result.DryRun || result.Files[0] != "site.json" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestExportSiteHandlerWrapsSourceErrors(t *testing.T) {
	sourceErr := errors.New("broken site")
	handler := NewExportSiteHandler(func() (descriptor.Descriptor, error) {
		return descriptor.Descriptor{}, sourceErr
	}, dirExporters(t.TempDir()), ExportDefaults{Dir: "out"}, nil)

	err := handler.Execute(context.Background(), ExportSiteCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestExportSiteHandlerRejectsInvalidMessage(t *testing.T) {
	handler := NewExportSiteHandler(validSite, dirExporters(t.TempDir()), ExportDefaults{Dir: "out"}, nil)
	err := handler.Execute(context.Background(), ExportSiteCommand{Formats: []string{"xml"}})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestValidateSiteHandler(t *testing.T) {
	handler := NewValidateSiteHandler(validSite, nil)
	if err := handler.Execute(context.Background(), ValidateSiteCommand{}); err != nil {
		t.Fatalf("expected valid site, got %v", err)
	}

	broken := NewValidateSiteHandler(func() (descriptor.Descriptor, error) {
		site, _ := validSite()
		site.ThemeConfig.Nav = []descriptor.NavItem{{Text: "首页"}}
		return site, nil
	}, nil)
	err := broken.Execute(context.Background(), ValidateSiteCommand{SkipSchema: true})
	if err == nil {
		t.Fatal("expected leaf without link to fail")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
