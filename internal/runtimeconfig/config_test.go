package runtimeconfig_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/chen-ziwen/chiko-blog/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresExportDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Export.Dir = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrExportDirRequired) {
		t.Fatalf("expected ErrExportDirRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownExportFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Export.Formats = []string{"json", "toml"}

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrExportFormatUnknown) {
		t.Fatalf("expected ErrExportFormatUnknown, got %v", err)
	}
}

func TestConfigValidate_RequiresPositiveWordsPerMinute(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Articles.WordsPerMinute = 0

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrWordsPerMinuteInvalid) {
		t.Fatalf("expected ErrWordsPerMinuteInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.Timeout = -time.Second

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCommandTimeoutInvalid) {
		t.Fatalf("expected ErrCommandTimeoutInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestFromEnvOverlaysSetVariables(t *testing.T) {
	t.Setenv("BLOGCONF_EXPORT_DIR", "out")
	t.Setenv("BLOGCONF_EXPORT_FORMATS", "json,yaml")
	t.Setenv("BLOGCONF_FEATURE_LOGGER", "true")
	t.Setenv("BLOGCONF_LOG_PROVIDER", "gologger")
	t.Setenv("BLOGCONF_ARTICLES_WPM", "250")
	t.Setenv("BLOGCONF_COMMANDS_TIMEOUT", "5s")
	t.Setenv("BLOGCONF_OVERRIDES", "site.override.yaml")

	base := runtimeconfig.DefaultConfig()
	cfg, err := runtimeconfig.FromEnv(base)
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}
	if cfg.Export.Dir != "out" || !reflect.DeepEqual(cfg.Export.Formats, []string{"json", "yaml"}) {
		t.Fatalf("unexpected export config %+v", cfg.Export)
	}
	if !cfg.Features.Logger || cfg.Logging.Provider != "gologger" {
		t.Fatalf("unexpected logging config %+v %+v", cfg.Features, cfg.Logging)
	}
	if cfg.Articles.WordsPerMinute != 250 || cfg.Commands.Timeout != 5*time.Second {
		t.Fatalf("unexpected articles/commands config %+v %+v", cfg.Articles, cfg.Commands)
	}
	if cfg.OverridesPath != "site.override.yaml" {
		t.Fatalf("unexpected overrides path %q", cfg.OverridesPath)
	}
	if cfg.Logging.Level != "info" || !cfg.Schema.Enabled {
		t.Fatalf("expected unset variables to keep defaults, got %+v", cfg)
	}
	if base.Export.Dir != "docs/.vitepress" {
		t.Fatal("FromEnv mutated its base config")
	}
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("BLOGCONF_ARTICLES_WPM", "fast")

	if _, err := runtimeconfig.FromEnv(runtimeconfig.DefaultConfig()); err == nil {
		t.Fatal("expected malformed integer to fail")
	}
}
