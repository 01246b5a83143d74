package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "BLOGCONF_"

var ErrExportDirRequired = errors.New("blog config: export directory is required")
var ErrExportFormatUnknown = errors.New("blog config: export format is invalid")
var ErrWordsPerMinuteInvalid = errors.New("blog config: articles words per minute must be positive")
var ErrCommandTimeoutInvalid = errors.New("blog config: command timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates the runtime knobs of the blog configuration module. The
// site itself is declared in code; this only controls how it is built,
// checked and written.
type Config struct {
	Logging  LoggingConfig  `envPrefix:"LOG_"`
	Export   ExportConfig   `envPrefix:"EXPORT_"`
	Schema   SchemaConfig   `envPrefix:"SCHEMA_"`
	Articles ArticlesConfig `envPrefix:"ARTICLES_"`
	Commands CommandsConfig `envPrefix:"COMMANDS_"`
	Features Features       `envPrefix:"FEATURE_"`
	// OverridesPath points at an optional YAML file merged over the site.
	OverridesPath string `env:"OVERRIDES"`
}

// Features toggles module functionality.
type Features struct {
	Logger bool `env:"LOGGER"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `env:"PROVIDER"`
	Level     string   `env:"LEVEL"`
	Format    string   `env:"FORMAT"`
	AddSource bool     `env:"ADD_SOURCE"`
	Focus     []string `env:"FOCUS"`
}

// ExportConfig controls where the descriptor is written.
type ExportConfig struct {
	Dir     string   `env:"DIR"`
	Formats []string `env:"FORMATS"`
}

// SchemaConfig toggles JSON schema validation of the finished descriptor.
type SchemaConfig struct {
	Enabled bool `env:"ENABLED"`
}

// ArticlesConfig controls markdown inspection.
type ArticlesConfig struct {
	Dir            string `env:"DIR"`
	WordsPerMinute int    `env:"WPM"`
}

// CommandsConfig captures command handler behaviour.
type CommandsConfig struct {
	Timeout time.Duration `env:"TIMEOUT"`
}

// DefaultConfig returns the settings used by the chiko blog build.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Export: ExportConfig{
			Dir:     "docs/.vitepress",
			Formats: []string{"json"},
		},
		Schema: SchemaConfig{
			Enabled: true,
		},
		Articles: ArticlesConfig{
			Dir:            "docs",
			WordsPerMinute: 300,
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// FromEnv overlays BLOGCONF_* environment variables on base. Variables that
// are not set leave the base value untouched.
func FromEnv(base Config) (Config, error) {
	cfg := base
	cfg.Logging.Focus = append([]string(nil), base.Logging.Focus...)
	cfg.Export.Formats = append([]string(nil), base.Export.Formats...)
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("blog config: read environment: %w", err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Export.Dir) == "" {
		return ErrExportDirRequired
	}
	for _, format := range cfg.Export.Formats {
		if !isSupportedExportFormat(format) {
			return fmt.Errorf("%w: %s", ErrExportFormatUnknown, format)
		}
	}
	if cfg.Articles.WordsPerMinute <= 0 {
		return fmt.Errorf("%w: %d", ErrWordsPerMinuteInvalid, cfg.Articles.WordsPerMinute)
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

func isSupportedExportFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "yaml", "yml":
		return true
	default:
		return false
	}
}
