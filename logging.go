package blog

import (
	"os"
	"strings"

	"github.com/chen-ziwen/chiko-blog/internal/logging/console"
	"github.com/chen-ziwen/chiko-blog/internal/logging/gologger"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// newLoggerProvider builds the provider selected by cfg.Logging. It returns
// nil when the logger feature is off; module loggers then discard output.
func newLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		opts := console.Options{Writer: os.Stderr}
		if level, ok := console.ParseLevel(cfg.Logging.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}
