package commands

import (
	"context"
	"time"

	"github.com/chen-ziwen/chiko-blog/internal/logging"
	"github.com/chen-ziwen/chiko-blog/pkg/interfaces"
)

// DefaultCommandTimeout bounds handlers that do not set their own timeout.
const DefaultCommandTimeout = 30 * time.Second

// scope returns the context a command runs under. A nil ctx becomes
// context.Background; a positive timeout bounds it.
func scope(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// EnsureLogger returns logger, or the no-op logger when it is nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
