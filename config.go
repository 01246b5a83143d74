package blog

import "github.com/chen-ziwen/chiko-blog/internal/runtimeconfig"

var (
	ErrExportDirRequired       = runtimeconfig.ErrExportDirRequired
	ErrExportFormatUnknown     = runtimeconfig.ErrExportFormatUnknown
	ErrWordsPerMinuteInvalid   = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
	ExportConfig   = runtimeconfig.ExportConfig
	SchemaConfig   = runtimeconfig.SchemaConfig
	ArticlesConfig = runtimeconfig.ArticlesConfig
	CommandsConfig = runtimeconfig.CommandsConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv returns DefaultConfig with BLOGCONF_* variables applied.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv(runtimeconfig.DefaultConfig())
}
