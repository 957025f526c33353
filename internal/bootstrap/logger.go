package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/courtside/pickem/internal/config"
	"github.com/courtside/pickem/internal/logger"
)

// SetupLogger installs the process logger described by cfg on stdout
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger writing to w. Source locations are
// only added in development.
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	addSource := cfg.Environment == logger.EnvironmentDev
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"allow_past_votes", cfg.AllowPastVotes,
		"confidence_offset", cfg.ConfidenceOffset)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"timezone", cfg.Timezone)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
