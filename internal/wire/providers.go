package wire

import (
	"io"

	"github.com/google/wire"

	"github.com/sevigo/reviewpilot/internal/app"
	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/logger"
	"github.com/sevigo/reviewpilot/internal/review"
)

var AppSet = wire.NewSet(
	app.NewApp,
	review.New,
	config.Load,
	config.LoadCredentials,
	logger.NewLogger,
	provideReviewConfig,
	provideLoggerConfig,
	provideLogWriter,
)

func provideReviewConfig(s *config.Settings) config.ReviewConfiguration {
	return s.Review
}

func provideLoggerConfig(s *config.Settings) logger.Config {
	return s.Logging
}

func provideLogWriter(cfg logger.Config) io.Writer {
	return logger.Writer(cfg)
}
