// Package logger builds log/slog loggers with functional options and injects
// request-scoped values from context.Context into every record.
//
// New creates a *slog.Logger. WithEnvironment picks defaults per deployment
// environment (text/debug for development, JSON/info otherwise), and
// WithContextExtractors registers callbacks that add attributes such as the
// request or visitor ID at log time.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "areacalc"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), visitor.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "locale resolved",
//		logger.Locale(res.Locale),
//		logger.Source(res.Source),
//	)
//
// Attribute helpers keep key names consistent. Error returns an empty attribute
// for a nil error, so it can be passed unconditionally.
package logger
