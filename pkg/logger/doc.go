// Package logger builds log/slog loggers with per-environment defaults and
// request-scoped attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "request handled", logger.Duration(elapsed))
//
// ContextExtractor functions run for every record and add attributes taken
// from the record's context, such as the request id set by middleware.
package logger
