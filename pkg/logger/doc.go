// Package logger builds slog loggers and holds the shared attribute helpers.
//
// New creates a logger whose handler runs ContextExtractor callbacks on every
// record, so values stored in the request context (request id, client ip)
// appear in logs without being passed around explicitly:
//
//	log := logger.New(
//		logger.WithEnvironment(env, "signaturecraft"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Attribute helpers (Error, Component, TemplateID, UserID, ...) keep key names
// consistent across packages. WithContext and FromContext carry a logger
// through code that has no logger dependency, such as template renderers.
package logger
