// Package pkglog configures the process-wide slog logger.
//
// Records are JSON with ts, severity and file keys, tagged with the service
// name and, when the request context carries one, the correlation ID set by
// the router. The minimum level is adjustable at runtime through SetLevel.
package pkglog
