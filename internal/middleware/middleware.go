// Package middleware holds the echo middleware stack: request ids,
// request-scoped loggers, New Relic tracing, rate limiting and the
// global error handler.
package middleware
