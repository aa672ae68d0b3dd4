// Package errs defines the error shape returned to API clients.
//
// Every failure that reaches the HTTP layer is rendered as an HTTPError:
// a machine-readable code, a message, the status, optional per-field
// errors for forms and an optional action hint for the front end.
package errs
