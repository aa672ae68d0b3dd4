// Package handler serves the system endpoints. Domain routes live with
// the external route layer, which calls the service package directly.
package handler
