// Package lib groups infrastructure that does not belong to a single layer:
// background jobs (Asynq over Redis) and transactional email (Resend).
package lib
