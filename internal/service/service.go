// Package service contains the business logic.
//
// It sits between the (external) route layer and the repositories. It
// validates input, calls repository methods and turns database failures
// into *errs.HTTPError values the caller can render directly.
package service

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer queues background work; *asynq.Client implements it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
