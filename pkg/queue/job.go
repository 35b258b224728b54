package queue

import "context"

// Job defines a queue job handler.
type Job interface {
	// Name returns the unique identifier of the job.
	Name() string

	// Type returns the type of message that the job handles.
	Type() string

	// Handle processes the job with the given payload. The returned value is
	// serialized into the task's result envelope for any waiting submitter.
	Handle(ctx context.Context, payload interface{}) (interface{}, error)
}
