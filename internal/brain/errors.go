package brain

import "errors"

var (
	// ErrBrainUnavailable indicates the task-generation server is unreachable.
	ErrBrainUnavailable = errors.New("brain server unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("brain request timed out")

	// ErrBrainRejected indicates the server answered with an error field
	// instead of a task list.
	ErrBrainRejected = errors.New("brain rejected request")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("brain retry attempts exhausted")
)
