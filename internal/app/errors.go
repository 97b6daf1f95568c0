package app

import "fmt"

// ProtocolErrorCode identifies machine-readable protocol failure categories.
type ProtocolErrorCode string

const (
	// ErrProfileIncomplete: the DNA lacks goal/level fields; the caller should
	// send the user to profile setup instead of generating from partial data.
	ErrProfileIncomplete ProtocolErrorCode = "PROFILE_INCOMPLETE"

	// ErrProfileMissing: no profile exists at all, locally or remotely.
	ErrProfileMissing ProtocolErrorCode = "PROFILE_MISSING"

	// ErrTaskNotFound: the completion target does not exist in today's list.
	ErrTaskNotFound ProtocolErrorCode = "TASK_NOT_FOUND"
)

// ProtocolError is a typed error carrying a code the CLI can dispatch on.
type ProtocolError struct {
	Code    ProtocolErrorCode
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
