package youtube

import (
	"errors"
	"fmt"
)

// ErrNoTranscript marks a video that legitimately has no caption tracks,
// as opposed to a transcript fetch that failed. Callers distinguish the two
// with errors.Is through the OperationError wrap.
var ErrNoTranscript = errors.New("No transcript available for this video")

// InitializationError means the shared Innertube client could not be
// constructed. Fatal for the attempting call only; the next call retries.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("Failed to initialize YouTube service: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// OperationError wraps any underlying-client or extraction failure, tagged
// with the operation name ("get video", "search videos", ...).
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	return &OperationError{Op: op, Err: err}
}
