package backend

import "fmt"

// BackendError wraps a failure while constructing or talking to the
// external Firebase services. It is surfaced to every caller that joined
// the failing attempt and is never retried automatically; the next explicit
// EnsureReady call starts a fresh attempt.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
