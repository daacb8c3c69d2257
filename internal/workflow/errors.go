// Package workflow holds the content approval and display assignment
// rules shared by the store and HTTP layers, plus the error vocabulary
// those layers use to talk to each other.
package workflow

import (
	"errors"
	"fmt"

	"github.com/masjid-suite/hub/internal/model"
)

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means the assignment already exists for that display.
	ErrDuplicate = errors.New("already assigned")

	// ErrCommandTimeout means the broker did not accept a display command
	// within the dispatch deadline.
	ErrCommandTimeout = errors.New("command dispatch timed out")
)

// ValidationError reports malformed input: out-of-range duration, bad
// enum value, empty required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidStateError reports an operation that is illegal for the content's
// current status, e.g. approving already-approved content. It is also the
// error a racing approver observes when losing the compare-and-set.
type InvalidStateError struct {
	Op     string
	Status model.ContentStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s content in status %q", e.Op, e.Status)
}

// TransportError wraps a broker-reported failure during command dispatch.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("command transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
