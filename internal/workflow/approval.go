package workflow

import (
	"strings"
	"time"

	"github.com/masjid-suite/hub/internal/model"
)

// CanDecide reports whether an approve/reject decision is legal from the
// given status. Only pending content may be decided; active and rejected
// are terminal, a rejected item comes back only as a new resubmission row.
func CanDecide(status model.ContentStatus) bool {
	return status == model.ContentStatusPending
}

// CheckDecision validates the inputs of an approval decision before any
// store mutation. reason is only consulted when rejecting.
func CheckDecision(op string, status model.ContentStatus, reason string) error {
	if op == "reject" && strings.TrimSpace(reason) == "" {
		return &ValidationError{Field: "rejection_reason", Reason: "must not be empty"}
	}
	if !CanDecide(status) {
		return &InvalidStateError{Op: op, Status: status}
	}
	return nil
}

// Submission carries the validated fields of a new content submission.
type Submission struct {
	Title     string
	Type      model.ContentType
	URL       string
	Duration  int
	StartDate time.Time
	EndDate   time.Time
}

// CheckSubmission enforces the content invariants: duration within
// [5,300] seconds, a known type, and start_date <= end_date.
func CheckSubmission(s Submission) error {
	if strings.TrimSpace(s.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !s.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unknown content type"}
	}
	if s.URL == "" {
		return &ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if s.Duration < model.MinContentDuration || s.Duration > model.MaxContentDuration {
		return &ValidationError{Field: "duration", Reason: "must be between 5 and 300 seconds"}
	}
	if s.EndDate.Before(s.StartDate) {
		return &ValidationError{Field: "end_date", Reason: "must not precede start_date"}
	}
	return nil
}

// CheckAssignmentSettings validates per-assignment carousel overrides.
// image_display_mode only matters for image-like content; for other types
// the stored value is normalized to "none" rather than rejected.
func CheckAssignmentSettings(s model.AssignmentSettings, contentType model.ContentType) (model.AssignmentSettings, error) {
	if s.CarouselDuration < model.MinContentDuration || s.CarouselDuration > model.MaxContentDuration {
		return s, &ValidationError{Field: "carousel_duration", Reason: "must be between 5 and 300 seconds"}
	}
	if !s.TransitionType.Valid() {
		return s, &ValidationError{Field: "transition_type", Reason: "unknown transition"}
	}
	if contentType.IsImageLike() {
		if !s.ImageDisplayMode.Valid() {
			return s, &ValidationError{Field: "image_display_mode", Reason: "unknown display mode"}
		}
	} else {
		s.ImageDisplayMode = model.ImageModeNone
	}
	return s, nil
}
