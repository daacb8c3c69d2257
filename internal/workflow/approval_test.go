package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-suite/hub/internal/model"
)

func TestCanDecide(t *testing.T) {
	assert.True(t, CanDecide(model.ContentStatusPending))
	assert.False(t, CanDecide(model.ContentStatusActive))
	assert.False(t, CanDecide(model.ContentStatusRejected))
	assert.False(t, CanDecide(model.ContentStatusExpired))
}

func TestCheckDecision(t *testing.T) {
	assert.NoError(t, CheckDecision("approve", model.ContentStatusPending, ""))
	assert.NoError(t, CheckDecision("reject", model.ContentStatusPending, "off-topic"))

	var vErr *ValidationError
	err := CheckDecision("reject", model.ContentStatusPending, "   ")
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rejection_reason", vErr.Field)

	var sErr *InvalidStateError
	err = CheckDecision("approve", model.ContentStatusActive, "")
	assert.ErrorAs(t, err, &sErr)
	assert.Equal(t, model.ContentStatusActive, sErr.Status)

	err = CheckDecision("reject", model.ContentStatusRejected, "again")
	assert.ErrorAs(t, err, &sErr)
}

func validSubmission() Submission {
	return Submission{
		Title:     "Jumaat prayer times",
		Type:      model.ContentTypeImage,
		URL:       "https://cdn.example.com/content/jumaat.png",
		Duration:  15,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCheckSubmission(t *testing.T) {
	assert.NoError(t, CheckSubmission(validSubmission()))

	var vErr *ValidationError

	s := validSubmission()
	s.Title = "  "
	assert.ErrorAs(t, CheckSubmission(s), &vErr)
	assert.Equal(t, "title", vErr.Field)

	s = validSubmission()
	s.Type = "powerpoint"
	assert.ErrorAs(t, CheckSubmission(s), &vErr)
	assert.Equal(t, "type", vErr.Field)

	s = validSubmission()
	s.Duration = 400
	assert.ErrorAs(t, CheckSubmission(s), &vErr)
	assert.Equal(t, "duration", vErr.Field)

	s = validSubmission()
	s.Duration = 4
	assert.ErrorAs(t, CheckSubmission(s), &vErr)
	assert.Equal(t, "duration", vErr.Field)

	s = validSubmission()
	s.EndDate = s.StartDate.AddDate(0, 0, -1)
	assert.ErrorAs(t, CheckSubmission(s), &vErr)
	assert.Equal(t, "end_date", vErr.Field)

	// single-day window is fine
	s = validSubmission()
	s.EndDate = s.StartDate
	assert.NoError(t, CheckSubmission(s))
}

func TestCheckAssignmentSettings(t *testing.T) {
	base := model.AssignmentSettings{
		CarouselDuration: 10,
		TransitionType:   model.TransitionFade,
		ImageDisplayMode: model.ImageModeContain,
	}

	out, err := CheckAssignmentSettings(base, model.ContentTypeImage)
	assert.NoError(t, err)
	assert.Equal(t, base, out)

	// non-image content gets its display mode normalized, not rejected
	out, err = CheckAssignmentSettings(base, model.ContentTypeYouTubeVideo)
	assert.NoError(t, err)
	assert.Equal(t, model.ImageModeNone, out.ImageDisplayMode)

	out, err = CheckAssignmentSettings(base, model.ContentTypeEventPoster)
	assert.NoError(t, err)
	assert.Equal(t, model.ImageModeContain, out.ImageDisplayMode)

	var vErr *ValidationError

	s := base
	s.CarouselDuration = 2
	_, err = CheckAssignmentSettings(s, model.ContentTypeImage)
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "carousel_duration", vErr.Field)

	s = base
	s.TransitionType = "spin"
	_, err = CheckAssignmentSettings(s, model.ContentTypeImage)
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "transition_type", vErr.Field)

	s = base
	s.ImageDisplayMode = "stretch"
	_, err = CheckAssignmentSettings(s, model.ContentTypeImage)
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "image_display_mode", vErr.Field)
}
