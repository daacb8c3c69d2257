package model

import "time"

// ContentType enumerates the kinds of media a display can rotate through.
type ContentType string

const (
	ContentTypeImage            ContentType = "image"
	ContentTypeYouTubeVideo     ContentType = "youtube_video"
	ContentTypeTextAnnouncement ContentType = "text_announcement"
	ContentTypeEventPoster      ContentType = "event_poster"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeImage, ContentTypeYouTubeVideo, ContentTypeTextAnnouncement, ContentTypeEventPoster:
		return true
	}
	return false
}

// IsImageLike reports whether per-assignment image display modes apply.
func (t ContentType) IsImageLike() bool {
	return t == ContentTypeImage || t == ContentTypeEventPoster
}

// ContentStatus is the approval lifecycle state of a content row.
// pending is the only state approve/reject may act on; active and
// rejected are terminal, expired is set once the validity window passes.
type ContentStatus string

const (
	ContentStatusPending  ContentStatus = "pending"
	ContentStatusActive   ContentStatus = "active"
	ContentStatusRejected ContentStatus = "rejected"
	ContentStatusExpired  ContentStatus = "expired"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case ContentStatusPending, ContentStatusActive, ContentStatusRejected, ContentStatusExpired:
		return true
	}
	return false
}

// MinContentDuration and MaxContentDuration bound per-item playback
// duration in seconds.
const (
	MinContentDuration = 5
	MaxContentDuration = 300
)

type Content struct {
	ID              int           `db:"id"               json:"id"`
	MasjidID        int           `db:"masjid_id"        json:"masjid_id"`
	Title           string        `db:"title"            json:"title"`
	Description     *string       `db:"description"      json:"description,omitempty"`
	Type            ContentType   `db:"type"             json:"type"`
	URL             string        `db:"url"              json:"url"`
	ThumbnailURL    *string       `db:"thumbnail_url"    json:"thumbnail_url,omitempty"`
	Duration        int           `db:"duration"         json:"duration"`
	StartDate       time.Time     `db:"start_date"       json:"start_date"`
	EndDate         time.Time     `db:"end_date"         json:"end_date"`
	Status          ContentStatus `db:"status"           json:"status"`
	SubmittedBy     int           `db:"submitted_by"     json:"submitted_by"`
	SubmittedAt     time.Time     `db:"submitted_at"     json:"submitted_at"`
	ApprovedBy      *int          `db:"approved_by"      json:"approved_by,omitempty"`
	ApprovedAt      *time.Time    `db:"approved_at"      json:"approved_at,omitempty"`
	ApprovalNotes   *string       `db:"approval_notes"   json:"approval_notes,omitempty"`
	RejectionReason *string       `db:"rejection_reason" json:"rejection_reason,omitempty"`
	ResubmissionOf  *int          `db:"resubmission_of"  json:"resubmission_of,omitempty"`
	CreatedAt       time.Time     `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"       json:"updated_at"`
}
