package model

import "time"

// Assignment links one approved content item to one display, with
// per-assignment carousel overrides. Position values form a dense
// zero-based sequence within a display.
type Assignment struct {
	ID               int              `db:"id"                 json:"id"`
	DisplayID        int              `db:"display_id"         json:"display_id"`
	ContentID        int              `db:"content_id"         json:"content_id"`
	Position         int              `db:"position"           json:"position"`
	CarouselDuration int              `db:"carousel_duration"  json:"carousel_duration"`
	TransitionType   TransitionType   `db:"transition_type"    json:"transition_type"`
	ImageDisplayMode ImageDisplayMode `db:"image_display_mode" json:"image_display_mode"`
	AssignedBy       int              `db:"assigned_by"        json:"assigned_by"`
	AssignedAt       time.Time        `db:"assigned_at"        json:"assigned_at"`

	Content *Content `db:"-" json:"content,omitempty"`
}

// AssignmentSettings are the caller-supplied presentation overrides.
type AssignmentSettings struct {
	CarouselDuration int
	TransitionType   TransitionType
	ImageDisplayMode ImageDisplayMode
}

// DefaultAssignmentSettings mirrors the hub UI defaults.
func DefaultAssignmentSettings() AssignmentSettings {
	return AssignmentSettings{
		CarouselDuration: 10,
		TransitionType:   TransitionFade,
		ImageDisplayMode: ImageModeContain,
	}
}
