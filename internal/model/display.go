package model

import (
	"time"

	"github.com/lib/pq"
)

type DisplayOrientation string

const (
	OrientationLandscape DisplayOrientation = "landscape"
	OrientationPortrait  DisplayOrientation = "portrait"
)

type DisplayResolution string

const (
	Resolution1080p DisplayResolution = "1920x1080"
	Resolution4K    DisplayResolution = "3840x2160"
	ResolutionHD    DisplayResolution = "1366x768"
	ResolutionQHD   DisplayResolution = "2560x1440"
)

// TransitionType is the carousel transition effect, used both for
// display-level defaults and per-assignment overrides.
type TransitionType string

const (
	TransitionFade  TransitionType = "fade"
	TransitionSlide TransitionType = "slide"
	TransitionZoom  TransitionType = "zoom"
	TransitionNone  TransitionType = "none"
)

func (t TransitionType) Valid() bool {
	switch t {
	case TransitionFade, TransitionSlide, TransitionZoom, TransitionNone:
		return true
	}
	return false
}

// ImageDisplayMode controls how image content is fit to the screen.
type ImageDisplayMode string

const (
	ImageModeContain ImageDisplayMode = "contain"
	ImageModeCover   ImageDisplayMode = "cover"
	ImageModeFill    ImageDisplayMode = "fill"
	ImageModeNone    ImageDisplayMode = "none"
)

func (m ImageDisplayMode) Valid() bool {
	switch m {
	case ImageModeContain, ImageModeCover, ImageModeFill, ImageModeNone:
		return true
	}
	return false
}

// Display represents a physical TV endpoint belonging to a masjid.
type Display struct {
	ID           int                `db:"id"            json:"id"`
	MasjidID     int                `db:"masjid_id"     json:"masjid_id"`
	Name         string             `db:"name"          json:"name"`
	Description  *string            `db:"description"   json:"description,omitempty"`
	Location     *string            `db:"location"      json:"location,omitempty"`
	Resolution   DisplayResolution  `db:"resolution"    json:"resolution"`
	Orientation  DisplayOrientation `db:"orientation"   json:"orientation"`
	IsActive     bool               `db:"is_active"     json:"is_active"`
	PairingToken string             `db:"pairing_token" json:"pairing_token"`

	// Carousel defaults; per-assignment settings override these.
	CarouselInterval int            `db:"carousel_interval" json:"carousel_interval"`
	MaxContentItems  int            `db:"max_content_items" json:"max_content_items"`
	TransitionType   TransitionType `db:"transition_type"   json:"transition_type"`

	// Prayer time overlay.
	PrayerTimePosition  string  `db:"prayer_time_position"   json:"prayer_time_position"`
	PrayerTimeFontSize  string  `db:"prayer_time_font_size"  json:"prayer_time_font_size"`
	PrayerTimeColor     string  `db:"prayer_time_color"      json:"prayer_time_color"`
	PrayerTimeBgOpacity float64 `db:"prayer_time_bg_opacity" json:"prayer_time_bg_opacity"`

	// Black screen schedule; evaluated by the TV client.
	BlackScreenEnabled      bool          `db:"black_screen_enabled"       json:"black_screen_enabled"`
	BlackScreenScheduleType string        `db:"black_screen_schedule_type" json:"black_screen_schedule_type"`
	BlackScreenStartTime    *string       `db:"black_screen_start_time"    json:"black_screen_start_time"`
	BlackScreenEndTime      *string       `db:"black_screen_end_time"      json:"black_screen_end_time"`
	BlackScreenDays         pq.Int64Array `db:"black_screen_days"          json:"black_screen_days"`
	BlackScreenMessage      *string       `db:"black_screen_message"       json:"black_screen_message"`
	BlackScreenShowClock    bool          `db:"black_screen_show_clock"    json:"black_screen_show_clock"`

	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
