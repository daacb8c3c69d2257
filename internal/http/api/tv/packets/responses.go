package packets

import (
	"github.com/masjid-suite/hub/internal/model"
)

// PlaylistItemResponse is one carousel slot as the TV client consumes it:
// content fields merged with the assignment's playback settings.
type PlaylistItemResponse struct {
	ContentID        int     `json:"content_id"`
	Title            string  `json:"title"`
	Type             string  `json:"type"`
	URL              string  `json:"url"`
	ThumbnailURL     *string `json:"thumbnail_url,omitempty"`
	Position         int     `json:"position"`
	CarouselDuration int     `json:"carousel_duration"`
	TransitionType   string  `json:"transition_type"`
	ImageDisplayMode string  `json:"image_display_mode"`
}

type PlaylistResponse struct {
	DisplayID int                    `json:"display_id"`
	Items     []PlaylistItemResponse `json:"items"`
}

// BlackScreenConfigResponse carries the schedule plus whether it is in
// effect right now, so clients without reliable clocks can still obey it.
type BlackScreenConfigResponse struct {
	Enabled      bool    `json:"enabled"`
	ScheduleType string  `json:"schedule_type,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	Days         []int   `json:"days,omitempty"`
	Message      *string `json:"message,omitempty"`
	ShowClock    bool    `json:"show_clock"`
	ActiveNow    bool    `json:"active_now"`
}

type DisplayConfigResponse struct {
	DisplayID           int                       `json:"display_id"`
	Name                string                    `json:"name"`
	Resolution          string                    `json:"resolution"`
	Orientation         string                    `json:"orientation"`
	CarouselInterval    int                       `json:"carousel_interval"`
	MaxContentItems     int                       `json:"max_content_items"`
	TransitionType      string                    `json:"transition_type"`
	PrayerTimePosition  string                    `json:"prayer_time_position"`
	PrayerTimeFontSize  string                    `json:"prayer_time_font_size"`
	PrayerTimeColor     string                    `json:"prayer_time_color"`
	PrayerTimeBgOpacity float64                   `json:"prayer_time_bg_opacity"`
	JakimZone           string                    `json:"jakim_zone"`
	BlackScreen         BlackScreenConfigResponse `json:"black_screen"`
}

func MapPlaylistItem(a model.Assignment) PlaylistItemResponse {
	item := PlaylistItemResponse{
		ContentID:        a.ContentID,
		Position:         a.Position,
		CarouselDuration: a.CarouselDuration,
		TransitionType:   string(a.TransitionType),
		ImageDisplayMode: string(a.ImageDisplayMode),
	}
	if a.Content != nil {
		item.Title = a.Content.Title
		item.Type = string(a.Content.Type)
		item.URL = a.Content.URL
		item.ThumbnailURL = a.Content.ThumbnailURL
	}
	return item
}
