package packets

import (
	"time"

	"github.com/masjid-suite/hub/internal/model"
)

type MasjidResponse struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	Postcode           *string `json:"postcode,omitempty"`
	JakimZone          string  `json:"jakim_zone"`
	CreatedAt          string  `json:"created_at"`
}

func MapMasjid(m model.Masjid) MasjidResponse {
	return MasjidResponse{
		ID:                 m.ID,
		Name:               m.Name,
		RegistrationNumber: m.RegistrationNumber,
		City:               m.City,
		State:              m.State,
		Postcode:           m.Postcode,
		JakimZone:          m.JakimZone,
		CreatedAt:          m.CreatedAt.Format(time.RFC3339),
	}
}

type ContentResponse struct {
	ID              int        `json:"id"`
	MasjidID        int        `json:"masjid_id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Type            string     `json:"type"`
	URL             string     `json:"url"`
	ThumbnailURL    *string    `json:"thumbnail_url,omitempty"`
	Duration        int        `json:"duration"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Status          string     `json:"status"`
	SubmittedBy     int        `json:"submitted_by"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ApprovedBy      *int       `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovalNotes   *string    `json:"approval_notes,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ResubmissionOf  *int       `json:"resubmission_of,omitempty"`
}

func MapContent(c model.Content) ContentResponse {
	return ContentResponse{
		ID:              c.ID,
		MasjidID:        c.MasjidID,
		Title:           c.Title,
		Description:     c.Description,
		Type:            string(c.Type),
		URL:             c.URL,
		ThumbnailURL:    c.ThumbnailURL,
		Duration:        c.Duration,
		StartDate:       c.StartDate.Format("2006-01-02"),
		EndDate:         c.EndDate.Format("2006-01-02"),
		Status:          string(c.Status),
		SubmittedBy:     c.SubmittedBy,
		SubmittedAt:     c.SubmittedAt,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		ApprovalNotes:   c.ApprovalNotes,
		RejectionReason: c.RejectionReason,
		ResubmissionOf:  c.ResubmissionOf,
	}
}

type DisplayResponse struct {
	ID                  int                 `json:"id"`
	MasjidID            int                 `json:"masjid_id"`
	Name                string              `json:"name"`
	Description         *string             `json:"description,omitempty"`
	Location            *string             `json:"location,omitempty"`
	Resolution          string              `json:"resolution"`
	Orientation         string              `json:"orientation"`
	IsActive            bool                `json:"is_active"`
	PairingToken        string              `json:"pairing_token"`
	CarouselInterval    int                 `json:"carousel_interval"`
	MaxContentItems     int                 `json:"max_content_items"`
	TransitionType      string              `json:"transition_type"`
	PrayerTimePosition  string              `json:"prayer_time_position"`
	PrayerTimeFontSize  string              `json:"prayer_time_font_size"`
	PrayerTimeColor     string              `json:"prayer_time_color"`
	PrayerTimeBgOpacity float64             `json:"prayer_time_bg_opacity"`
	BlackScreen         BlackScreenResponse `json:"black_screen"`
}

type BlackScreenResponse struct {
	Enabled      bool    `json:"enabled"`
	ScheduleType string  `json:"schedule_type"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Days         []int   `json:"days"`
	Message      *string `json:"message"`
	ShowClock    bool    `json:"show_clock"`
}

func MapDisplay(d model.Display) DisplayResponse {
	days := make([]int, len(d.BlackScreenDays))
	for i, v := range d.BlackScreenDays {
		days[i] = int(v)
	}
	return DisplayResponse{
		ID:                  d.ID,
		MasjidID:            d.MasjidID,
		Name:                d.Name,
		Description:         d.Description,
		Location:            d.Location,
		Resolution:          string(d.Resolution),
		Orientation:         string(d.Orientation),
		IsActive:            d.IsActive,
		PairingToken:        d.PairingToken,
		CarouselInterval:    d.CarouselInterval,
		MaxContentItems:     d.MaxContentItems,
		TransitionType:      string(d.TransitionType),
		PrayerTimePosition:  d.PrayerTimePosition,
		PrayerTimeFontSize:  d.PrayerTimeFontSize,
		PrayerTimeColor:     d.PrayerTimeColor,
		PrayerTimeBgOpacity: d.PrayerTimeBgOpacity,
		BlackScreen: BlackScreenResponse{
			Enabled:      d.BlackScreenEnabled,
			ScheduleType: d.BlackScreenScheduleType,
			StartTime:    d.BlackScreenStartTime,
			EndTime:      d.BlackScreenEndTime,
			Days:         days,
			Message:      d.BlackScreenMessage,
			ShowClock:    d.BlackScreenShowClock,
		},
	}
}

type AssignmentResponse struct {
	ContentID        int              `json:"content_id"`
	Position         int              `json:"position"`
	CarouselDuration int              `json:"carousel_duration"`
	TransitionType   string           `json:"transition_type"`
	ImageDisplayMode string           `json:"image_display_mode"`
	AssignedAt       time.Time        `json:"assigned_at"`
	Content          *ContentResponse `json:"content,omitempty"`
}

func MapAssignment(a model.Assignment) AssignmentResponse {
	out := AssignmentResponse{
		ContentID:        a.ContentID,
		Position:         a.Position,
		CarouselDuration: a.CarouselDuration,
		TransitionType:   string(a.TransitionType),
		ImageDisplayMode: string(a.ImageDisplayMode),
		AssignedAt:       a.AssignedAt,
	}
	if a.Content != nil {
		c := MapContent(*a.Content)
		out.Content = &c
	}
	return out
}

type CommandResponse struct {
	MessageID string `json:"message_id"`
	Command   string `json:"command"`
	Timestamp string `json:"timestamp"`
}

type MediaUploadResponse struct {
	URL string `json:"url"`
}
