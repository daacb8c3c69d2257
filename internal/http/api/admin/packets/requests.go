package packets

type CreateMasjidRequest struct {
	Name               string  `json:"name" binding:"required"`
	RegistrationNumber *string `json:"registration_number"`
	AddressLine        *string `json:"address_line"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Postcode           *string `json:"postcode"`
	JakimZone          string  `json:"jakim_zone" binding:"required"`
}

type UpdateMasjidRequest struct {
	Name      *string `json:"name"`
	JakimZone *string `json:"jakim_zone"`
}

type AddMasjidAdminRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

// SubmitContentRequest creates a pending content row. ResubmissionOf links
// a replacement for a rejected item back to the original.
type SubmitContentRequest struct {
	MasjidID       int     `json:"masjid_id" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Description    *string `json:"description"`
	Type           string  `json:"type" binding:"required,oneof=image youtube_video text_announcement event_poster"`
	URL            string  `json:"url" binding:"required,url"`
	ThumbnailURL   *string `json:"thumbnail_url"`
	Duration       int     `json:"duration" binding:"required"`
	StartDate      string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate        string  `json:"end_date" binding:"required"`   // YYYY-MM-DD
	ResubmissionOf *int    `json:"resubmission_of"`
}

type ApproveContentRequest struct {
	Notes *string `json:"notes"`
}

type RejectContentRequest struct {
	Reason string  `json:"reason" binding:"required"`
	Notes  *string `json:"notes"`
}

type CreateDisplayRequest struct {
	MasjidID    int     `json:"masjid_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Resolution  string  `json:"resolution" binding:"omitempty,oneof=1920x1080 3840x2160 1366x768 2560x1440"`
	Orientation string  `json:"orientation" binding:"omitempty,oneof=landscape portrait"`
}

type UpdateDisplayRequest struct {
	Name                *string  `json:"name"`
	Description         *string  `json:"description"`
	Location            *string  `json:"location"`
	Resolution          *string  `json:"resolution" binding:"omitempty,oneof=1920x1080 3840x2160 1366x768 2560x1440"`
	Orientation         *string  `json:"orientation" binding:"omitempty,oneof=landscape portrait"`
	IsActive            *bool    `json:"is_active"`
	CarouselInterval    *int     `json:"carousel_interval" binding:"omitempty,min=1"`
	MaxContentItems     *int     `json:"max_content_items" binding:"omitempty,min=1"`
	TransitionType      *string  `json:"transition_type" binding:"omitempty,oneof=fade slide zoom none"`
	PrayerTimePosition  *string  `json:"prayer_time_position" binding:"omitempty,oneof=top bottom left right center hidden"`
	PrayerTimeFontSize  *string  `json:"prayer_time_font_size" binding:"omitempty,oneof=small medium large extra_large"`
	PrayerTimeColor     *string  `json:"prayer_time_color"`
	PrayerTimeBgOpacity *float64 `json:"prayer_time_bg_opacity" binding:"omitempty,min=0,max=1"`
}

// BlackScreenScheduleRequest replaces the full schedule in one write.
type BlackScreenScheduleRequest struct {
	Enabled      bool    `json:"enabled"`
	ScheduleType string  `json:"schedule_type" binding:"omitempty,oneof=daily weekly"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Days         []int   `json:"days"`
	Message      *string `json:"message"`
	ShowClock    bool    `json:"show_clock"`
}

type AssignmentSettingsRequest struct {
	CarouselDuration *int    `json:"carousel_duration"`
	TransitionType   *string `json:"transition_type"`
	ImageDisplayMode *string `json:"image_display_mode"`
}

type AssignContentRequest struct {
	ContentID int                        `json:"content_id" binding:"required"`
	Settings  *AssignmentSettingsRequest `json:"settings"`
}

type ReorderAssignmentsRequest struct {
	ContentIDs []int `json:"content_ids" binding:"required"`
}

type SendCommandRequest struct {
	Command  string                 `json:"command" binding:"required,oneof=hard_reload soft_reload clear_cache"`
	Metadata map[string]interface{} `json:"metadata"`
}
