package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/workflow"
)

const displayColumns = `
	id, masjid_id, name, description, location, resolution, orientation,
	is_active, pairing_token, carousel_interval, max_content_items,
	transition_type, prayer_time_position, prayer_time_font_size,
	prayer_time_color, prayer_time_bg_opacity,
	black_screen_enabled, black_screen_schedule_type,
	black_screen_start_time, black_screen_end_time, black_screen_days,
	black_screen_message, black_screen_show_clock,
	created_by, created_at, updated_at`

func (s *pgStore) CreateDisplay(d model.Display) (model.Display, error) {
	var out model.Display
	err := s.db.Get(&out, `
		INSERT INTO displays
		(masjid_id, name, description, location, resolution, orientation,
		 is_active, pairing_token, carousel_interval, max_content_items,
		 transition_type, prayer_time_position, prayer_time_font_size,
		 prayer_time_color, prayer_time_bg_opacity, created_by, created_at, updated_at)
		VALUES
		($1, $2, $3, $4, $5, $6, true, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		RETURNING `+displayColumns+`;`,
		d.MasjidID, d.Name, d.Description, d.Location, d.Resolution, d.Orientation,
		d.PairingToken, d.CarouselInterval, d.MaxContentItems, d.TransitionType,
		d.PrayerTimePosition, d.PrayerTimeFontSize, d.PrayerTimeColor,
		d.PrayerTimeBgOpacity, d.CreatedBy,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create display")
		return model.Display{}, err
	}
	return out, nil
}

func (s *pgStore) GetDisplayByID(id int) (model.Display, error) {
	var d model.Display
	err := s.db.Get(&d, `SELECT `+displayColumns+` FROM displays WHERE id = $1;`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Display{}, workflow.ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("failed to get display by id")
	}
	return d, err
}

func (s *pgStore) GetDisplayByPairingToken(token string) (model.Display, error) {
	var d model.Display
	err := s.db.Get(&d, `SELECT `+displayColumns+` FROM displays WHERE pairing_token = $1;`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Display{}, workflow.ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get display by pairing token")
	}
	return d, err
}

func (s *pgStore) ListDisplays(masjidID int) ([]model.Display, error) {
	var out []model.Display
	err := s.db.Select(&out, `
		SELECT `+displayColumns+`
		FROM displays
		WHERE masjid_id = $1
		ORDER BY id;`, masjidID)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("failed to list displays")
		return nil, err
	}
	return out, nil
}

// DisplaySettingsUpdate patches named display fields; nil means unchanged.
type DisplaySettingsUpdate struct {
	Name                *string
	Description         *string
	Location            *string
	Resolution          *model.DisplayResolution
	Orientation         *model.DisplayOrientation
	IsActive            *bool
	CarouselInterval    *int
	MaxContentItems     *int
	TransitionType      *model.TransitionType
	PrayerTimePosition  *string
	PrayerTimeFontSize  *string
	PrayerTimeColor     *string
	PrayerTimeBgOpacity *float64
}

func (s *pgStore) UpdateDisplaySettings(id int, u DisplaySettingsUpdate) error {
	_, err := s.db.Exec(`
		UPDATE displays
		SET name = COALESCE($2, name),
		description = COALESCE($3, description),
		location = COALESCE($4, location),
		resolution = COALESCE($5, resolution),
		orientation = COALESCE($6, orientation),
		is_active = COALESCE($7, is_active),
		carousel_interval = COALESCE($8, carousel_interval),
		max_content_items = COALESCE($9, max_content_items),
		transition_type = COALESCE($10, transition_type),
		prayer_time_position = COALESCE($11, prayer_time_position),
		prayer_time_font_size = COALESCE($12, prayer_time_font_size),
		prayer_time_color = COALESCE($13, prayer_time_color),
		prayer_time_bg_opacity = COALESCE($14, prayer_time_bg_opacity),
		updated_at = now()
		WHERE id = $1;`,
		id, u.Name, u.Description, u.Location, u.Resolution, u.Orientation,
		u.IsActive, u.CarouselInterval, u.MaxContentItems, u.TransitionType,
		u.PrayerTimePosition, u.PrayerTimeFontSize, u.PrayerTimeColor,
		u.PrayerTimeBgOpacity,
	)
	if err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("failed to update display settings")
	}
	return err
}

// BlackScreenConfig is the full black-screen schedule; it is written as a
// unit, never field-by-field, so a display always reads a coherent config.
type BlackScreenConfig struct {
	Enabled      bool
	ScheduleType string
	StartTime    *string
	EndTime      *string
	Days         []int64
	Message      *string
	ShowClock    bool
}

func (s *pgStore) SetBlackScreenSchedule(id int, cfg BlackScreenConfig) error {
	_, err := s.db.Exec(`
		UPDATE displays
		SET black_screen_enabled = $2,
		black_screen_schedule_type = $3,
		black_screen_start_time = $4,
		black_screen_end_time = $5,
		black_screen_days = $6,
		black_screen_message = $7,
		black_screen_show_clock = $8,
		updated_at = now()
		WHERE id = $1;`,
		id, cfg.Enabled, cfg.ScheduleType, cfg.StartTime, cfg.EndTime,
		pq.Array(cfg.Days), cfg.Message, cfg.ShowClock,
	)
	if err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("failed to set black screen schedule")
	}
	return err
}

func (s *pgStore) DeleteDisplay(id int) error {
	_, err := s.db.Exec(`DELETE FROM displays WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("display_id", id).Msg("failed to delete display")
	}
	return err
}
