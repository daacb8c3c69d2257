package db

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/workflow"
)

const contentColumns = `
	id, masjid_id, title, description, type, url, thumbnail_url, duration,
	start_date, end_date, status, submitted_by, submitted_at,
	approved_by, approved_at, approval_notes, rejection_reason,
	resubmission_of, created_at, updated_at`

func (s *pgStore) CreateContent(c model.Content) (model.Content, error) {
	var out model.Content
	err := s.db.Get(&out, `
		INSERT INTO display_content
		(masjid_id, title, description, type, url, thumbnail_url, duration,
		 start_date, end_date, status, submitted_by, submitted_at,
		 resubmission_of, created_at, updated_at)
		VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending', $10, now(), $11, now(), now())
		RETURNING `+contentColumns+`;`,
		c.MasjidID, c.Title, c.Description, c.Type, c.URL, c.ThumbnailURL,
		c.Duration, c.StartDate, c.EndDate, c.SubmittedBy, c.ResubmissionOf,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create content")
		return model.Content{}, err
	}
	return out, nil
}

func (s *pgStore) GetContentByID(id int) (model.Content, error) {
	var c model.Content
	err := s.db.Get(&c, `SELECT `+contentColumns+` FROM display_content WHERE id = $1;`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Content{}, workflow.ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("failed to get content by id")
	}
	return c, err
}

// ContentFilters narrows ListContent; zero values mean "any".
type ContentFilters struct {
	MasjidID    int
	Status      model.ContentStatus
	SubmittedBy int
}

func (s *pgStore) ListContent(f ContentFilters) ([]model.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM display_content WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if f.MasjidID != 0 {
		argCount++
		query += ` AND masjid_id = $` + strconv.Itoa(argCount)
		args = append(args, f.MasjidID)
	}
	if f.Status != "" {
		argCount++
		query += ` AND status = $` + strconv.Itoa(argCount)
		args = append(args, f.Status)
	}
	if f.SubmittedBy != 0 {
		argCount++
		query += ` AND submitted_by = $` + strconv.Itoa(argCount)
		args = append(args, f.SubmittedBy)
	}

	query += ` ORDER BY submitted_at DESC, id DESC;`

	var out []model.Content
	if err := s.db.Select(&out, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to list content")
		return nil, err
	}
	return out, nil
}

// ApproveContent sets status to active if and only if the row is still
// pending. The status predicate in the WHERE clause is the concurrency
// guard: of two racing approve/reject calls, exactly one updates a row.
func (s *pgStore) ApproveContent(contentID, approverID int, notes *string) (model.Content, error) {
	var c model.Content
	err := s.db.Get(&c, `
		UPDATE display_content
		SET status = 'active',
		approved_by = $2,
		approved_at = now(),
		approval_notes = $3,
		updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+contentColumns+`;`,
		contentID, approverID, notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Content{}, s.decisionConflict("approve", contentID)
	}
	if err != nil {
		log.Error().Err(err).Int("content_id", contentID).Msg("failed to approve content")
		return model.Content{}, err
	}
	return c, nil
}

// RejectContent mirrors ApproveContent with the same compare-and-set.
func (s *pgStore) RejectContent(contentID, approverID int, reason string, notes *string) (model.Content, error) {
	var c model.Content
	err := s.db.Get(&c, `
		UPDATE display_content
		SET status = 'rejected',
		approved_by = $2,
		approved_at = now(),
		rejection_reason = $3,
		approval_notes = $4,
		updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+contentColumns+`;`,
		contentID, approverID, reason, notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Content{}, s.decisionConflict("reject", contentID)
	}
	if err != nil {
		log.Error().Err(err).Int("content_id", contentID).Msg("failed to reject content")
		return model.Content{}, err
	}
	return c, nil
}

// decisionConflict disambiguates a zero-row compare-and-set: the row is
// either missing or no longer pending.
func (s *pgStore) decisionConflict(op string, contentID int) error {
	current, err := s.GetContentByID(contentID)
	if err != nil {
		return err
	}
	return &workflow.InvalidStateError{Op: op, Status: current.Status}
}

// ExpireOverdueContent flips active rows whose validity window has passed.
// Called opportunistically from listing paths; there is no background sweep.
func (s *pgStore) ExpireOverdueContent(now time.Time) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE display_content
		SET status = 'expired', updated_at = now()
		WHERE status = 'active' AND end_date < $1;`,
		now,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to expire overdue content")
		return 0, err
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Info().Int64("expired", n).Msg("marked overdue content expired")
	}
	return n, nil
}
