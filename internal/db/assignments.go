package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/workflow"
)

const assignmentColumns = `
	id, display_id, content_id, position, carousel_duration,
	transition_type, image_display_mode, assigned_by, assigned_at`

func (s *pgStore) ListAssignments(displayID int) ([]model.Assignment, error) {
	out, err := s.listAssignmentsTx(s.db, displayID)
	if err != nil {
		log.Error().Err(err).Int("display_id", displayID).Msg("failed to list assignments")
		return nil, err
	}
	if err := s.attachContent(out); err != nil {
		return nil, err
	}
	return out, nil
}

type assignmentQuerier interface {
	Select(dest interface{}, query string, args ...interface{}) error
}

func (s *pgStore) listAssignmentsTx(q assignmentQuerier, displayID int) ([]model.Assignment, error) {
	var out []model.Assignment
	err := q.Select(&out, `
		SELECT `+assignmentColumns+`
		FROM display_content_assignments
		WHERE display_id = $1
		ORDER BY position;`, displayID)
	return out, err
}

func (s *pgStore) attachContent(assignments []model.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	ids := make([]int64, len(assignments))
	for i, a := range assignments {
		ids[i] = int64(a.ContentID)
	}
	var contents []model.Content
	err := s.db.Select(&contents, `
		SELECT `+contentColumns+`
		FROM display_content
		WHERE id = ANY($1);`, pq.Array(ids))
	if err != nil {
		log.Error().Err(err).Msg("failed to load content for assignments")
		return err
	}
	byID := make(map[int]*model.Content, len(contents))
	for i := range contents {
		byID[contents[i].ID] = &contents[i]
	}
	for i := range assignments {
		assignments[i].Content = byID[assignments[i].ContentID]
	}
	return nil
}

// lockDisplay takes the display's row lock. Every assignment writer
// locks this row first so position math never interleaves between
// concurrent transactions on the same display.
func lockDisplay(tx *sqlx.Tx, displayID int) error {
	var id int
	err := tx.Get(&id, `SELECT id FROM displays WHERE id = $1 FOR UPDATE;`, displayID)
	if errors.Is(err, sql.ErrNoRows) {
		return workflow.ErrNotFound
	}
	return err
}

// AssignContent appends content to the end of a display's carousel. The
// content must currently be active; assigning the same content twice to
// one display is a duplicate. The append position is derived from the
// current row count, so the display lock keeps concurrent assigns from
// colliding on it.
func (s *pgStore) AssignContent(displayID, contentID int, settings model.AssignmentSettings, assignedBy int) (a model.Assignment, err error) {
	var content model.Content
	content, err = s.GetContentByID(contentID)
	if err != nil {
		return model.Assignment{}, err
	}
	if content.Status != model.ContentStatusActive {
		return model.Assignment{}, &workflow.InvalidStateError{Op: "assign", Status: content.Status}
	}
	settings, err = workflow.CheckAssignmentSettings(settings, content.Type)
	if err != nil {
		return model.Assignment{}, err
	}

	var tx *sqlx.Tx
	tx, err = s.db.Beginx()
	if err != nil {
		return model.Assignment{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return
			}
		} else {
			if cmErr := tx.Commit(); cmErr != nil {
				err = cmErr
			}
		}
	}()

	if err = lockDisplay(tx, displayID); err != nil {
		return model.Assignment{}, err
	}

	err = tx.Get(&a, `
		INSERT INTO display_content_assignments
		(display_id, content_id, position, carousel_duration, transition_type,
		 image_display_mode, assigned_by, assigned_at)
		SELECT $1, $2,
		       (SELECT count(*) FROM display_content_assignments WHERE display_id = $1),
		       $3, $4, $5, $6, now()
		RETURNING `+assignmentColumns+`;`,
		displayID, contentID, settings.CarouselDuration, settings.TransitionType,
		settings.ImageDisplayMode, assignedBy,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" &&
			pqErr.Constraint == "display_content_assignments_content_key" {
			err = workflow.ErrDuplicate
			return model.Assignment{}, err
		}
		log.Error().Err(err).Int("display_id", displayID).Int("content_id", contentID).Msg("failed to assign content")
		return model.Assignment{}, err
	}
	a.Content = &content
	return a, nil
}

// UnassignContent removes one assignment and closes the position gap so
// the remaining order stays a dense zero-based sequence.
func (s *pgStore) UnassignContent(displayID, contentID int) (err error) {
	var tx *sqlx.Tx
	tx, err = s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return
			}
		} else {
			if cmErr := tx.Commit(); cmErr != nil {
				err = cmErr
			}
		}
	}()

	if err = lockDisplay(tx, displayID); err != nil {
		return err
	}

	current, err := s.listAssignmentsTx(tx, displayID)
	if err != nil {
		return err
	}
	found := false
	for _, a := range current {
		if a.ContentID == contentID {
			found = true
			break
		}
	}
	if !found {
		err = workflow.ErrNotFound
		return err
	}

	if _, err = tx.Exec(`
		DELETE FROM display_content_assignments
		WHERE display_id = $1 AND content_id = $2;`,
		displayID, contentID); err != nil {
		return err
	}

	err = s.applyPositions(tx, displayID, len(current), workflow.Resequence(current, contentID))
	return err
}

// ReorderAssignments atomically replaces a display's order with the given
// full target ordering. Either every position changes or none does.
func (s *pgStore) ReorderAssignments(displayID int, orderedContentIDs []int) (err error) {
	var tx *sqlx.Tx
	tx, err = s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return
			}
		} else {
			if cmErr := tx.Commit(); cmErr != nil {
				err = cmErr
			}
		}
	}()

	if err = lockDisplay(tx, displayID); err != nil {
		return err
	}

	var current []model.Assignment
	if err = tx.Select(&current, `
		SELECT `+assignmentColumns+`
		FROM display_content_assignments
		WHERE display_id = $1
		ORDER BY position;`, displayID); err != nil {
		return err
	}

	plan, planErr := workflow.PlanReorder(current, orderedContentIDs)
	if planErr != nil {
		err = planErr
		return err
	}

	err = s.applyPositions(tx, displayID, len(current), plan)
	return err
}

// applyPositions writes final positions inside a transaction. Rows are
// first shifted past the live range so the per-display unique index never
// sees a transient collision while targets are written one by one.
func (s *pgStore) applyPositions(tx *sqlx.Tx, displayID, offset int, plan map[int]int) error {
	if len(plan) == 0 {
		return nil
	}
	if _, err := tx.Exec(`
		UPDATE display_content_assignments
		SET position = position + $2
		WHERE display_id = $1;`,
		displayID, offset+1); err != nil {
		return err
	}
	for contentID, pos := range plan {
		if _, err := tx.Exec(`
			UPDATE display_content_assignments
			SET position = $3
			WHERE display_id = $1 AND content_id = $2;`,
			displayID, contentID, pos); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAssignmentSettings validates and persists per-assignment overrides.
// image_display_mode is normalized away for non-image content.
func (s *pgStore) UpdateAssignmentSettings(displayID, contentID int, settings model.AssignmentSettings) (model.Assignment, error) {
	content, err := s.GetContentByID(contentID)
	if err != nil {
		return model.Assignment{}, err
	}
	settings, err = workflow.CheckAssignmentSettings(settings, content.Type)
	if err != nil {
		return model.Assignment{}, err
	}

	var a model.Assignment
	err = s.db.Get(&a, `
		UPDATE display_content_assignments
		SET carousel_duration = $3,
		transition_type = $4,
		image_display_mode = $5
		WHERE display_id = $1 AND content_id = $2
		RETURNING `+assignmentColumns+`;`,
		displayID, contentID, settings.CarouselDuration, settings.TransitionType,
		settings.ImageDisplayMode,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assignment{}, workflow.ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Int("display_id", displayID).Int("content_id", contentID).Msg("failed to update assignment settings")
		return model.Assignment{}, err
	}
	a.Content = &content
	return a, nil
}

// ListPlayableAssignments returns the ordered carousel a display should be
// playing right now: active content inside its validity window, capped at
// the display's max item count.
func (s *pgStore) ListPlayableAssignments(displayID int, now time.Time) ([]model.Assignment, error) {
	var out []model.Assignment
	err := s.db.Select(&out, `
		SELECT a.id, a.display_id, a.content_id, a.position,
		       a.carousel_duration, a.transition_type, a.image_display_mode,
		       a.assigned_by, a.assigned_at
		FROM display_content_assignments a
		JOIN display_content c ON c.id = a.content_id
		WHERE a.display_id = $1
		  AND c.status = 'active'
		  AND c.start_date <= $2
		  AND c.end_date >= $2
		ORDER BY a.position
		LIMIT (SELECT max_content_items FROM displays WHERE id = $1);`,
		displayID, now)
	if err != nil {
		log.Error().Err(err).Int("display_id", displayID).Msg("failed to list playable assignments")
		return nil, err
	}
	if err := s.attachContent(out); err != nil {
		return nil, err
	}
	return out, nil
}

// NextPlaylistChange returns the earliest future instant at which the
// display's playable set changes by the clock alone: an assigned active
// item's validity window opening or closing. Nil means no such boundary
// is ahead.
func (s *pgStore) NextPlaylistChange(displayID int, now time.Time) (*time.Time, error) {
	var next sql.NullTime
	err := s.db.Get(&next, `
		SELECT min(ts) FROM (
			SELECT c.start_date AS ts
			FROM display_content_assignments a
			JOIN display_content c ON c.id = a.content_id
			WHERE a.display_id = $1 AND c.status = 'active' AND c.start_date > $2
			UNION ALL
			SELECT c.end_date
			FROM display_content_assignments a
			JOIN display_content c ON c.id = a.content_id
			WHERE a.display_id = $1 AND c.status = 'active' AND c.end_date > $2
		) boundaries;`, displayID, now)
	if err != nil {
		log.Error().Err(err).Int("display_id", displayID).Msg("failed to find next playlist change")
		return nil, err
	}
	if !next.Valid {
		return nil, nil
	}
	t := next.Time
	return &t, nil
}
