package workflow

import (
	"github.com/masjid-suite/hub/internal/model"
)

// PlanReorder maps a caller-supplied full ordering onto new dense
// zero-based positions. The ordered list must cover exactly the current
// assignment set: no missing IDs, no foreign IDs, no duplicates. The
// returned map is content ID -> new position.
func PlanReorder(current []model.Assignment, orderedContentIDs []int) (map[int]int, error) {
	if len(orderedContentIDs) != len(current) {
		return nil, &ValidationError{Field: "content_ids", Reason: "must list every assigned content exactly once"}
	}

	assigned := make(map[int]bool, len(current))
	for _, a := range current {
		assigned[a.ContentID] = true
	}

	plan := make(map[int]int, len(orderedContentIDs))
	for pos, id := range orderedContentIDs {
		if !assigned[id] {
			return nil, &ValidationError{Field: "content_ids", Reason: "contains content not assigned to this display"}
		}
		if _, dup := plan[id]; dup {
			return nil, &ValidationError{Field: "content_ids", Reason: "contains duplicate content ids"}
		}
		plan[id] = pos
	}
	return plan, nil
}

// Resequence returns the dense zero-based positions that remain after
// removing one content item, keyed by content ID. Survivors keep their
// relative order.
func Resequence(current []model.Assignment, removedContentID int) map[int]int {
	plan := make(map[int]int, len(current))
	pos := 0
	for _, a := range current {
		if a.ContentID == removedContentID {
			continue
		}
		plan[a.ContentID] = pos
		pos++
	}
	return plan
}
