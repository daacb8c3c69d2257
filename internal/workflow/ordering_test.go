package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-suite/hub/internal/model"
)

func assignments(contentIDs ...int) []model.Assignment {
	out := make([]model.Assignment, len(contentIDs))
	for i, id := range contentIDs {
		out[i] = model.Assignment{ContentID: id, Position: i}
	}
	return out
}

func TestPlanReorder(t *testing.T) {
	current := assignments(10, 20, 30)

	plan, err := PlanReorder(current, []int{30, 10, 20})
	assert.NoError(t, err)
	assert.Equal(t, map[int]int{30: 0, 10: 1, 20: 2}, plan)

	// identity order is a valid reorder
	plan, err = PlanReorder(current, []int{10, 20, 30})
	assert.NoError(t, err)
	assert.Equal(t, map[int]int{10: 0, 20: 1, 30: 2}, plan)
}

func TestPlanReorderRejectsPartialSet(t *testing.T) {
	current := assignments(10, 20, 30)

	var vErr *ValidationError
	_, err := PlanReorder(current, []int{10, 20})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "content_ids", vErr.Field)
}

func TestPlanReorderRejectsForeignContent(t *testing.T) {
	current := assignments(10, 20, 30)

	var vErr *ValidationError
	_, err := PlanReorder(current, []int{10, 20, 99})
	assert.ErrorAs(t, err, &vErr)
}

func TestPlanReorderRejectsDuplicates(t *testing.T) {
	current := assignments(10, 20, 30)

	var vErr *ValidationError
	_, err := PlanReorder(current, []int{10, 20, 20})
	assert.ErrorAs(t, err, &vErr)
}

func TestPlanReorderEmpty(t *testing.T) {
	plan, err := PlanReorder(nil, []int{})
	assert.NoError(t, err)
	assert.Empty(t, plan)
}

func TestResequenceClosesGap(t *testing.T) {
	current := assignments(10, 20, 30)

	plan := Resequence(current, 20)
	assert.Equal(t, map[int]int{10: 0, 30: 1}, plan)
}

func TestResequenceRemovingEndpoints(t *testing.T) {
	current := assignments(10, 20, 30)

	assert.Equal(t, map[int]int{20: 0, 30: 1}, Resequence(current, 10))
	assert.Equal(t, map[int]int{10: 0, 20: 1}, Resequence(current, 30))
}

func TestResequenceUnknownIDKeepsOrder(t *testing.T) {
	current := assignments(10, 20)

	plan := Resequence(current, 99)
	assert.Equal(t, map[int]int{10: 0, 20: 1}, plan)
}
