package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-suite/hub/internal/workflow"
)

func at(weekday time.Weekday, clock string) time.Time {
	// 2026-08-02 is a Sunday
	base := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	m, err := ParseClock(clock)
	if err != nil {
		panic(err)
	}
	return base.AddDate(0, 0, int(weekday)).Add(time.Duration(m) * time.Minute)
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("22:30")
	assert.NoError(t, err)
	assert.Equal(t, 22*60+30, m)

	m, err = ParseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	for _, bad := range []string{"24:00", "7:00", "23:60", "2300", "", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestDailyWindowWrapsMidnight(t *testing.T) {
	cfg := BlackScreen{Enabled: true, Type: TypeDaily, Start: "22:00", End: "06:00"}

	assert.True(t, IsActive(cfg, at(time.Monday, "23:00")))
	assert.True(t, IsActive(cfg, at(time.Monday, "05:00")))
	assert.True(t, IsActive(cfg, at(time.Monday, "22:00")), "start is inclusive")
	assert.False(t, IsActive(cfg, at(time.Monday, "06:00")), "end is exclusive")
	assert.False(t, IsActive(cfg, at(time.Monday, "12:00")))
}

func TestDailyWindowSameDay(t *testing.T) {
	cfg := BlackScreen{Enabled: true, Type: TypeDaily, Start: "13:00", End: "15:00"}

	assert.True(t, IsActive(cfg, at(time.Tuesday, "13:00")))
	assert.True(t, IsActive(cfg, at(time.Tuesday, "14:59")))
	assert.False(t, IsActive(cfg, at(time.Tuesday, "15:00")))
	assert.False(t, IsActive(cfg, at(time.Tuesday, "12:59")))
}

func TestWeeklyStartDayOwnsWrappedTail(t *testing.T) {
	// Friday 22:00 - 06:00: still active early Saturday, but a window
	// starting on Saturday itself is not configured.
	cfg := BlackScreen{
		Enabled: true,
		Type:    TypeWeekly,
		Start:   "22:00",
		End:     "06:00",
		Days:    []int{int(time.Friday)},
	}

	assert.True(t, IsActive(cfg, at(time.Friday, "23:00")))
	assert.True(t, IsActive(cfg, at(time.Saturday, "03:00")), "post-midnight tail belongs to Friday")
	assert.False(t, IsActive(cfg, at(time.Saturday, "23:00")))
	assert.False(t, IsActive(cfg, at(time.Friday, "03:00")), "Friday pre-dawn belongs to Thursday's window")
}

func TestWeeklyNonWrappingWindow(t *testing.T) {
	cfg := BlackScreen{
		Enabled: true,
		Type:    TypeWeekly,
		Start:   "09:00",
		End:     "17:00",
		Days:    []int{int(time.Sunday), int(time.Wednesday)},
	}

	assert.True(t, IsActive(cfg, at(time.Sunday, "10:00")))
	assert.True(t, IsActive(cfg, at(time.Wednesday, "16:59")))
	assert.False(t, IsActive(cfg, at(time.Monday, "10:00")))
}

func TestDisabledIsNeverActive(t *testing.T) {
	cfg := BlackScreen{Enabled: false, Type: TypeDaily, Start: "00:00", End: "23:59"}
	assert.False(t, IsActive(cfg, at(time.Monday, "12:00")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(BlackScreen{Enabled: false}))
	assert.NoError(t, Validate(BlackScreen{Enabled: true, Type: TypeDaily, Start: "22:00", End: "06:00"}))
	assert.NoError(t, Validate(BlackScreen{Enabled: true, Type: TypeWeekly, Start: "22:00", End: "06:00", Days: []int{5}}))

	var vErr *workflow.ValidationError

	err := Validate(BlackScreen{Enabled: true, Type: "monthly", Start: "22:00", End: "06:00"})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "black_screen_schedule_type", vErr.Field)

	err = Validate(BlackScreen{Enabled: true, Type: TypeDaily, Start: "25:00", End: "06:00"})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "black_screen_start_time", vErr.Field)

	err = Validate(BlackScreen{Enabled: true, Type: TypeWeekly, Start: "22:00", End: "06:00"})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "black_screen_days", vErr.Field)

	err = Validate(BlackScreen{Enabled: true, Type: TypeWeekly, Start: "22:00", End: "06:00", Days: []int{7}})
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "black_screen_days", vErr.Field)
}
