// Package schedule evaluates black-screen window configuration. The TV
// client runs the same evaluation; this service owns the config's
// correctness and rejects configurations the client could not interpret.
package schedule

import (
	"fmt"
	"regexp"
	"time"

	"github.com/masjid-suite/hub/internal/workflow"
)

const (
	TypeDaily  = "daily"
	TypeWeekly = "weekly"
)

// BlackScreen is a display's recurring black-screen window configuration.
// Start and End are "HH:MM" 24-hour clock strings. Start > End denotes a
// window that wraps midnight, e.g. 22:00-06:00.
type BlackScreen struct {
	Enabled   bool
	Type      string
	Start     string
	End       string
	Days      []int // weekdays 0 (Sunday) - 6, weekly only
	Message   string
	ShowClock bool
}

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	if !clockRe.MatchString(s) {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, nil
}

// Validate rejects configurations that the display client would have to
// guess about. A weekly schedule with an empty day set is an error, not
// "never active": the hub UI must block that save.
func Validate(cfg BlackScreen) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Type != TypeDaily && cfg.Type != TypeWeekly {
		return &workflow.ValidationError{Field: "black_screen_schedule_type", Reason: "must be daily or weekly"}
	}
	if _, err := ParseClock(cfg.Start); err != nil {
		return &workflow.ValidationError{Field: "black_screen_start_time", Reason: "must be HH:MM"}
	}
	if _, err := ParseClock(cfg.End); err != nil {
		return &workflow.ValidationError{Field: "black_screen_end_time", Reason: "must be HH:MM"}
	}
	if cfg.Type == TypeWeekly {
		if len(cfg.Days) == 0 {
			return &workflow.ValidationError{Field: "black_screen_days", Reason: "weekly schedule needs at least one day"}
		}
		for _, d := range cfg.Days {
			if d < 0 || d > 6 {
				return &workflow.ValidationError{Field: "black_screen_days", Reason: "days must be 0-6"}
			}
		}
	}
	return nil
}

// IsActive reports whether the black screen should be showing at the
// given local instant. The active interval is [start,end); a start after
// the end wraps past midnight. For weekly schedules the configured day
// owns the whole window it starts, including any post-midnight portion,
// so a Friday 22:00-06:00 window is still active early Saturday.
func IsActive(cfg BlackScreen, now time.Time) bool {
	if !cfg.Enabled {
		return false
	}
	start, err := ParseClock(cfg.Start)
	if err != nil {
		return false
	}
	end, err := ParseClock(cfg.End)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	wraps := start > end

	var inWindow bool
	if wraps {
		inWindow = minute >= start || minute < end
	} else {
		inWindow = minute >= start && minute < end
	}
	if !inWindow {
		return false
	}
	if cfg.Type != TypeWeekly {
		return true
	}

	// Start-day ownership: in the post-midnight tail of a wrapped window
	// the owning weekday is yesterday's.
	day := int(now.Weekday())
	if wraps && minute < end {
		day = (day + 6) % 7
	}
	for _, d := range cfg.Days {
		if d == day {
			return true
		}
	}
	return false
}
