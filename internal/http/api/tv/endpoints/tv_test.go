package endpoints

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-suite/hub/internal/schedule"
)

func TestBoundedETagTTL(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, etagTTL, boundedETagTTL(nil, now), "no upcoming boundary keeps the full cap")

	soon := now.Add(30 * time.Minute)
	assert.Equal(t, 30*time.Minute+time.Second, boundedETagTTL(&soon, now),
		"a validity window closing in 30m must expire the cached tag with it")

	far := now.Add(48 * time.Hour)
	assert.Equal(t, etagTTL, boundedETagTTL(&far, now), "a distant boundary never extends the cap")

	past := now.Add(-time.Minute)
	assert.Equal(t, time.Second, boundedETagTTL(&past, now), "a boundary already behind us still yields a positive TTL")
}

func TestMasjidClock(t *testing.T) {
	// 16:00 UTC is midnight in Malaysia.
	utc := time.Date(2026, 8, 30, 16, 0, 0, 0, time.UTC)
	local := utc.In(masjidTZ)
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, 31, local.Day())
}

func TestBlackScreenEvaluatedOnMasjidClock(t *testing.T) {
	cfg := schedule.BlackScreen{
		Enabled: true,
		Type:    schedule.TypeDaily,
		Start:   "22:00",
		End:     "06:00",
	}

	// 15:00 UTC is 23:00 in Malaysia: inside the window locally, outside
	// it on a UTC server clock.
	utc := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	assert.True(t, schedule.IsActive(cfg, utc.In(masjidTZ)))
	assert.False(t, schedule.IsActive(cfg, utc))
}
