// Package endpoints serves the unauthenticated surface TV clients poll.
// Displays identify themselves with their pairing token; there is no
// account or session involved.
package endpoints

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/api"
	"github.com/masjid-suite/hub/internal/http/api/tv/packets"
	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/redis"
	"github.com/masjid-suite/hub/internal/schedule"
)

// etagTTL bounds how long a cached playlist ETag may answer polls without
// a fresh read; mutations invalidate it earlier, and a validity window
// opening or closing caps it tighter still.
const etagTTL = 24 * time.Hour

// masjidTZ is the wall clock black screen schedules are written against.
// Every JAKIM zone shares it.
var masjidTZ = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		return time.FixedZone("MYT", 8*60*60)
	}
	return loc
}()

// boundedETagTTL caps the cached ETag's lifetime at the next time-driven
// playlist change, so a 304 can never outlive an item's validity window.
func boundedETagTTL(next *time.Time, now time.Time) time.Duration {
	if next == nil {
		return etagTTL
	}
	until := next.Sub(now) + time.Second
	if until < time.Second {
		until = time.Second
	}
	if until > etagTTL {
		return etagTTL
	}
	return until
}

type TVController struct {
	store db.Store
}

// TVModule mounts the display-facing endpoints. The playlist route is
// registered raw because it speaks ETag/304, which the JSON adapter
// cannot express.
func TVModule(store db.Store) api.Module {
	ctl := &TVController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.Group.GET("/displays/:token/playlist", ctl.getPlaylist)
		c.PUBLIC_GET("/displays/:token/config", ctl.getConfig)
	})
}

func (t *TVController) resolveDisplay(ctx *gin.Context) (model.Display, bool) {
	display, err := t.store.GetDisplayByPairingToken(ctx.Param("token"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "display not found"})
		return model.Display{}, false
	}
	if !display.IsActive {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "display not found"})
		return model.Display{}, false
	}
	return display, true
}

// getPlaylist returns the carousel a display should be playing right now.
// Clients poll with If-None-Match; an unchanged playlist answers 304.
func (t *TVController) getPlaylist(ctx *gin.Context) {
	display, ok := t.resolveDisplay(ctx)
	if !ok {
		return
	}

	// Cheap path: the cached ETag is dropped on every mutation, so a
	// match means nothing changed since the client's last poll.
	if match := ctx.GetHeader("If-None-Match"); match != "" {
		if cached := redis.GetPlaylistETag(ctx.Request.Context(), display.ID); cached != "" && cached == match {
			ctx.Status(http.StatusNotModified)
			return
		}
	}

	now := time.Now().UTC()
	assignments, err := t.store.ListPlayableAssignments(display.ID, now)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not load playlist"})
		return
	}

	items := make([]packets.PlaylistItemResponse, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, packets.MapPlaylistItem(a))
	}
	playlist := packets.PlaylistResponse{DisplayID: display.ID, Items: items}

	etag, err := playlistETag(playlist)
	if err != nil {
		log.Error().Err(err).Int("display_id", display.ID).Msg("failed to compute playlist etag")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not load playlist"})
		return
	}
	next, err := t.store.NextPlaylistChange(display.ID, now)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not load playlist"})
		return
	}
	redis.SetPlaylistETag(ctx.Request.Context(), display.ID, etag, boundedETagTTL(next, now))

	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}
	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, playlist)
}

// getConfig returns the display's playback settings, its masjid's JAKIM
// zone for prayer times, and the black screen schedule with its current
// evaluation.
func (t *TVController) getConfig(ctx *gin.Context) (any, *api.APIError) {
	display, err := t.store.GetDisplayByPairingToken(ctx.Param("token"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "display not found"}
	}
	if !display.IsActive {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "display not found"}
	}

	masjid, err := t.store.GetMasjidByID(display.MasjidID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load display config"}
	}

	days := make([]int, len(display.BlackScreenDays))
	for i, v := range display.BlackScreenDays {
		days[i] = int(v)
	}
	cfg := schedule.BlackScreen{
		Enabled:   display.BlackScreenEnabled,
		Type:      display.BlackScreenScheduleType,
		Days:      days,
		ShowClock: display.BlackScreenShowClock,
	}
	if display.BlackScreenStartTime != nil {
		cfg.Start = *display.BlackScreenStartTime
	}
	if display.BlackScreenEndTime != nil {
		cfg.End = *display.BlackScreenEndTime
	}

	return packets.DisplayConfigResponse{
		DisplayID:           display.ID,
		Name:                display.Name,
		Resolution:          string(display.Resolution),
		Orientation:         string(display.Orientation),
		CarouselInterval:    display.CarouselInterval,
		MaxContentItems:     display.MaxContentItems,
		TransitionType:      string(display.TransitionType),
		PrayerTimePosition:  display.PrayerTimePosition,
		PrayerTimeFontSize:  display.PrayerTimeFontSize,
		PrayerTimeColor:     display.PrayerTimeColor,
		PrayerTimeBgOpacity: display.PrayerTimeBgOpacity,
		JakimZone:           masjid.JakimZone,
		BlackScreen: packets.BlackScreenConfigResponse{
			Enabled:      display.BlackScreenEnabled,
			ScheduleType: display.BlackScreenScheduleType,
			StartTime:    display.BlackScreenStartTime,
			EndTime:      display.BlackScreenEndTime,
			Days:         days,
			Message:      display.BlackScreenMessage,
			ShowClock:    display.BlackScreenShowClock,
			ActiveNow:    schedule.IsActive(cfg, time.Now().In(masjidTZ)),
		},
	}, nil
}

// playlistETag hashes the serialized playlist so any change to items,
// order, or settings yields a new tag.
func playlistETag(p packets.PlaylistResponse) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(body)
	return fmt.Sprintf(`"%x"`, sum[:16]), nil
}
