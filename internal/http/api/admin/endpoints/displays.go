package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/api"
	"github.com/masjid-suite/hub/internal/http/api/admin/packets"
	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/realtime"
	"github.com/masjid-suite/hub/internal/redis"
	"github.com/masjid-suite/hub/internal/schedule"
)

type DisplayController struct {
	store db.Store
}

// DisplayModule mounts display management, schedule, and remote-control
// endpoints.
func DisplayModule(store db.Store) api.Module {
	ctl := &DisplayController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/displays", ctl.listDisplays)
		c.POST("/displays", ctl.createDisplay)
		c.GET("/displays/:id", ctl.getDisplay)
		c.PUT("/displays/:id", ctl.updateDisplay)
		c.DELETE("/displays/:id", ctl.deleteDisplay)
		c.PUT("/displays/:id/black_screen", ctl.setBlackScreen)
		c.POST("/displays/:id/commands", ctl.sendCommand)
	})
}

// loadAuthorizedDisplay fetches the display and verifies the caller
// administers its masjid.
func (d *DisplayController) loadAuthorizedDisplay(ctx *gin.Context, user *model.User) (model.Display, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return model.Display{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	display, err := d.store.GetDisplayByID(id)
	if err != nil {
		return model.Display{}, mapWorkflowError(err, "could not fetch display")
	}
	if apiErr := requireMasjidAdmin(d.store, user, display.MasjidID); apiErr != nil {
		return model.Display{}, apiErr
	}
	return display, nil
}

func (d *DisplayController) listDisplays(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	masjidID, err := strconv.Atoi(ctx.Query("masjid_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "masjid_id query parameter required"}
	}
	if apiErr := requireMasjidAdmin(d.store, user, masjidID); apiErr != nil {
		return nil, apiErr
	}

	all, err := d.store.ListDisplays(masjidID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list displays"}
	}
	out := make([]packets.DisplayResponse, 0, len(all))
	for _, x := range all {
		out = append(out, packets.MapDisplay(x))
	}
	return out, nil
}

func (d *DisplayController) createDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreateDisplayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if apiErr := requireMasjidAdmin(d.store, user, req.MasjidID); apiErr != nil {
		return nil, apiErr
	}

	resolution := model.Resolution1080p
	if req.Resolution != "" {
		resolution = model.DisplayResolution(req.Resolution)
	}
	orientation := model.OrientationLandscape
	if req.Orientation != "" {
		orientation = model.DisplayOrientation(req.Orientation)
	}

	display, err := d.store.CreateDisplay(model.Display{
		MasjidID:            req.MasjidID,
		Name:                req.Name,
		Description:         req.Description,
		Location:            req.Location,
		Resolution:          resolution,
		Orientation:         orientation,
		PairingToken:        uuid.NewString(),
		CarouselInterval:    10,
		MaxContentItems:     20,
		TransitionType:      model.TransitionFade,
		PrayerTimePosition:  "top",
		PrayerTimeFontSize:  "medium",
		PrayerTimeColor:     "#FFFFFF",
		PrayerTimeBgOpacity: 0.8,
		CreatedBy:           user.ID,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create display"}
	}

	return packets.MapDisplay(display), nil
}

func (d *DisplayController) getDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	display, apiErr := d.loadAuthorizedDisplay(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.MapDisplay(display), nil
}

func (d *DisplayController) updateDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	display, apiErr := d.loadAuthorizedDisplay(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var req packets.UpdateDisplayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	update := db.DisplaySettingsUpdate{
		Name:                req.Name,
		Description:         req.Description,
		Location:            req.Location,
		IsActive:            req.IsActive,
		CarouselInterval:    req.CarouselInterval,
		MaxContentItems:     req.MaxContentItems,
		PrayerTimePosition:  req.PrayerTimePosition,
		PrayerTimeFontSize:  req.PrayerTimeFontSize,
		PrayerTimeColor:     req.PrayerTimeColor,
		PrayerTimeBgOpacity: req.PrayerTimeBgOpacity,
	}
	if req.Resolution != nil {
		r := model.DisplayResolution(*req.Resolution)
		update.Resolution = &r
	}
	if req.Orientation != nil {
		o := model.DisplayOrientation(*req.Orientation)
		update.Orientation = &o
	}
	if req.TransitionType != nil {
		t := model.TransitionType(*req.TransitionType)
		update.TransitionType = &t
	}

	if err := d.store.UpdateDisplaySettings(display.ID, update); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update display"}
	}
	redis.InvalidatePlaylistETag(ctx.Request.Context(), display.ID)

	updated, err := d.store.GetDisplayByID(display.ID)
	if err != nil {
		return nil, mapWorkflowError(err, "could not fetch display")
	}
	return packets.MapDisplay(updated), nil
}

func (d *DisplayController) deleteDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	display, apiErr := d.loadAuthorizedDisplay(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := d.store.DeleteDisplay(display.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete display"}
	}
	redis.InvalidatePlaylistETag(ctx.Request.Context(), display.ID)
	return nil, nil
}

// setBlackScreen validates and stores the full schedule in one write.
func (d *DisplayController) setBlackScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	display, apiErr := d.loadAuthorizedDisplay(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var req packets.BlackScreenScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	cfg := schedule.BlackScreen{
		Enabled:   req.Enabled,
		Type:      req.ScheduleType,
		Days:      req.Days,
		ShowClock: req.ShowClock,
	}
	if req.StartTime != nil {
		cfg.Start = *req.StartTime
	}
	if req.EndTime != nil {
		cfg.End = *req.EndTime
	}
	if req.Message != nil {
		cfg.Message = *req.Message
	}
	if err := schedule.Validate(cfg); err != nil {
		return nil, mapWorkflowError(err, "invalid schedule")
	}

	days := make([]int64, len(req.Days))
	for i, v := range req.Days {
		days[i] = int64(v)
	}
	err := d.store.SetBlackScreenSchedule(display.ID, db.BlackScreenConfig{
		Enabled:      req.Enabled,
		ScheduleType: req.ScheduleType,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Days:         days,
		Message:      req.Message,
		ShowClock:    req.ShowClock,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save schedule"}
	}
	redis.InvalidatePlaylistETag(ctx.Request.Context(), display.ID)

	updated, err := d.store.GetDisplayByID(display.ID)
	if err != nil {
		return nil, mapWorkflowError(err, "could not fetch display")
	}
	return packets.MapDisplay(updated), nil
}

// sendCommand dispatches a fire-and-forget command to the display's MQTT
// topic. Success means the broker took it, nothing more.
func (d *DisplayController) sendCommand(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	display, apiErr := d.loadAuthorizedDisplay(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var req packets.SendCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	payload, err := realtime.SendCommand(display.ID, realtime.Command(req.Command), req.Metadata)
	if err != nil {
		return nil, mapWorkflowError(err, "could not dispatch command")
	}

	log.Info().Int("display_id", display.ID).Str("command", req.Command).Msg("remote command accepted by broker")
	return packets.CommandResponse{
		MessageID: payload.ID,
		Command:   string(payload.Command),
		Timestamp: payload.Timestamp,
	}, nil
}
