package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/api"
	"github.com/masjid-suite/hub/internal/http/api/admin/packets"
	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/redis"
)

type AssignmentController struct {
	store db.Store
}

// AssignmentModule mounts the per-display content carousel endpoints.
func AssignmentModule(store db.Store) api.Module {
	ctl := &AssignmentController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/displays/:id/assignments", ctl.listAssignments)
		c.POST("/displays/:id/assignments", ctl.assignContent)
		c.PUT("/displays/:id/assignments", ctl.reorderAssignments)
		c.PUT("/displays/:id/assignments/:content_id", ctl.updateSettings)
		c.DELETE("/displays/:id/assignments/:content_id", ctl.unassignContent)
	})
}

func (a *AssignmentController) authorizedDisplayID(ctx *gin.Context, user *model.User) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	display, err := a.store.GetDisplayByID(id)
	if err != nil {
		return 0, mapWorkflowError(err, "could not fetch display")
	}
	if apiErr := requireMasjidAdmin(a.store, user, display.MasjidID); apiErr != nil {
		return 0, apiErr
	}
	return display.ID, nil
}

func (a *AssignmentController) listAssignments(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	displayID, apiErr := a.authorizedDisplayID(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	assignments, err := a.store.ListAssignments(displayID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list assignments"}
	}
	return mapAssignments(assignments), nil
}

func (a *AssignmentController) assignContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	displayID, apiErr := a.authorizedDisplayID(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var req packets.AssignContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings := model.DefaultAssignmentSettings()
	if req.Settings != nil {
		if req.Settings.CarouselDuration != nil {
			settings.CarouselDuration = *req.Settings.CarouselDuration
		}
		if req.Settings.TransitionType != nil {
			settings.TransitionType = model.TransitionType(*req.Settings.TransitionType)
		}
		if req.Settings.ImageDisplayMode != nil {
			settings.ImageDisplayMode = model.ImageDisplayMode(*req.Settings.ImageDisplayMode)
		}
	}

	assignment, err := a.store.AssignContent(displayID, req.ContentID, settings, user.ID)
	if err != nil {
		return nil, mapWorkflowError(err, "could not assign content")
	}

	redis.InvalidatePlaylistETag(ctx.Request.Context(), displayID)
	return packets.MapAssignment(assignment), nil
}

// reorderAssignments replaces the whole carousel order in one call. The
// request must list every assigned content ID exactly once.
func (a *AssignmentController) reorderAssignments(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	displayID, apiErr := a.authorizedDisplayID(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var req packets.ReorderAssignmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := a.store.ReorderAssignments(displayID, req.ContentIDs); err != nil {
		return nil, mapWorkflowError(err, "could not reorder assignments")
	}

	redis.InvalidatePlaylistETag(ctx.Request.Context(), displayID)
	assignments, err := a.store.ListAssignments(displayID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list assignments"}
	}
	return mapAssignments(assignments), nil
}

func (a *AssignmentController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	displayID, apiErr := a.authorizedDisplayID(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	contentID, err := strconv.Atoi(ctx.Param("content_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid content_id"}
	}

	var req packets.AssignmentSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	// Partial update: start from the stored settings, overlay what the
	// request provides.
	current, apiErr := a.findAssignment(displayID, contentID)
	if apiErr != nil {
		return nil, apiErr
	}
	settings := model.AssignmentSettings{
		CarouselDuration: current.CarouselDuration,
		TransitionType:   current.TransitionType,
		ImageDisplayMode: current.ImageDisplayMode,
	}
	if req.CarouselDuration != nil {
		settings.CarouselDuration = *req.CarouselDuration
	}
	if req.TransitionType != nil {
		settings.TransitionType = model.TransitionType(*req.TransitionType)
	}
	if req.ImageDisplayMode != nil {
		settings.ImageDisplayMode = model.ImageDisplayMode(*req.ImageDisplayMode)
	}

	assignment, err := a.store.UpdateAssignmentSettings(displayID, contentID, settings)
	if err != nil {
		return nil, mapWorkflowError(err, "could not update assignment")
	}

	redis.InvalidatePlaylistETag(ctx.Request.Context(), displayID)
	return packets.MapAssignment(assignment), nil
}

func (a *AssignmentController) unassignContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	displayID, apiErr := a.authorizedDisplayID(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	contentID, err := strconv.Atoi(ctx.Param("content_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid content_id"}
	}

	if err := a.store.UnassignContent(displayID, contentID); err != nil {
		return nil, mapWorkflowError(err, "could not unassign content")
	}

	redis.InvalidatePlaylistETag(ctx.Request.Context(), displayID)
	return nil, nil
}

func (a *AssignmentController) findAssignment(displayID, contentID int) (model.Assignment, *api.APIError) {
	assignments, err := a.store.ListAssignments(displayID)
	if err != nil {
		return model.Assignment{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list assignments"}
	}
	for _, x := range assignments {
		if x.ContentID == contentID {
			return x, nil
		}
	}
	return model.Assignment{}, &api.APIError{Code: http.StatusNotFound, Message: "assignment not found"}
}

func mapAssignments(assignments []model.Assignment) []packets.AssignmentResponse {
	out := make([]packets.AssignmentResponse, 0, len(assignments))
	for _, x := range assignments {
		out = append(out, packets.MapAssignment(x))
	}
	return out
}
