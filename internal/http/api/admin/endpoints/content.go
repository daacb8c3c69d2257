package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/api"
	"github.com/masjid-suite/hub/internal/http/api/admin/packets"
	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/storage"
	"github.com/masjid-suite/hub/internal/workflow"
)

type ContentController struct {
	store   db.Store
	storage storage.Storage
}

// ContentModule mounts content submission and approval endpoints.
func ContentModule(store db.Store, storageSystem storage.Storage) api.Module {
	ctl := &ContentController{store: store, storage: storageSystem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/content", ctl.listContent)
		c.POST("/content", ctl.submitContent)
		c.GET("/content/:id", ctl.getContent)
		c.POST("/content/media", ctl.uploadMedia)
		c.POST("/content/:id/approve", ctl.approveContent)
		c.POST("/content/:id/reject", ctl.rejectContent)
	})
}

// listContent returns content scoped by masjid and status. Overdue active
// rows are swept to expired first so admins never see stale playlists.
func (c *ContentController) listContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if _, err := c.store.ExpireOverdueContent(time.Now()); err != nil {
		log.Warn().Err(err).Msg("expiry sweep failed, listing anyway")
	}

	filters := db.ContentFilters{}
	if v := ctx.Query("masjid_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid masjid_id"}
		}
		filters.MasjidID = id
	}
	if v := ctx.Query("status"); v != "" {
		status := model.ContentStatus(v)
		if !status.Valid() {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid status"}
		}
		filters.Status = status
	}
	if ctx.Query("mine") == "true" {
		filters.SubmittedBy = user.ID
	}

	all, err := c.store.ListContent(filters)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list content"}
	}

	out := make([]packets.ContentResponse, 0, len(all))
	for _, x := range all {
		out = append(out, packets.MapContent(x))
	}
	return out, nil
}

func (c *ContentController) getContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	content, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, mapWorkflowError(err, "could not fetch content")
	}
	return packets.MapContent(content), nil
}

// submitContent creates a pending row; any signed-in user may submit.
// A resubmission must reference a rejected item the same user submitted.
func (c *ContentController) submitContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.SubmitContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "start_date must be YYYY-MM-DD"}
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "end_date must be YYYY-MM-DD"}
	}

	submission := workflow.Submission{
		Title:     req.Title,
		Type:      model.ContentType(req.Type),
		URL:       req.URL,
		Duration:  req.Duration,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := workflow.CheckSubmission(submission); err != nil {
		return nil, mapWorkflowError(err, "invalid submission")
	}

	if _, err := c.store.GetMasjidByID(req.MasjidID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "masjid not found"}
	}

	if req.ResubmissionOf != nil {
		original, err := c.store.GetContentByID(*req.ResubmissionOf)
		if err != nil {
			return nil, mapWorkflowError(err, "could not load original content")
		}
		if original.Status != model.ContentStatusRejected {
			return nil, mapWorkflowError(&workflow.InvalidStateError{Op: "resubmit", Status: original.Status}, "")
		}
		if original.SubmittedBy != user.ID {
			return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
		}
	}

	content, err := c.store.CreateContent(model.Content{
		MasjidID:       req.MasjidID,
		Title:          req.Title,
		Description:    req.Description,
		Type:           model.ContentType(req.Type),
		URL:            req.URL,
		ThumbnailURL:   req.ThumbnailURL,
		Duration:       req.Duration,
		StartDate:      startDate,
		EndDate:        endDate,
		SubmittedBy:    user.ID,
		ResubmissionOf: req.ResubmissionOf,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create content"}
	}

	return packets.MapContent(content), nil
}

// uploadMedia stores an uploaded file and returns the URL a submission
// should reference.
func (c *ContentController) uploadMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file"}
	}

	url, err := c.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("media upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	return packets.MediaUploadResponse{URL: url}, nil
}

func (c *ContentController) approveContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var req packets.ApproveContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	content, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, mapWorkflowError(err, "could not fetch content")
	}
	if apiErr := requireMasjidAdmin(c.store, user, content.MasjidID); apiErr != nil {
		return nil, apiErr
	}
	if err := workflow.CheckDecision("approve", content.Status, ""); err != nil {
		return nil, mapWorkflowError(err, "")
	}

	approved, err := c.store.ApproveContent(id, user.ID, req.Notes)
	if err != nil {
		return nil, mapWorkflowError(err, "could not approve content")
	}

	log.Info().Int("content_id", id).Int("approver", user.ID).Msg("content approved")
	return packets.MapContent(approved), nil
}

func (c *ContentController) rejectContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var req packets.RejectContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	content, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, mapWorkflowError(err, "could not fetch content")
	}
	if apiErr := requireMasjidAdmin(c.store, user, content.MasjidID); apiErr != nil {
		return nil, apiErr
	}
	if err := workflow.CheckDecision("reject", content.Status, req.Reason); err != nil {
		return nil, mapWorkflowError(err, "")
	}

	rejected, err := c.store.RejectContent(id, user.ID, req.Reason, req.Notes)
	if err != nil {
		return nil, mapWorkflowError(err, "could not reject content")
	}

	log.Info().Int("content_id", id).Int("approver", user.ID).Msg("content rejected")
	return packets.MapContent(rejected), nil
}
