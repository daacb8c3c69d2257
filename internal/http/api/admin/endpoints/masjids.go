package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/api"
	"github.com/masjid-suite/hub/internal/http/api/admin/packets"
	"github.com/masjid-suite/hub/internal/model"
)

type MasjidController struct {
	store db.Store
}

// MasjidModule mounts the masjid registry endpoints.
func MasjidModule(store db.Store) api.Module {
	ctl := &MasjidController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/masjids", ctl.listMasjids)
		c.POST("/masjids", ctl.createMasjid)
		c.GET("/masjids/:id", ctl.getMasjid)
		c.PUT("/masjids/:id", ctl.updateMasjid)
		c.POST("/masjids/:id/admins", ctl.addAdmin)
	})
}

func (m *MasjidController) listMasjids(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := m.store.ListMasjids()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list masjids"}
	}
	out := make([]packets.MasjidResponse, 0, len(all))
	for _, x := range all {
		out = append(out, packets.MapMasjid(x))
	}
	return out, nil
}

// createMasjid registers a masjid; the creator becomes its first admin.
func (m *MasjidController) createMasjid(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreateMasjidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !model.ValidJakimZone(req.JakimZone) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid JAKIM zone code"}
	}
	if req.Postcode != nil && !model.ValidMalaysianPostcode(*req.Postcode) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid postcode"}
	}

	masjid, err := m.store.CreateMasjid(model.Masjid{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		AddressLine:        req.AddressLine,
		City:               req.City,
		State:              req.State,
		Postcode:           req.Postcode,
		JakimZone:          req.JakimZone,
		CreatedBy:          user.ID,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create masjid"}
	}

	if err := m.store.AddMasjidAdmin(masjid.ID, user.ID); err != nil {
		log.Error().Err(err).Int("masjid_id", masjid.ID).Msg("could not grant creator admin role")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not grant admin role"}
	}

	return packets.MapMasjid(masjid), nil
}

func (m *MasjidController) getMasjid(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	masjid, err := m.store.GetMasjidByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return packets.MapMasjid(masjid), nil
}

func (m *MasjidController) updateMasjid(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if apiErr := requireMasjidAdmin(m.store, user, id); apiErr != nil {
		return nil, apiErr
	}

	var req packets.UpdateMasjidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if req.JakimZone != nil && !model.ValidJakimZone(*req.JakimZone) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid JAKIM zone code"}
	}

	if err := m.store.UpdateMasjid(id, req.Name, req.JakimZone); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update masjid"}
	}

	updated, err := m.store.GetMasjidByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch masjid"}
	}
	return packets.MapMasjid(updated), nil
}

func (m *MasjidController) addAdmin(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if apiErr := requireMasjidAdmin(m.store, user, id); apiErr != nil {
		return nil, apiErr
	}

	var req packets.AddMasjidAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := m.store.GetUserByID(req.UserID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "user not found"}
	}
	if err := m.store.AddMasjidAdmin(id, req.UserID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not add admin"}
	}
	return nil, nil
}

// requireMasjidAdmin is the access-control gate in front of every
// approval, display, and assignment mutation. Store operations trust the
// caller identity handed to them; this is where it is earned.
func requireMasjidAdmin(store db.Store, user *model.User, masjidID int) *api.APIError {
	isAdmin, err := store.IsMasjidAdmin(user.ID, masjidID)
	if err != nil {
		return &api.APIError{Code: http.StatusInternalServerError, Message: "could not check permissions"}
	}
	if !isAdmin {
		log.Warn().Int("user", user.ID).Int("masjid", masjidID).Msg("forbidden: not a masjid admin")
		return &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return nil
}
