package endpoints

import (
	"errors"
	"net/http"

	"github.com/masjid-suite/hub/internal/http/api"
	"github.com/masjid-suite/hub/internal/workflow"
)

// mapWorkflowError translates workflow errors into HTTP responses so every
// controller reports the same taxonomy: validation 400, missing 404,
// illegal-state and duplicates 409, dispatch timeout 504, transport 502.
func mapWorkflowError(err error, fallback string) *api.APIError {
	var validationErr *workflow.ValidationError
	if errors.As(err, &validationErr) {
		return &api.APIError{Code: http.StatusBadRequest, Message: validationErr.Error()}
	}
	var stateErr *workflow.InvalidStateError
	if errors.As(err, &stateErr) {
		return &api.APIError{Code: http.StatusConflict, Message: stateErr.Error()}
	}
	var transportErr *workflow.TransportError
	if errors.As(err, &transportErr) {
		return &api.APIError{Code: http.StatusBadGateway, Message: transportErr.Error()}
	}
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		return &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	case errors.Is(err, workflow.ErrDuplicate):
		return &api.APIError{Code: http.StatusConflict, Message: "already assigned to this display"}
	case errors.Is(err, workflow.ErrCommandTimeout):
		return &api.APIError{Code: http.StatusGatewayTimeout, Message: "command dispatch timed out"}
	}
	return &api.APIError{Code: http.StatusInternalServerError, Message: fallback}
}
