package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgNotAuthenticated}},

	{validators.ErrMissingRequiredFields, errorResponse{http.StatusBadRequest, app.MsgMissingRequiredFields}},
	{validators.ErrInvalidEnvelope, errorResponse{http.StatusBadRequest, app.MsgMissingRequiredFields}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgMissingRequiredFields}},
	{store.ErrInvalidRecord, errorResponse{http.StatusBadRequest, app.MsgMissingRequiredFields}},

	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgItemNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError answers with the status mapped from err and a fixed message;
// internal error text never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteMessage(w, resp.message, resp.status)
}
