package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
)

const (
	msgValidationFailed = "Validation failed"
	msgAccessDenied     = "Access denied. Insufficient permissions."
	msgInternalError    = "Internal server error"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrEmailTaken:              http.StatusConflict,
	service.ErrCannotSelfRegisterAdmin: http.StatusForbidden,
	service.ErrInvalidResetToken:       http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrNothingToUpdate:         http.StatusBadRequest,
	service.ErrCategoryIsOwnParent:     http.StatusBadRequest,
	service.ErrParentCategoryNotFound:  http.StatusBadRequest,
	service.ErrSlugTaken:               http.StatusConflict,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrCategoryNotFound:        http.StatusNotFound,
	service.ErrAttributeNotFound:       http.StatusNotFound,

	models.ErrUnknownRole:   http.StatusBadRequest,
	models.ErrUnknownStatus: http.StatusBadRequest,

	ErrInvalidPathID: http.StatusBadRequest,
}

// gateMessages picks the client message for a rejected credential or
// identity. The first matching reason wins.
var gateMessages = []struct {
	reason  error
	message string
}{
	{service.ErrNoTokenProvided, "No token provided"},
	{service.ErrTokenIsExpired, "Token has expired"},
	{service.ErrAccountSuspended, "Account is suspended"},
	{service.ErrAccountInactive, "Account is deactivated"},
	{service.ErrTokenIsInvalid, "Invalid token"},
	{service.ErrSubjectNotFound, "Invalid token"},
}

// statusFromError maps an error of any layer to an HTTP status code.
// Gate kinds are checked first so a wrapped reason never downgrades a 401
// or 403.
func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client for err. Internal
// details are never exposed.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return msgInternalError
	}

	if errors.Is(err, service.ErrForbidden) || errors.Is(err, service.ErrUnauthenticated) {
		for _, m := range gateMessages {
			if errors.Is(err, m.reason) {
				return m.message
			}
		}
		if errors.Is(err, service.ErrForbidden) {
			return msgAccessDenied
		}
		return "Authentication required"
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

type validationErrorBody struct {
	Error   string             `json:"error"`
	Details []validators.Issue `json:"details"`
}

// writeError writes the response for err and logs it. Server-side failures
// are logged at error level with their full chain.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if vErr, ok := validators.AsValidationError(err); ok {
		log.Debug().Str("schema", vErr.Schema).Int("issues", len(vErr.Issues)).Msg("request rejected by validation")
		_, _ = utils.WriteJSON(w, validationErrorBody{Error: msgValidationFailed, Details: vErr.Issues}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
