package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type messageBody struct {
	Message string `json:"message"`
}

// payloadOf returns the payload attached by the validate middleware. When it
// is missing the response is already written and ok is false.
func payloadOf[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	payload, ok := utils.PayloadFromContext[T](r.Context())
	if !ok {
		writeError(w, r, fmt.Errorf("%w: want %T", ErrNoPayload, payload))
		return nil, false
	}
	return payload, true
}

// principalOf returns the principal attached by the authenticate middleware.
func principalOf(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrNoPrincipal))
		return models.Principal{}, false
	}
	return principal, true
}

// pathID parses the UUID route parameter name.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %s: %w", ErrInvalidPathID, name, err))
		return uuid.Nil, false
	}
	return id, true
}

func respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
