package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/internal/validators"
)

const maxPayloadBytes = 1 << 20

// validate runs the request body through the named schema and attaches the
// normalized payload to the request context. Unknown schema names panic at
// route registration.
func (h *Handler) validate(schemaName string) func(http.Handler) http.Handler {
	schema := validators.MustLookup(schemaName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromRequest(r)

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					log.Debug().Err(err).Str("stage", stageValidating).Msg("payload too large")
					utils.WriteError(w, "Payload too large", http.StatusRequestEntityTooLarge)
					return
				}
				log.Err(err).Str("stage", stageValidating).Msg("failed to read request body")
				utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
				return
			}

			payload, err := h.validator.Validate(ctx, schema, raw)
			if err != nil {
				writeError(w, r, err)
				return
			}

			log.Debug().Str("stage", stageValidating).Str("schema", schema.Name()).Msg("payload accepted")
			next.ServeHTTP(w, r.WithContext(utils.WithPayload(ctx, payload)))
		})
	}
}
