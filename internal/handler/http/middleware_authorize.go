package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/access"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

// authorize admits the request only when the principal attached by
// authenticate passes gate.
func (h *Handler) authorize(gate access.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			var principal *models.Principal
			if p, ok := utils.PrincipalFromContext(r.Context()); ok {
				principal = &p
			}

			if err := gate.Check(principal); err != nil {
				log.Debug().Err(err).Str("stage", stageAuthorizing).
					Strs("allowed_roles", gate.Policy().Strings()).
					Msg("access denied")
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
