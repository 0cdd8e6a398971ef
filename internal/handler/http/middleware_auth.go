package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/rs/zerolog"
)

// stage names reported in request logs
const (
	stageAuthenticating = "authenticating"
	stageAuthorizing    = "authorizing"
	stageValidating     = "validating"
)

// authenticate verifies the bearer credential of the request and resolves
// it into a principal, which is attached to the request context.
//
// Credential failures (missing, malformed, forged or expired token, subject
// gone or deactivated) are answered with 401. A suspended account is
// answered with 403. In both cases next is not called.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		claims, err := h.services.TokenService.Verify(ctx, r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Str("stage", stageAuthenticating).Msg("credential rejected")
			writeError(w, r, err)
			return
		}

		principal, err := h.services.IdentityResolver.Resolve(ctx, claims)
		if err != nil {
			log.Debug().Err(err).Str("stage", stageAuthenticating).
				Str("subject_id", claims.SubjectID.String()).
				Msg("identity not resolved")
			writeError(w, r, err)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", principal.ID.String()).Str("user_role", principal.Role.String())
		})
		l.Debug().Str("stage", stageAuthenticating).Msg("request authenticated")

		ctx = utils.WithPrincipal(l.WithContext(ctx), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
