package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := payloadOf[models.RegisterRequest](w, r)
	if !ok {
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", resp.User.ID.String()).Str("user_role", resp.User.Role.String()).Msg("user registered")

	w.Header().Set("Authorization", "Bearer "+resp.Token.SignedString)
	respond(w, r, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := payloadOf[models.LoginRequest](w, r)
	if !ok {
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", resp.User.ID.String()).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+resp.Token.SignedString)
	respond(w, r, resp, http.StatusOK)
}

// forgotPassword answers 202 whether or not the email is registered.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	req, ok := payloadOf[models.ForgotPasswordRequest](w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), *req); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, messageBody{Message: "If the email is registered, a reset link has been sent"}, http.StatusAccepted)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	req, ok := payloadOf[models.ResetPasswordRequest](w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), *req); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, messageBody{Message: "Password has been reset"}, http.StatusOK)
}
