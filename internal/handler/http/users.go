package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/models"
)

// getMe returns the stored record of the caller. In trust-claims mode the
// principal only carries id and role, so the record is always read.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOf(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), principal.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOf(w, r)
	if !ok {
		return
	}
	req, ok := payloadOf[models.UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), principal.ID, *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, user, http.StatusOK)
}

func (h *Handler) changeMyPassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOf(w, r)
	if !ok {
		return
	}
	req, ok := payloadOf[models.ChangePasswordRequest](w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), principal.ID, *req); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, messageBody{Message: "Password has been changed"}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	req, ok := payloadOf[models.CreateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	req, ok := payloadOf[models.UpdateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, user, http.StatusOK)
}
