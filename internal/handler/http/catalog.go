package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOf(w, r)
	if !ok {
		return
	}
	req, ok := payloadOf[models.CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), principal.ID, *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, category, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "categoryID")
	if !ok {
		return
	}
	req, ok := payloadOf[models.UpdateCategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), id, *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, category, http.StatusOK)
}

func (h *Handler) createAttribute(w http.ResponseWriter, r *http.Request) {
	req, ok := payloadOf[models.CreateAttributeRequest](w, r)
	if !ok {
		return
	}

	attribute, err := h.services.AttributeService.CreateAttribute(r.Context(), *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, attribute, http.StatusCreated)
}

func (h *Handler) updateAttribute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "attributeID")
	if !ok {
		return
	}
	req, ok := payloadOf[models.UpdateAttributeRequest](w, r)
	if !ok {
		return
	}

	attribute, err := h.services.AttributeService.UpdateAttribute(r.Context(), id, *req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, attribute, http.StatusOK)
}
