package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	"github.com/pribylovaa/climbhub/internal/service"
)

func (h *Handlers) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var in service.CreateProfileInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	p, err := h.api.CreateProfile(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// GetProfile — {id} здесь id пользователя, а не профиля.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.api.Profile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateProfileInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	p, err := h.api.UpdateProfile(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.api.DeleteProfile(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Profile deleted successfully"})
}

// SearchProfiles — GET /profile/search?q=...; пустой q даёт пустой список.
func (h *Handlers) SearchProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.api.SearchProfiles(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}
