package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	"github.com/pribylovaa/climbhub/internal/service"
)

func (h *Handlers) ListGyms(w http.ResponseWriter, r *http.Request) {
	gyms, err := h.api.ListGyms(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gyms)
}

func (h *Handlers) GetGym(w http.ResponseWriter, r *http.Request) {
	gym, err := h.api.Gym(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gym)
}

func (h *Handlers) CreateGym(w http.ResponseWriter, r *http.Request) {
	var in service.CreateGymInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	gym, err := h.api.CreateGym(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, gym)
}

func (h *Handlers) UpdateGym(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateGymInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	gym, err := h.api.UpdateGym(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gym)
}

func (h *Handlers) DeleteGym(w http.ResponseWriter, r *http.Request) {
	if err := h.api.DeleteGym(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Gym deleted successfully"})
}
