package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/climbhub/internal/errors"
)

type commentRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	var in commentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	c, err := h.api.AddComment(r.Context(), chi.URLParam(r, "videoId"), in.UserID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.api.ListComments(r.Context(), chi.URLParam(r, "videoId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	var in likeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	res, err := h.api.ToggleCommentLike(r.Context(), chi.URLParam(r, "commentId"), in.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newLikeResponse("Comment", res))
}
