package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	"github.com/pribylovaa/climbhub/internal/models"
)

type uploadImageResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// UploadImage — multipart с файлом image.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	file, body, err := formFile(r, "image")
	defer cleanupMultipart(r, body)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	u, err := h.api.UploadUserImage(r.Context(), chi.URLParam(r, "userId"), file)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadImageResponse{Message: "Profile image uploaded successfully", User: u})
}
