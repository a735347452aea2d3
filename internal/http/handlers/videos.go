package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/service"
)

type createVideoResponse struct {
	Message string        `json:"message"`
	Video   *models.Video `json:"video"`
}

type likeRequest struct {
	UserID string `json:"userId"`
}

type likeResponse struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likesCount"`
	Liked      bool   `json:"liked"`
}

func newLikeResponse(subject string, res *models.LikeResult) likeResponse {
	msg := subject + " unliked"
	if res.Liked {
		msg = subject + " liked"
	}

	return likeResponse{Message: msg, LikesCount: res.LikesCount, Liked: res.Liked}
}

// CreateVideo — multipart: поля description, gradingSystem, difficultyLevel,
// gym, profile и файл videoFile.
func (h *Handlers) CreateVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	file, body, err := formFile(r, "videoFile")
	defer cleanupMultipart(r, body)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	v, err := h.api.CreateVideo(r.Context(), service.CreateVideoInput{
		Description:     r.FormValue("description"),
		GradingSystem:   models.GradingSystem(r.FormValue("gradingSystem")),
		DifficultyLevel: r.FormValue("difficultyLevel"),
		GymID:           r.FormValue("gym"),
		ProfileID:       r.FormValue("profile"),
		File:            file,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createVideoResponse{Message: "Video uploaded successfully.", Video: v})
}

func (h *Handlers) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.api.ListVideos(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	v, err := h.api.Video(r.Context(), chi.URLParam(r, "videoId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateVideoInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	v, err := h.api.UpdateVideo(r.Context(), chi.URLParam(r, "videoId"), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.api.DeleteVideo(r.Context(), chi.URLParam(r, "videoId")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Video deleted successfully"})
}

func (h *Handlers) LikeVideo(w http.ResponseWriter, r *http.Request) {
	var in likeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	res, err := h.api.ToggleVideoLike(r.Context(), chi.URLParam(r, "videoId"), in.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newLikeResponse("Video", res))
}

func (h *Handlers) VideosByProfile(w http.ResponseWriter, r *http.Request) {
	videos, err := h.api.VideosByProfile(r.Context(), chi.URLParam(r, "profileId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

func (h *Handlers) VideosByGym(w http.ResponseWriter, r *http.Request) {
	videos, err := h.api.VideosByGym(r.Context(), chi.URLParam(r, "gymId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// Feed — лента зрителя: {preferredVideos, otherVideos}.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	f, err := h.api.Feed(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}
