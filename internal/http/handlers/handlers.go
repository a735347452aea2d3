// handlers — REST-хендлеры climbhub поверх сервисного слоя.
package handlers

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pribylovaa/climbhub/internal/feed"
	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/service"
)

// API — операции сервисного слоя, которые вызывают хендлеры.
// Реализуется *service.Service.
type API interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	ValidateToken(ctx context.Context, accessToken string) (*service.TokenInfo, error)

	ListGyms(ctx context.Context) ([]models.Gym, error)
	Gym(ctx context.Context, id string) (*models.Gym, error)
	CreateGym(ctx context.Context, input service.CreateGymInput) (*models.Gym, error)
	UpdateGym(ctx context.Context, id string, input service.UpdateGymInput) (*models.Gym, error)
	DeleteGym(ctx context.Context, id string) error

	CreateProfile(ctx context.Context, input service.CreateProfileInput) (*models.Profile, error)
	Profile(ctx context.Context, userID string) (*models.ProfileDetails, error)
	UpdateProfile(ctx context.Context, userID string, input service.UpdateProfileInput) (*models.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
	SearchProfiles(ctx context.Context, query string) ([]models.ProfileDetails, error)

	CreateVideo(ctx context.Context, input service.CreateVideoInput) (*models.Video, error)
	Video(ctx context.Context, id string) (*models.VideoDetails, error)
	ListVideos(ctx context.Context) ([]models.VideoDetails, error)
	VideosByProfile(ctx context.Context, profileID string) ([]models.VideoDetails, error)
	VideosByGym(ctx context.Context, gymID string) ([]models.VideoDetails, error)
	UpdateVideo(ctx context.Context, id string, input service.UpdateVideoInput) (*models.Video, error)
	DeleteVideo(ctx context.Context, id string) error
	ToggleVideoLike(ctx context.Context, videoID, userID string) (*models.LikeResult, error)
	Feed(ctx context.Context, userID string) (*feed.Feed, error)

	AddComment(ctx context.Context, videoID, userID, text string) (*models.Comment, error)
	ListComments(ctx context.Context, videoID string) ([]models.CommentDetails, error)
	ToggleCommentLike(ctx context.Context, commentID, userID string) (*models.LikeResult, error)

	UploadUserImage(ctx context.Context, userID string, file *service.FileInput) (*models.User, error)
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	api API
	// maxUploadBytes — предел тела multipart-запроса целиком.
	maxUploadBytes int64
}

// New создаёт хендлеры. maxUploadBytes <= 0 снимает предел тела.
func New(api API, maxUploadBytes int64) *Handlers {
	return &Handlers{api: api, maxUploadBytes: maxUploadBytes}
}

// messageResponse — ответ операций без тела результата.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: неизвестные поля запрещены.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
