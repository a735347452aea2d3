package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/pribylovaa/climbhub/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateVideoInput — метаданные и файл нового ролика.
type CreateVideoInput struct {
	Description     string               `json:"description" validate:"required,max=2000"`
	GradingSystem   models.GradingSystem `json:"gradingSystem" validate:"required"`
	DifficultyLevel string               `json:"difficultyLevel" validate:"required"`
	GymID           string               `json:"gym" validate:"required,objectid"`
	ProfileID       string               `json:"profile" validate:"required,objectid"`
	File            *FileInput           `json:"videoFile" validate:"-"`
}

// UpdateVideoInput — частичное обновление ролика: nil-поля не меняются.
type UpdateVideoInput struct {
	Description     *string               `json:"description" validate:"omitempty,max=2000"`
	GradingSystem   *models.GradingSystem `json:"gradingSystem"`
	DifficultyLevel *string               `json:"difficultyLevel"`
	GymID           *string               `json:"gym" validate:"omitempty,objectid"`
}

// ValidateDifficulty проверяет, что уровень входит в словарь системы оценки.
func ValidateDifficulty(system models.GradingSystem, level string) error {
	if !system.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("grading system %q is not supported", system)}
	}

	if !system.Allows(level) {
		return &ValidationError{Msg: fmt.Sprintf("difficulty level %q is not valid for grading system %q", level, system)}
	}

	return nil
}

// CreateVideo проверяет ввод, загружает файл и создаёт документ ролика.
//
// Порядок:
//   - поля и пара (gradingSystem, difficultyLevel);
//   - файл: наличие, размер, тип содержимого;
//   - существование скалодрома и профиля;
//   - загрузка файла (сбой — ErrUpstream, документ не создаётся);
//   - вставка документа (сбой — загруженный объект удаляется).
func (s *Service) CreateVideo(ctx context.Context, input CreateVideoInput) (*models.Video, error) {
	const op = "service/videos/CreateVideo"

	lg := log.From(ctx).With("op", op, "profile_id", input.ProfileID, "gym_id", input.GymID)

	input.Description = strings.TrimSpace(input.Description)
	input.DifficultyLevel = strings.TrimSpace(input.DifficultyLevel)

	if err := checkInput(op, input); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, err
	}

	if err := ValidateDifficulty(input.GradingSystem, input.DifficultyLevel); err != nil {
		lg.Warn("invalid argument: difficulty", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rule := s.videoRule()
	contentType, err := checkFile(op, input.File, rule)
	if err != nil {
		lg.Warn("invalid argument: file", "err", err)

		return nil, err
	}

	gym, err := s.storage.GymByID(ctx, input.GymID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "GymByID", "gym not found", err)
	}

	profile, err := s.storage.ProfileByID(ctx, input.ProfileID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ProfileByID", "profile not found", err)
	}

	obj, err := s.upload(ctx, op, input.File, contentType, rule)
	if err != nil {
		return nil, err
	}

	video, err := s.storage.CreateVideo(ctx, models.Video{
		Description:     input.Description,
		GradingSystem:   input.GradingSystem,
		DifficultyLevel: input.DifficultyLevel,
		Gym:             gym.ID,
		Profile:         profile.ID,
		VideoURL:        obj.URL,
		ObjectKey:       obj.Key,
	})
	if err != nil {
		lg.Error("storage error on CreateVideo", "err", err)
		s.removeObject(ctx, op, obj.Key)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("video_created", "video_id", video.ID.Hex(), "key", obj.Key)

	return video, nil
}

// Video возвращает ролик с автором и скалодромом.
func (s *Service) Video(ctx context.Context, id string) (*models.VideoDetails, error) {
	const op = "service/videos/Video"

	lg := log.From(ctx).With("op", op, "video_id", id)

	video, err := s.storage.VideoByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "VideoByID", "video not found", err)
	}

	return video, nil
}

// ListVideos возвращает все ролики, новые первыми.
func (s *Service) ListVideos(ctx context.Context) ([]models.VideoDetails, error) {
	const op = "service/videos/ListVideos"

	lg := log.From(ctx).With("op", op)

	videos, err := s.storage.ListVideos(ctx, storage.VideoFilter{})
	if err != nil {
		return nil, mapStorageErr(lg, op, "ListVideos", "videos not found", err)
	}

	return videos, nil
}

// VideosByProfile возвращает ролики автора; пустой список допустим.
func (s *Service) VideosByProfile(ctx context.Context, profileID string) ([]models.VideoDetails, error) {
	const op = "service/videos/VideosByProfile"

	lg := log.From(ctx).With("op", op, "profile_id", profileID)

	if !primitive.IsValidObjectID(profileID) {
		lg.Warn("invalid argument: profile_id")

		return nil, invalid(op, "profileId must be a valid id")
	}

	videos, err := s.storage.ListVideos(ctx, storage.VideoFilter{ProfileID: profileID})
	if err != nil {
		return nil, mapStorageErr(lg, op, "ListVideos", "profile not found", err)
	}

	return videos, nil
}

// VideosByGym возвращает ролики скалодрома. Нет роликов — ErrNotFound.
func (s *Service) VideosByGym(ctx context.Context, gymID string) ([]models.VideoDetails, error) {
	const op = "service/videos/VideosByGym"

	lg := log.From(ctx).With("op", op, "gym_id", gymID)

	if !primitive.IsValidObjectID(gymID) {
		lg.Warn("invalid argument: gym_id")

		return nil, invalid(op, "gymId must be a valid id")
	}

	videos, err := s.storage.ListVideos(ctx, storage.VideoFilter{GymID: gymID})
	if err != nil {
		return nil, mapStorageErr(lg, op, "ListVideos", "gym not found", err)
	}

	if len(videos) == 0 {
		lg.Warn("no videos found for gym")

		return nil, fmt.Errorf("%s: no videos found for this gym: %w", op, ErrNotFound)
	}

	return videos, nil
}

// UpdateVideo частично обновляет ролик. Итоговая пара
// (gradingSystem, difficultyLevel) проверяется заново.
func (s *Service) UpdateVideo(ctx context.Context, id string, input UpdateVideoInput) (*models.Video, error) {
	const op = "service/videos/UpdateVideo"

	lg := log.From(ctx).With("op", op, "video_id", id)

	if err := checkInput(op, input); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, err
	}

	current, err := s.storage.VideoByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "VideoByID", "video not found", err)
	}

	update := models.VideoUpdate{}

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			lg.Warn("invalid argument: empty description")

			return nil, invalid(op, "description must not be empty")
		}
		update.Description = &desc
	}

	system, level := current.GradingSystem, current.DifficultyLevel
	if input.GradingSystem != nil {
		system = *input.GradingSystem
		update.GradingSystem = &system
	}
	if input.DifficultyLevel != nil {
		level = strings.TrimSpace(*input.DifficultyLevel)
		update.DifficultyLevel = &level
	}

	if update.GradingSystem != nil || update.DifficultyLevel != nil {
		if err := ValidateDifficulty(system, level); err != nil {
			lg.Warn("invalid argument: difficulty", "err", err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if input.GymID != nil {
		gym, err := s.storage.GymByID(ctx, *input.GymID)
		if err != nil {
			return nil, mapStorageErr(lg, op, "GymByID", "gym not found", err)
		}
		update.Gym = &gym.ID
	}

	video, err := s.storage.UpdateVideo(ctx, id, update)
	if err != nil {
		return nil, mapStorageErr(lg, op, "UpdateVideo", "video not found", err)
	}

	return video, nil
}

// DeleteVideo удаляет ролик, затем его комментарии, затем файл.
// Сбой удаления файла только логируется.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	const op = "service/videos/DeleteVideo"

	lg := log.From(ctx).With("op", op, "video_id", id)

	video, err := s.storage.DeleteVideo(ctx, id)
	if err != nil {
		return mapStorageErr(lg, op, "DeleteVideo", "video not found", err)
	}

	removed, err := s.storage.DeleteCommentsByVideo(ctx, id)
	if err != nil {
		lg.Error("storage error on DeleteCommentsByVideo", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.removeObject(ctx, op, video.ObjectKey)

	lg.Info("video_deleted", "comments_removed", removed)

	return nil
}

// ToggleVideoLike добавляет или снимает лайк пользователя.
func (s *Service) ToggleVideoLike(ctx context.Context, videoID, userID string) (*models.LikeResult, error) {
	const op = "service/videos/ToggleVideoLike"

	lg := log.From(ctx).With("op", op, "video_id", videoID, "user_id", userID)

	if err := checkLiker(op, userID); err != nil {
		lg.Warn("invalid argument: user_id")

		return nil, err
	}

	res, err := s.storage.ToggleVideoLike(ctx, videoID, userID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ToggleVideoLike", "video not found", err)
	}

	return res, nil
}

func checkLiker(op, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return invalid(op, "userId is required")
	}

	if !primitive.IsValidObjectID(userID) {
		return invalid(op, "userId must be a valid id")
	}

	return nil
}
