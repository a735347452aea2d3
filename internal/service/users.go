package service

import (
	"context"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/pkg/log"
)

// UploadUserImage загружает изображение профиля и сохраняет его URL в пользователе.
//
// Порядок: проверка пользователя -> проверка файла -> загрузка -> запись URL.
// Если запись URL не удалась, загруженный объект удаляется.
func (s *Service) UploadUserImage(ctx context.Context, userID string, file *FileInput) (*models.User, error) {
	const op = "service/users/UploadUserImage"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("invalid argument: empty user_id")

		return nil, invalid(op, "userId is required")
	}

	if _, err := s.storage.UserByID(ctx, userID); err != nil {
		return nil, mapStorageErr(lg, op, "UserByID", "user not found", err)
	}

	rule := s.imageRule()
	contentType, err := checkFile(op, file, rule)
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, err
	}

	obj, err := s.upload(ctx, op, file, contentType, rule)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.SetUserImage(ctx, userID, obj.URL)
	if err != nil {
		s.removeObject(ctx, op, obj.Key)

		return nil, mapStorageErr(lg, op, "SetUserImage", "user not found", err)
	}

	lg.Info("user_image_uploaded", "key", obj.Key)

	return user, nil
}
