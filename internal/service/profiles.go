package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateProfileInput — данные нового профиля. Ссылки — hex ObjectID.
type CreateProfileInput struct {
	UserID          string            `json:"user" validate:"required,objectid"`
	SkillLevel      models.SkillLevel `json:"skillLevel"`
	PreferredStyles []string          `json:"preferredStyles" validate:"max=50,dive,max=100"`
	Gyms            []string          `json:"gyms" validate:"dive,objectid"`
	SavedVideos     []string          `json:"savedVideos" validate:"dive,objectid"`
	UploadedVideos  []string          `json:"uploadedVideos" validate:"dive,objectid"`
}

// UpdateProfileInput — частичное обновление профиля: nil-поля не меняются.
type UpdateProfileInput struct {
	SkillLevel      *models.SkillLevel `json:"skillLevel"`
	PreferredStyles *[]string          `json:"preferredStyles" validate:"omitempty,max=50,dive,max=100"`
	Gyms            *[]string          `json:"gyms" validate:"omitempty,dive,objectid"`
	SavedVideos     *[]string          `json:"savedVideos" validate:"omitempty,dive,objectid"`
	UploadedVideos  *[]string          `json:"uploadedVideos" validate:"omitempty,dive,objectid"`
}

// CreateProfile создаёт профиль существующего пользователя.
//
// Поведение:
//   - пользователь не найден — ErrNotFound;
//   - второй профиль того же пользователя — ErrAlreadyExists;
//   - skillLevel: пусто, beginner, intermediate или advanced.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (*models.Profile, error) {
	const op = "service/profiles/CreateProfile"

	lg := log.From(ctx).With("op", op, "user_id", input.UserID)

	if err := checkInput(op, input); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, err
	}

	if !input.SkillLevel.Valid() {
		lg.Warn("invalid argument: skill level", "skill_level", input.SkillLevel)

		return nil, invalid(op, "skillLevel must be one of: %s %s %s",
			models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced)
	}

	if _, err := s.storage.UserByID(ctx, input.UserID); err != nil {
		return nil, mapStorageErr(lg, op, "UserByID", "user not found", err)
	}

	userID, _ := primitive.ObjectIDFromHex(input.UserID)

	profile, err := s.storage.CreateProfile(ctx, models.Profile{
		User:            userID,
		SkillLevel:      input.SkillLevel,
		PreferredStyles: trimAll(input.PreferredStyles),
		Gyms:            mustObjectIDs(input.Gyms),
		SavedVideos:     mustObjectIDs(input.SavedVideos),
		UploadedVideos:  mustObjectIDs(input.UploadedVideos),
	})
	if err != nil {
		return nil, mapStorageErr(lg, op, "CreateProfile", "user not found", err)
	}

	lg.Info("profile_created", "profile_id", profile.ID.Hex())

	return profile, nil
}

// Profile возвращает профиль пользователя с подтянутыми связями.
func (s *Service) Profile(ctx context.Context, userID string) (*models.ProfileDetails, error) {
	const op = "service/profiles/Profile"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	profile, err := s.storage.ProfileDetailsByUser(ctx, userID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ProfileDetailsByUser", "profile not found", err)
	}

	return profile, nil
}

// UpdateProfile частично обновляет профиль пользователя.
func (s *Service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.Profile, error) {
	const op = "service/profiles/UpdateProfile"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if err := checkInput(op, input); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, err
	}

	if input.SkillLevel != nil && !input.SkillLevel.Valid() {
		lg.Warn("invalid argument: skill level", "skill_level", *input.SkillLevel)

		return nil, invalid(op, "skillLevel must be one of: %s %s %s",
			models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced)
	}

	update := models.ProfileUpdate{SkillLevel: input.SkillLevel}
	if input.PreferredStyles != nil {
		styles := trimAll(*input.PreferredStyles)
		update.PreferredStyles = &styles
	}
	update.Gyms = optionalObjectIDs(input.Gyms)
	update.SavedVideos = optionalObjectIDs(input.SavedVideos)
	update.UploadedVideos = optionalObjectIDs(input.UploadedVideos)

	profile, err := s.storage.UpdateProfileByUser(ctx, userID, update)
	if err != nil {
		return nil, mapStorageErr(lg, op, "UpdateProfileByUser", "profile not found", err)
	}

	return profile, nil
}

// DeleteProfile удаляет профиль пользователя. Ролики и комментарии остаются.
func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	const op = "service/profiles/DeleteProfile"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if err := s.storage.DeleteProfileByUser(ctx, userID); err != nil {
		return mapStorageErr(lg, op, "DeleteProfileByUser", "profile not found", err)
	}

	lg.Info("profile_deleted")

	return nil
}

// SearchProfiles ищет профили по подстроке имени пользователя или уровня.
// Пустой запрос — пустой результат без обращения к хранилищу.
func (s *Service) SearchProfiles(ctx context.Context, query string) ([]models.ProfileDetails, error) {
	const op = "service/profiles/SearchProfiles"

	query = strings.TrimSpace(query)
	if query == "" {
		return []models.ProfileDetails{}, nil
	}

	profiles, err := s.storage.SearchProfiles(ctx, query)
	if err != nil {
		log.From(ctx).Error("storage error on SearchProfiles", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return profiles, nil
}

// mustObjectIDs переводит заранее провалидированные hex-строки в ObjectID.
func mustObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		out = append(out, oid)
	}

	return out
}

func optionalObjectIDs(ids *[]string) *[]primitive.ObjectID {
	if ids == nil {
		return nil
	}

	out := mustObjectIDs(*ids)

	return &out
}

// trimAll обрезает пробелы и выкидывает пустые строки.
func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
