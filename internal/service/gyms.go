package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/pkg/log"
)

// CreateGymInput — данные нового скалодрома.
type CreateGymInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Location string `json:"location" validate:"required,max=500"`
}

// UpdateGymInput — частичное обновление: nil-поля не меняются.
type UpdateGymInput struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// ListGyms возвращает все скалодромы по имени.
func (s *Service) ListGyms(ctx context.Context) ([]models.Gym, error) {
	const op = "service/gyms/ListGyms"

	gyms, err := s.storage.ListGyms(ctx)
	if err != nil {
		log.From(ctx).Error("storage error on ListGyms", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return gyms, nil
}

// Gym возвращает скалодром по id.
func (s *Service) Gym(ctx context.Context, id string) (*models.Gym, error) {
	const op = "service/gyms/Gym"

	lg := log.From(ctx).With("op", op, "gym_id", id)

	gym, err := s.storage.GymByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "GymByID", "gym not found", err)
	}

	return gym, nil
}

// CreateGym создаёт скалодром; name и location обязательны.
func (s *Service) CreateGym(ctx context.Context, input CreateGymInput) (*models.Gym, error) {
	const op = "service/gyms/CreateGym"

	lg := log.From(ctx).With("op", op)

	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)

	if err := checkInput(op, input); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, err
	}

	gym, err := s.storage.CreateGym(ctx, models.Gym{Name: input.Name, Location: input.Location})
	if err != nil {
		lg.Error("storage error on CreateGym", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("gym_created", "gym_id", gym.ID.Hex())

	return gym, nil
}

// UpdateGym применяет непустые поля. Переданное поле не может быть пустым.
func (s *Service) UpdateGym(ctx context.Context, id string, input UpdateGymInput) (*models.Gym, error) {
	const op = "service/gyms/UpdateGym"

	lg := log.From(ctx).With("op", op, "gym_id", id)

	update := models.GymUpdate{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			lg.Warn("invalid argument: empty name")

			return nil, invalid(op, "name must not be empty")
		}
		update.Name = &name
	}

	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if location == "" {
			lg.Warn("invalid argument: empty location")

			return nil, invalid(op, "location must not be empty")
		}
		update.Location = &location
	}

	gym, err := s.storage.UpdateGym(ctx, id, update)
	if err != nil {
		return nil, mapStorageErr(lg, op, "UpdateGym", "gym not found", err)
	}

	return gym, nil
}

// DeleteGym удаляет скалодром, если на него не ссылаются ролики и профили.
// Иначе — ErrConflict.
func (s *Service) DeleteGym(ctx context.Context, id string) error {
	const op = "service/gyms/DeleteGym"

	lg := log.From(ctx).With("op", op, "gym_id", id)

	if _, err := s.storage.GymByID(ctx, id); err != nil {
		return mapStorageErr(lg, op, "GymByID", "gym not found", err)
	}

	inUse, err := s.storage.GymInUse(ctx, id)
	if err != nil {
		lg.Error("storage error on GymInUse", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if inUse {
		lg.Warn("gym is referenced by videos or profiles")

		return fmt.Errorf("%s: gym is referenced by videos or profiles: %w", op, ErrConflict)
	}

	if err := s.storage.DeleteGym(ctx, id); err != nil {
		return mapStorageErr(lg, op, "DeleteGym", "gym not found", err)
	}

	lg.Info("gym_deleted")

	return nil
}
