// service содержит бизнес-логику climbhub:
//   - регистрация, вход и проверка access-токенов;
//   - каталог скалодромов, профилей, роликов и комментариев;
//   - сборка персональной ленты и загрузка файлов в объектное хранилище.
//
// Service не хранит состояние запроса и безопасен для конкурентного
// использования при потокобезопасных хранилищах.
// Ошибки хранилищ маппятся в ошибки пакета, транспорт переводит их в HTTP-статусы.
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/climbhub/internal/config"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/pribylovaa/climbhub/internal/validation"
)

var (
	// ErrInvalidArgument — некорректные входные данные. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена. HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — дубликат (email, второй профиль пользователя). HTTP 409.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — операция нарушает ссылки между сущностями. HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials — неверная пара email/пароль. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен некорректен по формату или подписи. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")
	// ErrUpstream — сбой объектного хранилища. HTTP 500.
	ErrUpstream = errors.New("upstream failure")
	// ErrInternal — внутренняя ошибка (сбой документного хранилища). HTTP 500.
	ErrInternal = errors.New("internal")
)

// ValidationError — ошибка входных данных с сообщением для клиента.
// errors.Is(err, ErrInvalidArgument) для неё истинно.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// Service описывает бизнес-логику climbhub.
type Service struct {
	cfg     *config.Config
	storage storage.Storage
	objects storage.Objects
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, objects storage.Objects, cfg *config.Config) *Service {
	return &Service{
		cfg:     cfg,
		storage: storage,
		objects: objects,
	}
}

// invalid оборачивает сообщение для клиента в *ValidationError.
func invalid(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w", op, &ValidationError{Msg: fmt.Sprintf(format, args...)})
}

// checkInput прогоняет структуру через теги validate.
func checkInput(op string, in any) error {
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%s: %w", op, &ValidationError{Msg: err.Error()})
	}

	return nil
}

// mapStorageErr переводит ошибку хранилища в ошибку сервиса и логирует её:
// ErrNotFound — Warn, ErrAlreadyExists — Warn, прочее — Error + ErrInternal.
func mapStorageErr(lg *slog.Logger, op, call, notFoundMsg string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn(notFoundMsg)

		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		lg.Warn("already exists")

		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case errors.Is(err, storage.ErrInvalidArgument):
		lg.Warn("invalid argument", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	default:
		lg.Error("storage error on "+call, "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
