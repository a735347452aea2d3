package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/pribylovaa/climbhub/pkg/log"
	"github.com/pribylovaa/climbhub/pkg/redact"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput — данные регистрации. Пустая роль означает climber.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// AuthResult — результат регистрации/входа.
type AuthResult struct {
	UserID          string       `json:"user_id"`
	AccessToken     string       `json:"access_token"`
	AccessExpiresAt time.Time    `json:"access_expires_at"`
	User            *models.User `json:"user"`
}

// TokenInfo — данные валидного access-токена.
type TokenInfo struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Register регистрирует пользователя и выпускает access-токен.
//
// Валидация:
//   - name непустой после TrimSpace;
//   - email нормализуется (trim + lower) и проходит net/mail;
//   - пароль: не короче 8 символов, строчная, заглавная, цифра и спецсимвол;
//   - роль: climber или manager.
//
// Занятый email — ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	const op = "service/auth/Register"

	lg := log.From(ctx).With("op", op, "email", redact.Email(input.Email))

	name := strings.TrimSpace(input.Name)
	if name == "" {
		lg.Warn("invalid argument: empty name")

		return nil, invalid(op, "name is required")
	}

	email, err := validateEmail(input.Email)
	if err != nil {
		lg.Warn("invalid argument: email")

		return nil, invalid(op, "email must be a valid email address")
	}

	if err := validatePassword(input.Password); err != nil {
		lg.Warn("invalid argument: weak password")

		return nil, invalid(op, "password must be at least 8 characters and contain lower, upper, digit and special characters")
	}

	role := input.Role
	if role == "" {
		role = models.RoleClimber
	}
	if !role.Valid() {
		lg.Warn("invalid argument: role", "role", role)

		return nil, invalid(op, "role must be one of: %s %s", models.RoleClimber, models.RoleManager)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		lg.Error("password hash failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	user, err := s.storage.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("email already taken")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		default:
			lg.Error("storage error on CreateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("user_registered", "user_id", user.ID.Hex())

	return s.issueAccess(ctx, op, user)
}

// Login выполняет вход по email и паролю.
// Неизвестный email и неверный пароль неразличимы: ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "service/auth/Login"

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	normEmail, err := validateEmail(email)
	if err != nil || password == "" {
		lg.Warn("invalid credentials: malformed input")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("invalid credentials: unknown email")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		default:
			lg.Error("storage error on UserByEmail", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("invalid credentials: password mismatch")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return s.issueAccess(ctx, op, user)
}

// ValidateToken проверяет access-токен и возвращает его владельца.
func (s *Service) ValidateToken(ctx context.Context, accessToken string) (*TokenInfo, error) {
	const op = "service/auth/ValidateToken"

	uid, email, err := s.validateAccessToken(strings.TrimSpace(accessToken))
	if err != nil {
		log.From(ctx).Warn("token rejected", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &TokenInfo{Valid: true, UserID: uid, Email: email}, nil
}

// issueAccess выпускает access-токен для пользователя.
func (s *Service) issueAccess(ctx context.Context, op string, user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.generateAccessToken(user.ID, user.Email, time.Now().UTC())
	if err != nil {
		log.From(ctx).Error("access_token_sign_failed", "op", op, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	user.PasswordHash = nil

	return &AuthResult{
		UserID:          user.ID.Hex(),
		AccessToken:     token,
		AccessExpiresAt: expiresAt,
		User:            user,
	}, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) ([]byte, error) {
	const op = "service/auth/hashPassword"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hash, nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// validateEmail проверяет формат email и приводит его к нижнему регистру.
func validateEmail(raw string) (string, error) {
	const op = "service/auth/validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return strings.ToLower(email), nil
}

// validatePassword: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service/auth/validatePassword"

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return nil
}
