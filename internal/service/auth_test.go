package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Str0ng!pass"

// Happy-path: нормализация, хэш пароля, роль по умолчанию и валидный токен.
func TestService_Register_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := primitive.NewObjectID()
	ms.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (*models.User, error) {
			require.Equal(t, "Alex Honnold", u.Name)
			require.Equal(t, "alex@example.com", u.Email)
			require.Equal(t, models.RoleClimber, u.Role)
			require.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(strongPassword)))

			u.ID = uid
			return &u, nil
		})

	res, err := s.Register(context.Background(), RegisterInput{
		Name:     "  Alex Honnold ",
		Email:    " Alex@Example.com ",
		Password: strongPassword,
	})
	require.NoError(t, err)
	require.Equal(t, uid.Hex(), res.UserID)
	require.NotEmpty(t, res.AccessToken)
	require.Nil(t, res.User.PasswordHash)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), res.AccessExpiresAt, 5*time.Second)

	info, err := s.ValidateToken(context.Background(), res.AccessToken)
	require.NoError(t, err)
	require.True(t, info.Valid)
	require.Equal(t, uid.Hex(), info.UserID)
	require.Equal(t, "alex@example.com", info.Email)
}

// Валидация: до хранилища не доходим.
func TestService_Register_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		in   RegisterInput
		want string
	}{
		{"empty_name", RegisterInput{Name: " ", Email: "a@b.io", Password: strongPassword}, "name is required"},
		{"bad_email", RegisterInput{Name: "a", Email: "not-an-email", Password: strongPassword}, "email"},
		{"display_name_email", RegisterInput{Name: "a", Email: "Bob <bob@b.io>", Password: strongPassword}, "email"},
		{"short_password", RegisterInput{Name: "a", Email: "a@b.io", Password: "Aa1!"}, "password"},
		{"no_special", RegisterInput{Name: "a", Email: "a@b.io", Password: "Abcdefg1"}, "password"},
		{"bad_role", RegisterInput{Name: "a", Email: "a@b.io", Password: strongPassword, Role: "admin"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.in)
			requireValidation(t, err, tt.want)
		})
	}
}

// Маппинг: storage.ErrAlreadyExists -> ErrAlreadyExists, прочее -> ErrInternal.
func TestService_Register_StorageErrors(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := RegisterInput{Name: "a", Email: "a@b.io", Password: strongPassword, Role: models.RoleManager}

	ms.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyExists)
	_, err := s.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrAlreadyExists)

	ms.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errDB)
	_, err = s.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_Login(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	hash, err := hashPassword(strongPassword)
	require.NoError(t, err)

	user := &models.User{ID: primitive.NewObjectID(), Name: "a", Email: "a@b.io", PasswordHash: hash, Role: models.RoleClimber}

	t.Run("ok", func(t *testing.T) {
		u := *user
		ms.EXPECT().UserByEmail(gomock.Any(), "a@b.io").Return(&u, nil)

		res, err := s.Login(context.Background(), " A@B.io", strongPassword)
		require.NoError(t, err)
		require.Equal(t, user.ID.Hex(), res.UserID)
		require.Nil(t, res.User.PasswordHash)
	})

	t.Run("wrong_password", func(t *testing.T) {
		u := *user
		ms.EXPECT().UserByEmail(gomock.Any(), "a@b.io").Return(&u, nil)

		_, err := s.Login(context.Background(), "a@b.io", "Wrong!pass1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		ms.EXPECT().UserByEmail(gomock.Any(), "nobody@b.io").Return(nil, storage.ErrNotFound)

		_, err := s.Login(context.Background(), "nobody@b.io", strongPassword)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("malformed_input", func(t *testing.T) {
		_, err := s.Login(context.Background(), "bad", strongPassword)
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = s.Login(context.Background(), "a@b.io", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage_error", func(t *testing.T) {
		ms.EXPECT().UserByEmail(gomock.Any(), "a@b.io").Return(nil, errDB)

		_, err := s.Login(context.Background(), "a@b.io", strongPassword)
		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	uid := primitive.NewObjectID()

	t.Run("expired", func(t *testing.T) {
		tok, _, err := s.generateAccessToken(uid, "a@b.io", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, _, err = s.validateAccessToken(tok)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong_alg", func(t *testing.T) {
		claims := jwt.MapClaims{
			"uid": uid.Hex(),
			"iss": s.cfg.Auth.Issuer,
			"aud": s.cfg.Auth.Audience,
			"exp": time.Now().Add(time.Minute).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
		require.NoError(t, err)

		_, _, err = s.validateAccessToken(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong_audience", func(t *testing.T) {
		other := New(nil, nil, testConfig())
		other.cfg.Auth.Audience = []string{"someone-else"}

		tok, _, err := other.generateAccessToken(uid, "a@b.io", time.Now())
		require.NoError(t, err)

		_, _, err = s.validateAccessToken(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other := New(nil, nil, testConfig())
		other.cfg.Auth.JWTSecret = "another-secret-0123456789"

		tok, _, err := other.generateAccessToken(uid, "a@b.io", time.Now())
		require.NoError(t, err)

		_, err = s.ValidateToken(context.Background(), tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken(context.Background(), "not.a.jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, validatePassword(strongPassword))
	require.NoError(t, validatePassword("Пароль1!"))
	require.Error(t, validatePassword(""))
	require.Error(t, validatePassword("Sh0rt!"))
	require.Error(t, validatePassword("alllowercase1!"))
	require.Error(t, validatePassword("ALLUPPERCASE1!"))
	require.Error(t, validatePassword("NoDigitsHere!"))
}
