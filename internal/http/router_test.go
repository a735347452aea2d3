package http

// Тесты HTTP-слоя climbhub: роутер + хендлеры + маппинг ошибок
// поверх настоящего service.Service с моками хранилищ.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pribylovaa/climbhub/internal/config"
	"github.com/pribylovaa/climbhub/internal/models"
	"github.com/pribylovaa/climbhub/internal/service"
	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/pribylovaa/climbhub/mocks"
)

type apiError struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{
			VideoMaxSizeBytes: 1024,
			VideoContentTypes: []string{"video/mp4"},
			ImageMaxSizeBytes: 512,
			ImageContentTypes: []string{"image/png"},
		},
		Auth: config.AuthConfig{
			JWTSecret:      "router-test-secret-0123456789",
			AccessTokenTTL: time.Hour,
			Issuer:         "climbhub",
			Audience:       []string{"climbhub-app"},
		},
	}
}

// newTestRouter — роутер поверх сервиса с моками хранилищ.
func newTestRouter(t *testing.T, opts Options) (http.Handler, *mocks.MockStorage, *mocks.MockObjects) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mo := mocks.NewMockObjects(ctrl)

	if opts.Registerer == nil {
		opts.Registerer = prometheus.NewRegistry()
	}

	return NewRouter(service.New(ms, mo, testConfig()), opts), ms, mo
}

func doJSON(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// multipartBody собирает форму с полями и (опционально) одним файлом.
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if fileField != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestRouter_Gyms(t *testing.T) {
	h, ms, _ := newTestRouter(t, Options{})
	gymID := primitive.NewObjectID()

	t.Run("create_201", func(t *testing.T) {
		ms.EXPECT().
			CreateGym(gomock.Any(), models.Gym{Name: "Boulder Bar", Location: "Berlin"}).
			Return(&models.Gym{ID: gymID, Name: "Boulder Bar", Location: "Berlin"}, nil)

		rr := doJSON(h, http.MethodPost, "/gyms", `{"name":" Boulder Bar ","location":"Berlin"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		got := decode[models.Gym](t, rr)
		require.Equal(t, gymID, got.ID)
	})

	t.Run("create_missing_location_400", func(t *testing.T) {
		rr := doJSON(h, http.MethodPost, "/gyms", `{"name":"x"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		body := decode[apiError](t, rr)
		require.Equal(t, "invalid_argument", body.Code)
		require.Contains(t, body.Error, "location")
	})

	t.Run("unknown_field_400", func(t *testing.T) {
		rr := doJSON(h, http.MethodPost, "/gyms", `{"name":"x","location":"y","admin":true}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "malformed request", decode[apiError](t, rr).Error)
	})

	t.Run("get_404_with_request_id", func(t *testing.T) {
		ms.EXPECT().GymByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

		rr := doJSON(h, http.MethodGet, "/gyms/missing", "")
		require.Equal(t, http.StatusNotFound, rr.Code)

		body := decode[apiError](t, rr)
		require.Equal(t, "not_found", body.Code)
		require.Equal(t, rr.Header().Get("X-Request-Id"), body.RequestID)
		require.NotEmpty(t, body.RequestID)
	})

	t.Run("delete_in_use_409", func(t *testing.T) {
		ms.EXPECT().GymByID(gomock.Any(), gymID.Hex()).Return(&models.Gym{ID: gymID}, nil)
		ms.EXPECT().GymInUse(gomock.Any(), gymID.Hex()).Return(true, nil)

		rr := doJSON(h, http.MethodDelete, "/gyms/"+gymID.Hex(), "")
		require.Equal(t, http.StatusConflict, rr.Code)
		require.Equal(t, "conflict", decode[apiError](t, rr).Code)
	})

	t.Run("delete_ok", func(t *testing.T) {
		ms.EXPECT().GymByID(gomock.Any(), gymID.Hex()).Return(&models.Gym{ID: gymID}, nil)
		ms.EXPECT().GymInUse(gomock.Any(), gymID.Hex()).Return(false, nil)
		ms.EXPECT().DeleteGym(gomock.Any(), gymID.Hex()).Return(nil)

		rr := doJSON(h, http.MethodDelete, "/gyms/"+gymID.Hex(), "")
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "Gym deleted successfully", decode[map[string]string](t, rr)["message"])
	})

	t.Run("list_storage_error_500", func(t *testing.T) {
		ms.EXPECT().ListGyms(gomock.Any()).Return(nil, fmt.Errorf("mongo: connection refused"))

		rr := doJSON(h, http.MethodGet, "/gyms", "")
		require.Equal(t, http.StatusInternalServerError, rr.Code)
		require.NotContains(t, rr.Body.String(), "mongo")
	})
}

func TestRouter_CreateVideo_Multipart(t *testing.T) {
	h, ms, mo := newTestRouter(t, Options{MaxUploadBytes: 1 << 20})
	gym, profile := primitive.NewObjectID(), primitive.NewObjectID()

	fields := map[string]string{
		"description":     "Heel hook crux",
		"gradingSystem":   "V-Grading",
		"difficultyLevel": "V5",
		"gym":             gym.Hex(),
		"profile":         profile.Hex(),
	}

	t.Run("ok_201", func(t *testing.T) {
		gomock.InOrder(
			ms.EXPECT().GymByID(gomock.Any(), gym.Hex()).Return(&models.Gym{ID: gym}, nil),
			ms.EXPECT().ProfileByID(gomock.Any(), profile.Hex()).Return(&models.Profile{ID: profile}, nil),
			mo.EXPECT().
				Upload(gomock.Any(), "send.mp4", gomock.Any(), int64(5), "video/mp4").
				Return(&storage.Object{Key: "k-send.mp4", URL: "https://cdn/b/k-send.mp4"}, nil),
			ms.EXPECT().
				CreateVideo(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, v models.Video) (*models.Video, error) {
					v.ID = primitive.NewObjectID()
					return &v, nil
				}),
		)

		body, ct := multipartBody(t, fields, "videoFile", "send.mp4", "video/mp4", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/videos", body)
		req.Header.Set("Content-Type", ct)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		got := decode[struct {
			Message string       `json:"message"`
			Video   models.Video `json:"video"`
		}](t, rr)
		require.Equal(t, "Video uploaded successfully.", got.Message)
		require.Equal(t, "https://cdn/b/k-send.mp4", got.Video.VideoURL)
		require.Equal(t, "V5", got.Video.DifficultyLevel)
	})

	t.Run("no_file_400", func(t *testing.T) {
		body, ct := multipartBody(t, fields, "", "", "", "")
		req := httptest.NewRequest(http.MethodPost, "/videos", body)
		req.Header.Set("Content-Type", ct)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "videoFile is required", decode[apiError](t, rr).Error)
	})

	t.Run("difficulty_mismatch_400", func(t *testing.T) {
		bad := map[string]string{}
		for k, v := range fields {
			bad[k] = v
		}
		bad["gradingSystem"] = "Japanese-Colored"
		bad["difficultyLevel"] = "V3"

		body, ct := multipartBody(t, bad, "videoFile", "send.mp4", "video/mp4", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/videos", body)
		req.Header.Set("Content-Type", ct)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, `difficulty level "V3" is not valid for grading system "Japanese-Colored"`, decode[apiError](t, rr).Error)
	})

	t.Run("not_multipart_400", func(t *testing.T) {
		rr := doJSON(h, http.MethodPost, "/videos", `{"description":"x"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "invalid_argument", decode[apiError](t, rr).Code)
	})
}

func TestRouter_LikeAndComments(t *testing.T) {
	h, ms, _ := newTestRouter(t, Options{})
	vid := primitive.NewObjectID().Hex()
	uid := primitive.NewObjectID().Hex()

	ms.EXPECT().ToggleVideoLike(gomock.Any(), vid, uid).Return(&models.LikeResult{Liked: true, LikesCount: 1}, nil)
	rr := doJSON(h, http.MethodPost, "/videos/"+vid+"/like", `{"userId":"`+uid+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Video liked","likesCount":1,"liked":true}`, rr.Body.String())

	ms.EXPECT().ToggleVideoLike(gomock.Any(), vid, uid).Return(&models.LikeResult{Liked: false, LikesCount: 0}, nil)
	rr = doJSON(h, http.MethodPost, "/videos/"+vid+"/like", `{"userId":"`+uid+`"}`)
	require.JSONEq(t, `{"message":"Video unliked","likesCount":0,"liked":false}`, rr.Body.String())

	rr = doJSON(h, http.MethodPost, "/videos/"+vid+"/like", `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "userId is required", decode[apiError](t, rr).Error)

	ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(&models.Profile{ID: primitive.NewObjectID()}, nil)
	ms.EXPECT().AttachComment(gomock.Any(), vid, gomock.Any()).Return(nil)
	ms.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Comment) (*models.Comment, error) { return &c, nil })

	rr = doJSON(h, http.MethodPost, "/videos/"+vid+"/comment", `{"text":"Allez!","userId":"`+uid+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "Allez!", decode[models.Comment](t, rr).Text)

	cid := primitive.NewObjectID().Hex()
	ms.EXPECT().ToggleCommentLike(gomock.Any(), cid, uid).Return(&models.LikeResult{Liked: true, LikesCount: 3}, nil)
	rr = doJSON(h, http.MethodPost, "/comments/"+cid+"/like", `{"userId":"`+uid+`"}`)
	require.JSONEq(t, `{"message":"Comment liked","likesCount":3,"liked":true}`, rr.Body.String())
}

func TestRouter_FeedAndSearch(t *testing.T) {
	h, ms, _ := newTestRouter(t, Options{})
	uid := primitive.NewObjectID().Hex()
	home := primitive.NewObjectID()

	near := models.VideoDetails{Video: models.Video{ID: primitive.NewObjectID(), Gym: home, GradingSystem: models.GradingV, DifficultyLevel: "V9"}}
	far := models.VideoDetails{Video: models.Video{ID: primitive.NewObjectID(), Gym: primitive.NewObjectID(), GradingSystem: models.GradingV, DifficultyLevel: "V9"}}

	ms.EXPECT().ProfileByUser(gomock.Any(), uid).Return(&models.Profile{Gyms: []primitive.ObjectID{home}}, nil)
	ms.EXPECT().ListVideos(gomock.Any(), storage.VideoFilter{}).Return([]models.VideoDetails{near, far}, nil)

	rr := doJSON(h, http.MethodGet, "/videos/preferences/"+uid, "")
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[map[string][]models.VideoDetails](t, rr)
	require.Len(t, got["preferredVideos"], 1)
	require.Equal(t, near.ID, got["preferredVideos"][0].ID)
	require.Len(t, got["otherVideos"], 1)

	// Пустой запрос поиска не ходит в хранилище.
	rr = doJSON(h, http.MethodGet, "/profile/search?q=", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	ms.EXPECT().SearchProfiles(gomock.Any(), "alex").Return([]models.ProfileDetails{{}}, nil)
	rr = doJSON(h, http.MethodGet, "/profile/search?q=alex", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decode[[]models.ProfileDetails](t, rr), 1)
}

func TestRouter_UploadImage(t *testing.T) {
	h, ms, mo := newTestRouter(t, Options{})
	uid := primitive.NewObjectID().Hex()

	ms.EXPECT().UserByID(gomock.Any(), uid).Return(&models.User{}, nil)
	mo.EXPECT().Upload(gomock.Any(), "me.png", gomock.Any(), int64(3), "image/png").
		Return(&storage.Object{Key: "k", URL: "https://cdn/b/k"}, nil)
	ms.EXPECT().SetUserImage(gomock.Any(), uid, "https://cdn/b/k").
		Return(&models.User{Name: "Alex", Image: "https://cdn/b/k", PasswordHash: []byte("secret")}, nil)

	body, ct := multipartBody(t, nil, "image", "me.png", "image/png", "png")
	req := httptest.NewRequest(http.MethodPost, "/users/"+uid+"/upload-image", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.NotContains(t, rr.Body.String(), "secret")

	got := decode[struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}](t, rr)
	require.Equal(t, "Profile image uploaded successfully", got.Message)
	require.Equal(t, "https://cdn/b/k", got.User.Image)
}

func TestRouter_UploadTooLarge(t *testing.T) {
	h, _, _ := newTestRouter(t, Options{MaxUploadBytes: 64})

	body, ct := multipartBody(t, nil, "image", "me.png", "image/png", strings.Repeat("x", 1024))
	req := httptest.NewRequest(http.MethodPost, "/users/"+primitive.NewObjectID().Hex()+"/upload-image", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_AuthRoundTrip(t *testing.T) {
	h, ms, _ := newTestRouter(t, Options{})

	ms.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (*models.User, error) {
			u.ID = primitive.NewObjectID()
			return &u, nil
		})

	rr := doJSON(h, http.MethodPost, "/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"Cr1mp!Edge"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	reg := decode[service.AuthResult](t, rr)
	require.NotEmpty(t, reg.AccessToken)
	require.Equal(t, models.RoleClimber, reg.User.Role)
	require.NotContains(t, rr.Body.String(), "password")

	rr = doJSON(h, http.MethodPost, "/auth/validate", `{"access_token":"`+reg.AccessToken+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	info := decode[service.TokenInfo](t, rr)
	require.True(t, info.Valid)
	require.Equal(t, reg.UserID, info.UserID)

	rr = doJSON(h, http.MethodPost, "/auth/validate", `{"access_token":"garbage"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "unauthenticated", decode[apiError](t, rr).Code)

	ms.EXPECT().UserByEmail(gomock.Any(), "alex@example.com").Return(nil, storage.ErrNotFound)
	rr = doJSON(h, http.MethodPost, "/auth/login", `{"email":"alex@example.com","password":"Cr1mp!Edge"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_FallbacksAndBasePath(t *testing.T) {
	h, ms, _ := newTestRouter(t, Options{BasePath: "/api"})

	ms.EXPECT().ListGyms(gomock.Any()).Return([]models.Gym{}, nil)
	rr := doJSON(h, http.MethodGet, "/api/gyms", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	rr = doJSON(h, http.MethodGet, "/gyms", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "route not found", decode[apiError](t, rr).Error)

	rr = doJSON(h, http.MethodPatch, "/api/gyms", "")
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, "method_not_allowed", decode[apiError](t, rr).Code)
}

func TestRouter_RateLimit(t *testing.T) {
	h, ms, _ := newTestRouter(t, Options{RateLimit: 1, RateWindow: time.Minute})

	ms.EXPECT().ListGyms(gomock.Any()).Return([]models.Gym{}, nil)
	require.Equal(t, http.StatusOK, doJSON(h, http.MethodGet, "/gyms", "").Code)

	rr := doJSON(h, http.MethodGet, "/gyms", "")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Equal(t, "resource_exhausted", decode[apiError](t, rr).Code)
}
