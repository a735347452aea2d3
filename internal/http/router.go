package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	"github.com/pribylovaa/climbhub/internal/http/handlers"
	"github.com/pribylovaa/climbhub/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	// CORSOrigins — разрешённые источники; пустой список отключает CORS.
	CORSOrigins []string
	// RateLimit — запросов с одного IP за RateWindow; 0 отключает лимит.
	RateLimit  int
	RateWindow time.Duration
	// MaxUploadBytes — предел тела multipart-запросов.
	MaxUploadBytes int64
	// Registerer — куда регистрировать HTTP-метрики (nil -> default).
	Registerer prometheus.Registerer
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(api handlers.API, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // ловим паники
		middleware.RequestID(),          // X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте + запись на запрос
		middleware.NewMetrics(opts.Registerer).Middleware(),
		middleware.CORS(opts.CORSOrigins),
		middleware.RateLimit(opts.RateLimit, opts.RateWindow),
		middleware.Timeout(opts.Timeout), // общий дедлайн запроса
	)

	// Неизвестные маршруты отвечают тем же JSON-форматом ошибок.
	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, r, apierrors.ErrRouteNotFound)
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, r, apierrors.ErrMethodNotAllowed)
	})

	h := handlers.New(api, opts.MaxUploadBytes)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/validate", h.ValidateToken)

	// gyms
	r.Get("/gyms", h.ListGyms)
	r.Post("/gyms", h.CreateGym)
	r.Get("/gyms/{id}", h.GetGym)
	r.Put("/gyms/{id}", h.UpdateGym)
	r.Delete("/gyms/{id}", h.DeleteGym)

	// profiles ({id} — id пользователя)
	r.Post("/profile", h.CreateProfile)
	r.Get("/profile/search", h.SearchProfiles)
	r.Get("/profile/{id}", h.GetProfile)
	r.Put("/profile/{id}", h.UpdateProfile)
	r.Delete("/profile/{id}", h.DeleteProfile)

	// videos
	r.Get("/videos", h.ListVideos)
	r.Post("/videos", h.CreateVideo)
	r.Get("/videos/{videoId}", h.GetVideo)
	r.Put("/videos/{videoId}", h.UpdateVideo)
	r.Delete("/videos/{videoId}", h.DeleteVideo)
	r.Post("/videos/{videoId}/like", h.LikeVideo)
	r.Post("/videos/{videoId}/comment", h.AddComment)
	r.Get("/videos/{videoId}/comments", h.ListComments)
	r.Get("/videos/profile/{profileId}/videos", h.VideosByProfile)
	r.Get("/videos/preferences/{userId}", h.Feed)
	r.Get("/videos/gym/{gymId}", h.VideosByGym)

	// comments
	r.Post("/comments/{commentId}/like", h.LikeComment)

	// users
	r.Post("/users/{userId}/upload-image", h.UploadImage)
}
