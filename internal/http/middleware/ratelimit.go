package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	logctx "github.com/pribylovaa/climbhub/pkg/log"
)

// RateLimit ограничивает число запросов с одного IP за окно window.
// requests <= 0 отключает лимит. Превышение отвечает 429/resource_exhausted.
func RateLimit(requests int, window time.Duration) Middleware {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logctx.From(r.Context()).Warn("rate_limited",
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
			)
			apierrors.WriteError(w, r, apierrors.ErrRateLimited)
		}),
	)
}
