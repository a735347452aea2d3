// errors стандартизирует ответы об ошибках HTTP-слоя climbhub.
// На вход принимает ошибку сервисного слоя, на выход даёт:
//   - корректный HTTP-статус;
//   - короткий стабильный код и безопасное сообщение без утечки деталей.
//
// Сообщение *service.ValidationError отдаётся клиенту как есть:
// оно формируется сервисом специально для клиента.
package errors

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pribylovaa/climbhub/internal/service"
)

// StatusClientClosedRequest — нестандартный код «клиент закрыл соединение».
const StatusClientClosedRequest = 499

var (
	// ErrRateLimited — превышен лимит запросов (пишется лимитером).
	ErrRateLimited = stderrors.New("too many requests")
	// ErrBadRequest — запрос не разобран (битый JSON, multipart и т.п.).
	ErrBadRequest = stderrors.New("malformed request")
	// ErrRouteNotFound / ErrMethodNotAllowed — ответы роутера на неизвестный маршрут.
	ErrRouteNotFound    = stderrors.New("route not found")
	ErrMethodNotAllowed = stderrors.New("method not allowed")
)

// APIError — единый формат ответа об ошибке.
// Error — безопасное человекочитаемое описание.
// Code — машиночитаемый код для клиента.
// RequestID — из X-Request-Id, если есть.
type APIError struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - *service.ValidationError — 400 с сообщением валидации;
//   - сентинелы service — по таблице ниже;
//   - context.Canceled — 499, context.DeadlineExceeded — 504;
//   - прочее — 500/internal.
func ToHTTP(err error) (int, APIError) {
	if err == nil {
		return http.StatusInternalServerError, APIError{Error: "internal error", Code: "internal"}
	}

	var ve *service.ValidationError
	if stderrors.As(err, &ve) {
		return http.StatusBadRequest, APIError{Error: ve.Msg, Code: "invalid_argument"}
	}

	switch {
	case stderrors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, APIError{Error: "malformed request", Code: "invalid_argument"}
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, APIError{Error: "invalid argument", Code: "invalid_argument"}
	case stderrors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, APIError{Error: "invalid credentials", Code: "unauthenticated"}
	case stderrors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, APIError{Error: "token expired", Code: "unauthenticated"}
	case stderrors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, APIError{Error: "invalid token", Code: "unauthenticated"}
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, APIError{Error: "not found", Code: "not_found"}
	case stderrors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, APIError{Error: "already exists", Code: "already_exists"}
	case stderrors.Is(err, service.ErrConflict):
		return http.StatusConflict, APIError{Error: "resource is still referenced", Code: "conflict"}
	case stderrors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound, APIError{Error: "route not found", Code: "not_found"}
	case stderrors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, APIError{Error: "method not allowed", Code: "method_not_allowed"}
	case stderrors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, APIError{Error: "too many requests", Code: "resource_exhausted"}
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, APIError{Error: "canceled", Code: "canceled"}
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, APIError{Error: "deadline exceeded", Code: "deadline_exceeded"}
	default:
		return http.StatusInternalServerError, APIError{Error: "internal error", Code: "internal"}
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус и тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
