package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	apierrors "github.com/pribylovaa/climbhub/internal/errors"
	"github.com/pribylovaa/climbhub/internal/service"
)

// multipartMemory — сколько байт формы держим в памяти, остальное уходит во временные файлы.
const multipartMemory = 8 << 20

// parseMultipart разбирает multipart-форму с учётом предела тела.
// Превышение предела — ValidationError, прочие ошибки разбора — ErrBadRequest.
func (h *Handlers) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &service.ValidationError{
				Msg: fmt.Sprintf("request body exceeds the maximum size of %d bytes", tooLarge.Limit),
			}
		}

		return fmt.Errorf("%w: %v", apierrors.ErrBadRequest, err)
	}

	return nil
}

// formFile достаёт файл поля field. Отсутствие файла — (nil, nil, nil):
// обязательность проверяет сервис.
func formFile(r *http.Request, field string) (*service.FileInput, multipart.File, error) {
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apierrors.ErrBadRequest, err)
	}

	return &service.FileInput{
		Name:        hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Size:        hdr.Size,
		Body:        f,
	}, f, nil
}

// cleanupMultipart закрывает файл и удаляет временные файлы формы.
func cleanupMultipart(r *http.Request, f multipart.File) {
	if f != nil {
		_ = f.Close()
	}
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
