package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/pribylovaa/climbhub/internal/storage"
	"github.com/pribylovaa/climbhub/pkg/log"
)

// FileInput — загружаемый файл. Body читается ровно один раз.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// uploadRule — ограничения на файл конкретного назначения.
type uploadRule struct {
	field    string
	maxSize  int64
	allowed  []string
	fallback string
}

func (s *Service) videoRule() uploadRule {
	return uploadRule{
		field:    "videoFile",
		maxSize:  s.cfg.Upload.VideoMaxSizeBytes,
		allowed:  s.cfg.Upload.VideoContentTypes,
		fallback: "video",
	}
}

func (s *Service) imageRule() uploadRule {
	return uploadRule{
		field:    "image",
		maxSize:  s.cfg.Upload.ImageMaxSizeBytes,
		allowed:  s.cfg.Upload.ImageContentTypes,
		fallback: "image",
	}
}

// checkFile проверяет наличие файла, размер и тип содержимого.
// Возвращает нормализованный media type.
func checkFile(op string, f *FileInput, rule uploadRule) (string, error) {
	if f == nil || f.Body == nil {
		return "", invalid(op, "%s is required", rule.field)
	}

	if f.Size <= 0 {
		return "", invalid(op, "%s must not be empty", rule.field)
	}

	if rule.maxSize > 0 && f.Size > rule.maxSize {
		return "", invalid(op, "%s exceeds the maximum size of %d bytes", rule.field, rule.maxSize)
	}

	ct := normalizeContentType(f.ContentType)
	for _, allowed := range rule.allowed {
		if strings.EqualFold(strings.TrimSpace(allowed), ct) {
			return ct, nil
		}
	}

	return "", invalid(op, "%s content type %q is not allowed", rule.field, f.ContentType)
}

// upload кладёт проверенный файл в объектное хранилище.
func (s *Service) upload(ctx context.Context, op string, f *FileInput, contentType string, rule uploadRule) (*storage.Object, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = rule.fallback
	}

	obj, err := s.objects.Upload(ctx, name, f.Body, f.Size, contentType)
	if err != nil {
		log.From(ctx).Error("object upload failed", "op", op, "name", name, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	return obj, nil
}

// removeObject удаляет объект без возврата ошибки: сбой только логируется.
func (s *Service) removeObject(ctx context.Context, op, key string) {
	if key == "" {
		return
	}

	if err := s.objects.Delete(ctx, key); err != nil {
		log.From(ctx).Warn("object delete failed", "op", op, "key", key, "err", err)
	}
}

func normalizeContentType(ct string) string {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}

	return mediaType
}
