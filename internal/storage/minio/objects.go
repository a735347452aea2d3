package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/climbhub/internal/storage"
)

// Upload сохраняет объект под ключом "<uuid>-<имя файла>" и возвращает
// публичный URL вида <public-base>/<bucket>/<key>.
func (s *ObjectStorage) Upload(ctx context.Context, name string, body io.Reader, size int64, contentType string) (*storage.Object, error) {
	const op = "storage/minio/objects/Upload"

	key := objectKey(uuid.NewString(), name)

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.Object{Key: key, URL: s.publicURL(key)}, nil
}

// Delete удаляет объект. Отсутствующий ключ не считается ошибкой.
func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	const op = "storage/minio/objects/Delete"

	if strings.TrimSpace(key) == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ObjectStorage) publicURL(key string) string {
	return s.publicBase + "/" + s.bucket + "/" + url.PathEscape(key)
}

// objectKey собирает ключ из префикса и базового имени файла без каталогов клиента.
func objectKey(prefix, name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}

	return prefix + "-" + base
}
