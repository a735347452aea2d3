// minio предоставляет реализацию storage.Objects на базе MinIO/S3.
// minio.go — конструктор клиента: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие целевого бакета.
// objects.go — загрузка и удаление объектов, сборка публичных URL.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/climbhub/internal/config"
	"github.com/pribylovaa/climbhub/internal/storage"
)

// ObjectStorage — адаптер MinIO для роликов и изображений.
type ObjectStorage struct {
	bucket     string
	publicBase string
	client     *mclient.Client
}

// New создаёт клиент MinIO.
// Убирает схему из endpoint, подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, cfg *config.Config) (*ObjectStorage, error) {
	const op = "storage/minio/New"

	endpoint := cfg.S3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.S3.Bucket)
	}

	return &ObjectStorage{
		bucket:     cfg.S3.Bucket,
		publicBase: cfg.S3.PublicBase(),
		client:     client,
	}, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Objects = (*ObjectStorage)(nil)
