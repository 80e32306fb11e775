package storagestats

import (
	"context"
	"fmt"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectLister is the part of the minio client the provider needs
type objectLister interface {
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// MinioProvider sums the object sizes of the studio asset bucket
type MinioProvider struct {
	client  objectLister
	bucket  string
	totalMB float64
}

// NewMinioProvider creates the MinIO client for the asset bucket
func NewMinioProvider(cfg *config.Config) (*MinioProvider, error) {
	if cfg.MinioEndpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" {
		return nil, fmt.Errorf("minio access_key and secret_key are required")
	}

	mc, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioProvider{client: mc, bucket: cfg.MinioBucket, totalMB: cfg.StorageTotalMB}, nil
}

func (p *MinioProvider) Name() string { return "minio" }

func (p *MinioProvider) Storage(ctx context.Context) (*Storage, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var used int64
	for obj := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, apperr.Upstream(fmt.Errorf("list %s: %w", p.bucket, obj.Err))
		}
		used += obj.Size
	}
	return FromBytes(used, p.totalMB), nil
}
