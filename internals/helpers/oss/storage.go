package helper

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"learnsmate_backend/internals/configs"
	"learnsmate_backend/internals/logger"
)

// Storage is the object store used for uploaded media.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyFromPublicURL(publicURL string) (string, error)
}

// minioStorage is safe for concurrent use.
type minioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIOStorage connects to an S3-compatible endpoint and creates the bucket if missing.
func NewMinIOStorage(cfg configs.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "check bucket existence")
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "create bucket")
		}
		logger.Log.Infof("[MINIO] bucket %s created", cfg.Bucket)
	}
	return newMinIOStorage(cli, cfg), nil
}

func newMinIOStorage(cli *minio.Client, cfg configs.MinIOConfig) *minioStorage {
	base := strings.TrimRight(strings.TrimSpace(cfg.PublicBase), "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &minioStorage{client: cli, bucket: cfg.Bucket, publicBase: base}
}

func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	return errors.Wrapf(err, "put object %s", key)
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}), "remove object %s", key)
}

func (m *minioStorage) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return m.publicBase + "/" + strings.TrimLeft(key, "/")
}

func (m *minioStorage) KeyFromPublicURL(publicURL string) (string, error) {
	prefix := m.publicBase + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", errors.Errorf("url is not served by this bucket: %s", publicURL)
	}
	return strings.TrimPrefix(publicURL, prefix), nil
}
