// Package object stores uploaded seminar images in a MinIO bucket
// and hands back the reference paths stored on the event record.
package object

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/config"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
)

// ImageStore uploads event images to a MinIO bucket.
type ImageStore struct {
	client *minio.Client
	bucket string
	secure bool
}

// NewImageStore connects to MinIO and ensures the bucket exists.
func NewImageStore(cfg *config.Config) (*ImageStore, error) {
	log := logger.Upload()

	client, err := minio.New(cfg.Upload.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Upload.AccessKey, cfg.Upload.SecretKey, ""),
		Secure: cfg.Upload.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Upload.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Upload.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info("Created upload bucket", "bucket", cfg.Upload.Bucket)
	}

	log.Info("Object storage ready", "endpoint", cfg.Upload.Endpoint, "bucket", cfg.Upload.Bucket)
	return &ImageStore{
		client: client,
		bucket: cfg.Upload.Bucket,
		secure: cfg.Upload.UseSSL,
	}, nil
}

// Put stores the image under a generated object name and returns the
// URL to reference it by.
func (s *ImageStore) Put(ctx context.Context, reader io.Reader, size int64, contentType, ext string) (string, error) {
	objectName := fmt.Sprintf("events/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, objectName), nil
}
