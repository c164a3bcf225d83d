package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Minio stores objects in any S3-compatible server.
type Minio struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func NewMinio(ctx context.Context, endpoint, accessKey, secretKey string, useSSL bool, bucket, publicBase string) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", bucket, err)
		}
	}

	if publicBase == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket)
	}

	return &Minio{client: client, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (s *Minio) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if size <= 0 {
		size = -1
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *Minio) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *Minio) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

func (s *Minio) KeyFromPublicURL(publicURL string) (string, error) {
	if !strings.HasPrefix(publicURL, s.publicBase+"/") {
		return "", fmt.Errorf("url is not a public object of bucket %s", s.bucket)
	}
	return strings.TrimPrefix(publicURL, s.publicBase+"/"), nil
}
