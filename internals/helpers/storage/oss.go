package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"capacitajun_backend/internals/helpers/logger"
)

// OSS stores objects in an Aliyun OSS bucket.
type OSS struct {
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
	publicBase string
}

func NewOSS(endpoint, accessKey, secretKey, bucketName, publicBase string) (*OSS, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/STORAGE_BUCKET")
	}
	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			logger.Log.WithField("bucket", bucketName).Warn("oss: skip location check (AccessDenied)")
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		logger.Log.WithField("bucket", bucketName).WithField("location", loc).Info("oss bucket ready")
	}

	return &OSS{
		bucket:     bkt,
		endpoint:   endpoint,
		bucketName: bucketName,
		publicBase: strings.TrimRight(strings.TrimSpace(publicBase), "/"),
	}, nil
}

func (s *OSS) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.bucket.PutObject(key, r, opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSS) Delete(ctx context.Context, key string) error {
	err := s.bucket.DeleteObject(key, oss.WithContext(ctx))
	if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 404 {
		return nil
	}
	return err
}

func (s *OSS) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, end, key)
}

func (s *OSS) KeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if s.publicBase != "" && strings.HasPrefix(publicURL, s.publicBase+"/") {
		return strings.TrimPrefix(publicURL, s.publicBase+"/"), nil
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}
