package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"capacitajun_backend/internals/configs"
	helper "capacitajun_backend/internals/helpers"
)

// Storage is the object store used for uploaded images.
type Storage interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// PublicURL builds the public URL of key from the fixed bucket path.
	PublicURL(key string) string
	// KeyFromPublicURL is the inverse of PublicURL.
	KeyFromPublicURL(publicURL string) (string, error)
}

// New picks the driver named by cfg.Driver. On error the returned Storage is nil.
func New(ctx context.Context, cfg configs.StorageConfig) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "supabase":
		st, err := NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Bucket, nil)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "oss":
		st, err := NewOSS(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey, cfg.Bucket, cfg.OSSPublicURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "minio":
		st, err := NewMinio(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.Bucket, cfg.MinioPublicURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// BuildObjectKey returns "<folder>/<slug>_<yyyymmdd_hhmmss>_<rand><ext>".
func BuildObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	key := fmt.Sprintf("%s_%s_%s%s", helper.Slugify(base, 60), time.Now().UTC().Format("20060102_150405"), randHex(3), ext)
	if folder = strings.Trim(folder, "/"); folder != "" {
		key = folder + "/" + key
	}
	return key
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
