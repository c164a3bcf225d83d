package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Supabase talks to the Storage REST API with the service-role key.
type Supabase struct {
	baseURL string
	key     string
	bucket  string
	client  *http.Client
}

func NewSupabase(projectURL, serviceKey, bucket string, client *http.Client) (*Supabase, error) {
	if strings.TrimSpace(projectURL) == "" || strings.TrimSpace(serviceKey) == "" {
		return nil, fmt.Errorf("SUPABASE_PROJECT_URL ou SUPABASE_SERVICE_ROLE_KEY não definidos")
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Supabase{
		baseURL: strings.TrimRight(projectURL, "/"),
		key:     serviceKey,
		bucket:  bucket,
		client:  client,
	}, nil
}

func (s *Supabase) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)
}

func (s *Supabase) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(key), r)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	if size > 0 {
		req.ContentLength = size
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age=31536000")
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}
	return s.PublicURL(key), nil
}

func (s *Supabase) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(key), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("delete failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (s *Supabase) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, (&url.URL{Path: key}).EscapedPath())
}

func (s *Supabase) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	prefix := "/storage/v1/object/public/" + s.bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("url is not a public object of bucket %s", s.bucket)
	}
	return strings.TrimPrefix(u.Path, prefix), nil
}
