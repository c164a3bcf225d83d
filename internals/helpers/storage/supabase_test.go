package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/configs"
)

func TestSupabase_PutAndDelete(t *testing.T) {
	var (
		gotMethod, gotPath, gotAuth, gotType string
		gotBody                              string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotAuth, gotType = r.Header.Get("Authorization"), r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewSupabase(srv.URL, "service-key", "auth-backgrounds", srv.Client())
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "bg/a.webp", strings.NewReader("img"), 3, "image/webp")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/storage/v1/object/auth-backgrounds/bg/a.webp", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/webp", gotType)
	assert.Equal(t, "img", gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/auth-backgrounds/bg/a.webp", url)

	key, err := s.KeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, "bg/a.webp", key)

	require.NoError(t, s.Delete(context.Background(), key))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestSupabase_PutFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bucket not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	s, err := NewSupabase(srv.URL, "k", "missing", srv.Client())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "x.webp", strings.NewReader("x"), 1, "image/webp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestNewSupabase_RequiresCredentials(t *testing.T) {
	_, err := NewSupabase("", "", "b", nil)
	assert.Error(t, err)
}

func TestNew_UnconfiguredReturnsNilStorage(t *testing.T) {
	st, err := New(context.Background(), configs.StorageConfig{Driver: "supabase"})
	require.Error(t, err)
	assert.True(t, st == nil)
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("/backgrounds/", "Pôr do Sol.PNG")
	assert.True(t, strings.HasPrefix(key, "backgrounds/por-do-sol_"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory("https://cdn.test/b")
	url, err := m.Put(context.Background(), "k/1.webp", strings.NewReader("abc"), 3, "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/b/k/1.webp", url)

	key, err := m.KeyFromPublicURL(url)
	require.NoError(t, err)
	require.NoError(t, m.Delete(context.Background(), key))
	assert.Empty(t, m.Objects)
}
