package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/configs"
)

func TestNew_NotConfigured(t *testing.T) {
	idx, err := New(context.Background(), configs.SearchConfig{})
	require.NoError(t, err)
	assert.Nil(t, idx)
}

func TestParseHits_SkipsForeignIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	raw := `{"hits":{"hits":[{"_id":"` + a.String() + `"},{"_id":"legacy-1"},{"_id":"` + b.String() + `"}]}}`

	ids, err := parseHits([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestSearchBody_DefaultSize(t *testing.T) {
	body := searchBody("compliance", 0)
	assert.Equal(t, 10, body["size"])
}

func TestElasticIndex_AgainstFakeCluster(t *testing.T) {
	hit := uuid.New()
	var created bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/lessons":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && r.URL.Path == "/lessons":
			created = true
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"` + hit.String() + `"}]}}`))
		default:
			_, _ = w.Write([]byte(`{"result":"created"}`))
		}
	}))
	defer srv.Close()

	idx, err := New(context.Background(), configs.SearchConfig{URLs: []string{srv.URL}, Index: "lessons"})
	require.NoError(t, err)
	require.NotNil(t, idx)
	assert.True(t, created)

	require.NoError(t, idx.Upsert(context.Background(), LessonDoc{ID: uuid.New(), Title: "Introdução à LGPD"}))

	ids, err := idx.Search(context.Background(), "lgpd", 5)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{hit}, ids)
}
