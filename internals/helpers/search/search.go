// Package search keeps the lesson full-text index in Elasticsearch.
package search

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"capacitajun_backend/internals/configs"
)

// LessonDoc is the indexed projection of a lesson.
type LessonDoc struct {
	ID           uuid.UUID `json:"-"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
}

type Index interface {
	Upsert(ctx context.Context, doc LessonDoc) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
}

// Lessons is nil when Elasticsearch is not configured; callers fall back to SQL.
var Lessons Index

type elasticIndex struct {
	client *elasticsearch.Client
	index  string
}

// New connects to the configured cluster and makes sure the index exists.
// It returns (nil, nil) when no URLs are configured.
func New(ctx context.Context, cfg configs.SearchConfig) (Index, error) {
	if len(cfg.URLs) == 0 {
		return nil, nil
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.URLs,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	idx := &elasticIndex{client: client, index: cfg.Index}
	if err := idx.createIndexIfNotExist(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (r *elasticIndex) createIndexIfNotExist(ctx context.Context) error {
	existsRes, err := esapi.IndicesExistsRequest{Index: []string{r.index}}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}
	defer existsRes.Body.Close()

	if existsRes.StatusCode != 404 {
		if existsRes.StatusCode >= 300 {
			return fmt.Errorf("index existence check failed with status code %d", existsRes.StatusCode)
		}
		return nil
	}

	body, err := sonic.Marshal(lessonMapping())
	if err != nil {
		return err
	}
	res, err := esapi.IndicesCreateRequest{Index: r.index, Body: bytes.NewReader(body)}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("mapping creation failed: %s", res.String())
	}
	return nil
}

// Portuguese-aware prefix search on title and description.
func lessonMapping() map[string]any {
	text := map[string]any{
		"type":            "text",
		"analyzer":        "edge_ngram_pt",
		"search_analyzer": "folded_pt",
	}
	return map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"analyzer": map[string]any{
					"edge_ngram_pt": map[string]any{
						"tokenizer": "edge_ngram_tokenizer",
						"filter":    []string{"lowercase", "asciifolding"},
					},
					"folded_pt": map[string]any{
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "asciifolding"},
					},
				},
				"tokenizer": map[string]any{
					"edge_ngram_tokenizer": map[string]any{
						"type":        "edge_ngram",
						"min_gram":    2,
						"max_gram":    20,
						"token_chars": []string{"letter", "digit"},
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"title":         text,
				"description":   text,
				"category_name": text,
				"category_id":   map[string]any{"type": "keyword"},
			},
		},
	}
}

func (r *elasticIndex) Upsert(ctx context.Context, doc LessonDoc) error {
	data, err := sonic.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal doc: %w", err)
	}
	res, err := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: doc.ID.String(),
		Refresh:    "true",
		Body:       bytes.NewReader(data),
	}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (r *elasticIndex) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := esapi.DeleteRequest{
		Index:      r.index,
		DocumentID: id.String(),
		Refresh:    "true",
	}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete error: %s", res.String())
	}
	return nil
}

func (r *elasticIndex) Search(ctx context.Context, query string, size int) ([]uuid.UUID, error) {
	body, err := sonic.Marshal(searchBody(query, size))
	if err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}
	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		b, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search error: %s", string(b))
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return parseHits(raw)
}

func searchBody(query string, size int) map[string]any {
	if size <= 0 {
		size = 10
	}
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":                query,
				"fields":               []string{"title^3", "category_name^2", "description"},
				"type":                 "best_fields",
				"fuzziness":            "AUTO",
				"operator":             "or",
				"minimum_should_match": "2<75%",
			},
		},
		"size":    size,
		"_source": false,
	}
}

func parseHits(raw []byte) ([]uuid.UUID, error) {
	var esRes struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := sonic.Unmarshal(raw, &esRes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(esRes.Hits.Hits))
	for _, h := range esRes.Hits.Hits {
		if id, err := uuid.Parse(h.ID); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
