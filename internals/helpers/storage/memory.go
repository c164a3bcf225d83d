package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Memory is an in-process Storage for tests.
type Memory struct {
	mu      sync.Mutex
	base    string
	Objects map[string][]byte
	Types   map[string]string
}

func NewMemory(base string) *Memory {
	return &Memory{
		base:    strings.TrimRight(base, "/"),
		Objects: map[string][]byte{},
		Types:   map[string]string{},
	}
}

func (m *Memory) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = buf.Bytes()
	m.Types[key] = contentType
	return m.PublicURL(key), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	delete(m.Types, key)
	return nil
}

func (m *Memory) PublicURL(key string) string { return m.base + "/" + key }

func (m *Memory) KeyFromPublicURL(publicURL string) (string, error) {
	if !strings.HasPrefix(publicURL, m.base+"/") {
		return "", fmt.Errorf("foreign url %s", publicURL)
	}
	return strings.TrimPrefix(publicURL, m.base+"/"), nil
}
