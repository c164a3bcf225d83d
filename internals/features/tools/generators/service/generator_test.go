package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/configs"
)

type stubGateway struct {
	reply string
	err   error
}

func (s stubGateway) Complete(context.Context, string, string) (string, error) {
	return s.reply, s.err
}

func TestCheckContent(t *testing.T) {
	_, err := CheckContent("   ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = CheckContent(strings.Repeat("á", MaxContentChars+1))
	assert.ErrorIs(t, err, ErrContentTooLong)

	got, err := CheckContent("  " + strings.Repeat("á", MaxContentChars) + " ")
	require.NoError(t, err)
	assert.Equal(t, MaxContentChars, len([]rune(got)))
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `[{"front":"a","back":"b"}]`, extractJSON("```json\n[{\"front\":\"a\",\"back\":\"b\"}]\n```"))
	assert.Equal(t, `{"root":"x"}`, extractJSON(`Aqui está: {"root":"x"} espero que ajude`))
}

func TestFlashcards(t *testing.T) {
	g := &Generator{Gateway: stubGateway{reply: "```json\n[{\"front\":\"O que é LGPD?\",\"back\":\"Lei de proteção de dados\"},{\"front\":\"\",\"back\":\"x\"}]\n```"}}

	cards, err := g.Flashcards(context.Background(), "conteúdo")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "O que é LGPD?", cards[0].Front)

	_, err = (&Generator{Gateway: stubGateway{reply: "desculpe, não sei"}}).Flashcards(context.Background(), "x")
	assert.ErrorIs(t, err, ErrBadOutput)
}

func TestMindMap(t *testing.T) {
	g := &Generator{Gateway: stubGateway{reply: `{"root":"Segurança","children":[{"label":"Senhas","children":[{"label":"Gerenciador"}]}]}`}}

	node, err := g.MindMap(context.Background(), "conteúdo")
	require.NoError(t, err)
	assert.Equal(t, "Segurança", node.Root)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "Gerenciador", node.Children[0].Children[0].Label)
}

func TestChatGateway_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusTooManyRequests, `{}`, ErrRateLimited},
		{http.StatusPaymentRequired, `{}`, ErrCreditsExhausted},
		{http.StatusInternalServerError, `{}`, ErrUnavailable},
		{http.StatusOK, `{"choices":[]}`, ErrUnavailable},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))
		gw := NewChatGateway(configs.AIConfig{GatewayURL: srv.URL, APIKey: "k", Model: "m", Timeout: time.Second})
		_, err := gw.Complete(context.Background(), "s", "u")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		srv.Close()
	}
}

func TestChatGateway_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  resumo  "}}]}`))
	}))
	defer srv.Close()

	gw := NewChatGateway(configs.AIConfig{GatewayURL: srv.URL, APIKey: "secret", Model: "m"})
	out, err := gw.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "resumo", out)
}

func TestChatGateway_NotConfigured(t *testing.T) {
	_, err := NewChatGateway(configs.AIConfig{}).Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
