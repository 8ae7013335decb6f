package avatar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxi-checker/pkg/apperr"
	"github.com/maxi-checker/pkg/config"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.Config{
		AIGatewayURL: srv.URL,
		AIGatewayKey: "test-key",
		AIModel:      "test-model",
	})
}

func TestGenerate_ReturnsImageURL(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"images":[{"image_url":{"url":"data:image/png;base64,abc"}}]}}]}`))
	})

	url, err := g.Generate(context.Background(), PromptContext{BlockchainScore: 72, Archetype: "OG"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", url)
}

func TestGenerate_RateLimit(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
	})

	_, err := g.Generate(context.Background(), PromptContext{})
	require.Error(t, err)
	assert.Equal(t, 429, apperr.HTTPStatus(err))
}

func TestGenerate_QuotaExceeded(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(402)
	})

	_, err := g.Generate(context.Background(), PromptContext{})
	require.Error(t, err)
	assert.Equal(t, 402, apperr.HTTPStatus(err))
}

func TestGenerate_NoImageInResponse(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{}}]}`))
	})

	_, err := g.Generate(context.Background(), PromptContext{})
	require.Error(t, err)
	assert.Equal(t, 500, apperr.HTTPStatus(err))
}

func TestGenerate_MissingKey(t *testing.T) {
	g := New(&config.Config{AIGatewayURL: "http://unused", AIModel: "m"})
	_, err := g.Generate(context.Background(), PromptContext{})
	require.Error(t, err)
	assert.Equal(t, 500, apperr.HTTPStatus(err))
}

func TestBuildPrompt_Defaults(t *testing.T) {
	p := BuildPrompt(PromptContext{})
	assert.Contains(t, p, "blockchain score 50%")
	assert.Contains(t, p, "Archetype: Builder")
	assert.Contains(t, p, "Vibe: Local")
	assert.Contains(t, p, "ethereum, web3")
}

func TestBuildPrompt_TruncatesKeywords(t *testing.T) {
	p := BuildPrompt(PromptContext{
		BlockchainScore: 90,
		Archetype:       "Maxi",
		MumbaiMode:      "City Never Sleeps",
		Keywords:        []string{"a", "b", "c", "d", "e", "f", "g"},
	})
	assert.Contains(t, p, "blockchain score 90%")
	assert.Contains(t, p, "a, b, c, d, e")
	assert.False(t, strings.Contains(p, "f, g"))
}
