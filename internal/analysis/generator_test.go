package analysis

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// geminiServer answers generateContent calls with a fixed status and body
// and records the request bodies it saw.
func geminiServer(t *testing.T, status int, body string) (*httptest.Server, func() []string) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			http.NotFound(w, r)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, string(raw))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), requests...)
	}
}

func newTestGenerator(t *testing.T, baseURL string) *GeminiGenerator {
	t.Helper()
	gen, err := NewGeminiGenerator(context.Background(), "test-key", "gemini-test", baseURL, zap.NewNop())
	require.NoError(t, err)
	return gen
}

func TestGeminiGenerator_Generate(t *testing.T) {
	srv, requests := geminiServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "## Análise\n- Durma mais."}]},
			"finishReason": "STOP"
		}]
	}`)

	text, err := newTestGenerator(t, srv.URL).Generate(context.Background(), "prompt de teste")
	require.NoError(t, err)
	assert.Equal(t, "## Análise\n- Durma mais.", text)
	seen := requests()
	require.Len(t, seen, 1)
	assert.Contains(t, seen[0], "prompt de teste")
}

func TestGeminiGenerator_EmptyResponse(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "NoCandidates", body: `{"candidates": []}`},
		{name: "MissingCandidates", body: `{}`},
		{name: "BlankText", body: `{"candidates": [{"content": {"role": "model", "parts": [{"text": "  \n"}]}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := geminiServer(t, http.StatusOK, tc.body)

			text, err := newTestGenerator(t, srv.URL).Generate(context.Background(), "prompt")
			assert.True(t, errors.Is(err, ErrEmptyReport), "got %v", err)
			assert.Empty(t, text)
		})
	}
}

func TestGeminiGenerator_UpstreamError(t *testing.T) {
	srv, _ := geminiServer(t, http.StatusInternalServerError,
		`{"error": {"code": 500, "message": "backend exploded", "status": "INTERNAL"}}`)

	text, err := newTestGenerator(t, srv.URL).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "gemini generate:"), err.Error())
	assert.False(t, errors.Is(err, ErrEmptyReport))
	assert.Empty(t, text)
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "gemini-test", "", zap.NewNop())
	assert.Error(t, err)
}
