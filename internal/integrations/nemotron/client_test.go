package nemotron

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, reply string, seen *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(t *testing.T, baseURL, key string) *Client {
	t.Helper()
	prompts, err := LoadPrompts("")
	require.NoError(t, err)
	return New(Options{
		BaseURL:       baseURL,
		NemotronModel: "nemotron-test",
		AgentModel:    "agent-test",
		APIKey:        func() string { return key },
	}, prompts)
}

func TestGenerateProcessPrompt(t *testing.T) {
	var seen chatRequest
	srv := newTestServer(t, "# PRD", &seen)
	c := testClient(t, srv.URL, "test-key")

	out, err := c.Generate(context.Background(), integrations.OpPRD, map[string]string{"Notes": "ship the beta"})
	require.NoError(t, err)
	assert.Equal(t, "# PRD", out)

	assert.Equal(t, "nemotron-test", seen.Model)
	assert.InDelta(t, 0.7, seen.Temperature, 1e-6)
	assert.Equal(t, 2048, seen.MaxTokens)
	require.Len(t, seen.Messages, 1)
	assert.Equal(t, "user", seen.Messages[0].Role)
	assert.Contains(t, seen.Messages[0].Content, "ship the beta")
}

func TestGenerateAnalysisUsesAgentModel(t *testing.T) {
	var seen chatRequest
	srv := newTestServer(t, "{}", &seen)
	c := testClient(t, srv.URL, "test-key")

	_, err := c.Generate(context.Background(), integrations.OpMeetingAnalysis, map[string]string{"Transcript": "we need login"})
	require.NoError(t, err)

	assert.Equal(t, "agent-test", seen.Model)
	assert.InDelta(t, 0.3, seen.Temperature, 1e-6)
	assert.Equal(t, 4096, seen.MaxTokens)
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, "system", seen.Messages[0].Role)
	assert.Contains(t, seen.Messages[1].Content, "we need login")
}

func TestGenerateErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := testClient(t, "http://127.0.0.1:0", "")
		_, err := c.Generate(context.Background(), integrations.OpSummary, map[string]string{"Notes": "x"})
		assert.True(t, errors.Is(err, integrations.ErrMissingAPIKey))
		assert.False(t, c.Configured())
	})

	t.Run("unknown operation", func(t *testing.T) {
		c := testClient(t, "http://127.0.0.1:0", "test-key")
		_, err := c.Generate(context.Background(), "haiku", nil)
		assert.True(t, errors.Is(err, ErrUnknownOperation))
	})

	t.Run("missing template field", func(t *testing.T) {
		c := testClient(t, "http://127.0.0.1:0", "test-key")
		_, err := c.Generate(context.Background(), integrations.OpSummary, map[string]string{})
		assert.Error(t, err)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
		}))
		defer srv.Close()
		c := testClient(t, srv.URL, "test-key")
		_, err := c.Generate(context.Background(), integrations.OpSummary, map[string]string{"Notes": "x"})
		assert.Error(t, err)
	})
}

func TestLoadPromptsCoversOperations(t *testing.T) {
	prompts, err := LoadPrompts("")
	require.NoError(t, err)
	for _, op := range []string{
		integrations.OpPRD, integrations.OpUserStory, integrations.OpActionItems, integrations.OpSummary,
		integrations.OpMeetingAnalysis, integrations.OpMeetingDiagram, integrations.OpMermaid,
	} {
		assert.Contains(t, prompts, op)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"plain":                            "plain",
		"```json\n{\"a\":1}\n```":          "{\"a\":1}",
		"```\njson\n{\"a\":1}\n```":        "{\"a\":1}",
		"```mermaid\ngraph TD\nA-->B\n```": "graph TD\nA-->B",
		"```\nmermaid graph TD\n```":       "graph TD",
		"  ```\n{}\n```  ":                 "{}",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFence(in), "input %q", in)
	}
}
