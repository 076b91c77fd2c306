package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{APIKey: "test-key"})
	client.SetHTTPClient(srv.Client())
	client.SetBaseURL(srv.URL)
	return client
}

func completionBody(content string) []byte {
	resp := ChatCompletionResponse{
		ID:    "gen-1",
		Model: DefaultModel,
		Choices: []Choice{
			{Message: Message{Role: "assistant", Content: content}},
		},
		Usage: Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
	data, _ := json.Marshal(resp)
	return data
}

func TestChat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, DefaultModel, req.Model)

		w.Write(completionBody("  hello  "))
	})

	resp, err := client.Chat(context.Background(), ChatRequest{
		SystemPrompt: "be helpful",
		UserPrompt:   "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestChatWithoutAPIKey(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	assert.ErrorContains(t, err, "API key not configured")
	assert.False(t, client.IsConfigured())
}

func TestChatNonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid model"}`, http.StatusBadRequest)
	})

	_, err := client.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestChatEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := json.Marshal(ChatCompletionResponse{})
		w.Write(data)
	})

	_, err := client.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	assert.ErrorContains(t, err, "no response choices")
}

func TestChatDoesNotRetryAPIErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
	})

	_, err := client.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "API-level failures are not retried")
}

func TestChatOverrides(t *testing.T) {
	override := "qwen/qwen-2.5-72b"
	temp := 0.7
	tokens := 64

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, override, req.Model)
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)
		assert.Equal(t, 64, req.MaxTokens)
		w.Write(completionBody("ok"))
	})

	_, err := client.Chat(context.Background(), ChatRequest{
		UserPrompt:  "hi",
		Model:       &override,
		Temperature: &temp,
		MaxTokens:   &tokens,
	})
	require.NoError(t, err)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(assertError("connection refused")))
	assert.True(t, isRetryableError(assertError("i/o timeout")))
	assert.False(t, isRetryableError(assertError("invalid api key")))
}

type assertError string

func (e assertError) Error() string { return string(e) }
