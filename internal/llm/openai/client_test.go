package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"outfit-backend/internal/llm"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("OPENAI_BASE_URL", srv.URL)
	client, err := NewClient("test-key", "gpt-3.5-turbo")
	require.NoError(t, err)
	return client
}

func chatReply(content string) string {
	reply := map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-3.5-turbo",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
	raw, _ := json.Marshal(reply)
	return string(raw)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "gpt-3.5-turbo")
	require.Error(t, err)

	_, err = NewClient("key", "  ")
	require.Error(t, err)
}

func TestSelectOutfitsSendsChatRequest(t *testing.T) {
	var captured chatRequest
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(chatReply(`{"outfits":[]}`)))
	})

	raw, err := client.SelectOutfits(context.Background(), llm.SelectionInput{
		Candidates: map[string][]llm.CandidateItem{
			"TOP": {{ID: 1, Name: "shirt", Price: 39000}},
		},
		Occasion:   "date",
		Style:      "stylish",
		NumOutfits: 3,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"outfits":[]}`, string(raw))

	require.Equal(t, "gpt-3.5-turbo", captured.Model)
	require.Len(t, captured.Messages, 2)
	require.Equal(t, "system", captured.Messages[0].Role)
	require.NotNil(t, captured.ResponseFormat)
	require.Equal(t, "json_object", captured.ResponseFormat.Type)
}

func TestSelectOutfitsStripsCodeFences(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("```json\n{\"outfits\":[]}\n```")))
	})

	raw, err := client.SelectOutfits(context.Background(), llm.SelectionInput{NumOutfits: 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"outfits":[]}`, string(raw))
}

func TestSelectOutfitsProviderError(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))
	})

	_, err := client.SelectOutfits(context.Background(), llm.SelectionInput{NumOutfits: 1})
	require.ErrorContains(t, err, "rate limited")
}

func TestSelectOutfitsMissingChoices(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","choices":[]}`))
	})

	_, err := client.SelectOutfits(context.Background(), llm.SelectionInput{NumOutfits: 1})
	require.ErrorContains(t, err, "missing choices")
}

func TestSelectOutfitsRejectsNonJSONContent(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("죄송합니다, 추천할 수 없습니다.")))
	})

	_, err := client.SelectOutfits(context.Background(), llm.SelectionInput{NumOutfits: 1})
	require.ErrorContains(t, err, "invalid JSON")
}
