package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatCompletion(t *testing.T) {
	var gotAuth string
	var gotReq Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		resp := Response{
			ID:    "chatcmpl-test",
			Model: gotReq.Model,
			Choices: []Choice{
				{Message: Message{Role: "assistant", Content: "1. Question one\n2. Question two"}},
			},
			Usage: Usage{PromptTokens: 20, CompletionTokens: 15, TotalTokens: 35},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	resp, err := client.ChatCompletion(context.Background(), []Message{
		{Role: "user", Content: "generate questions"},
	})
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	if gotReq.Model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, gotReq.Model)
	}
	if gotReq.MaxTokens != DefaultMaxTokens {
		t.Errorf("expected max_tokens %d, got %d", DefaultMaxTokens, gotReq.MaxTokens)
	}
	if gotReq.Temperature != DefaultTemperature {
		t.Errorf("expected temperature %v, got %v", DefaultTemperature, gotReq.Temperature)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("expected 1 choice, got %d", len(resp.Choices))
	}
	if resp.Usage.TotalTokens != 35 {
		t.Errorf("expected 35 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestChatCompletionOptions(t *testing.T) {
	var gotReq Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(Response{
			Choices: []Choice{{Message: Message{Content: "ok"}}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.ChatCompletion(context.Background(),
		[]Message{{Role: "user", Content: "hi"}},
		WithModel("other-model"),
		WithTemperature(0.2),
		WithMaxTokens(256),
	)
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}

	if gotReq.Model != "other-model" {
		t.Errorf("expected model override, got %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", gotReq.Temperature)
	}
	if gotReq.MaxTokens != 256 {
		t.Errorf("expected max_tokens 256, got %d", gotReq.MaxTokens)
	}
}

func TestChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad-key", BaseURL: server.URL})

	_, err := client.ChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestSimpleCompletionNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, _, err := client.SimpleCompletion(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error when API returns no choices")
	}
}
