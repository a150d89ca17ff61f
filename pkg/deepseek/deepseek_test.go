package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskflow/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	var got deepseek.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{
			"id": "1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != deepseek.DefaultModel {
		t.Errorf("Model() = %q", client.Model())
	}

	resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
		Messages:       []deepseek.Message{{Role: "user", Content: "hi"}},
		ResponseFormat: &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSONObject},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Choices[0].Message.Content != "{}" {
		t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
	}
	if got.Model != deepseek.DefaultModel {
		t.Errorf("request model = %q, want default", got.Model)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format not sent: %+v", got.ResponseFormat)
	}

	bad, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
	_, err = bad.GenerateContent(context.Background(), &deepseek.Request{})
	if err == nil || !strings.Contains(err.Error(), "bad key") {
		t.Errorf("expected API error message, got %v", err)
	}
	var apiErr *deepseek.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected *APIError with 401, got %#v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error")
	}
}
