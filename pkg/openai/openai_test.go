package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-suggestion-service/pkg/openai"
)

func TestNew_Validate(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}

	c, err := openai.New(openai.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != openai.DefaultModel {
		t.Errorf("expected default model %s, got %s", openai.DefaultModel, c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	var got map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Run 5k, 30 MIN, tomorrow, morning"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 9, "total_tokens": 21}
		}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		c, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL + "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := c.GenerateContent(context.Background(), &openai.Request{
			SystemInstruction: "paraphrase",
			Messages:          []openai.Message{{Content: "run tomorrow"}},
			Temperature:       openai.DefaultTemperature,
			MaxTokens:         openai.DefaultMaxTokens,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "Run 5k, 30 MIN, tomorrow, morning" {
			t.Errorf("unexpected content: %q", resp.Content)
		}
		if resp.Usage.TotalTokens != 21 {
			t.Errorf("expected 21 total tokens, got %d", resp.Usage.TotalTokens)
		}

		msgs, _ := got["messages"].([]interface{})
		if len(msgs) != 2 {
			t.Fatalf("expected system + user messages, got %d", len(msgs))
		}
		first := msgs[0].(map[string]interface{})
		if first["role"] != openai.RoleSystem {
			t.Errorf("expected system role first, got %v", first["role"])
		}
		second := msgs[1].(map[string]interface{})
		if second["role"] != openai.RoleUser {
			t.Errorf("expected empty role to default to user, got %v", second["role"])
		}
		if got["max_tokens"].(float64) != 100 {
			t.Errorf("expected max_tokens 100, got %v", got["max_tokens"])
		}
	})

	t.Run("API error", func(t *testing.T) {
		c, _ := openai.New(openai.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := c.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Content: "x"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Nil request", func(t *testing.T) {
		c, _ := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
		if _, err := c.GenerateContent(context.Background(), nil); err == nil {
			t.Fatal("expected error for nil request")
		}
	})
}
