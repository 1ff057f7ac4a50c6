package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": Message{Role: RoleAssistant, Content: "你好"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	msg, err := c.ChatCompletion(context.Background(), []Message{
		{Role: RoleSystem, Content: "prompt"},
		{Role: RoleUser, Content: "hi"},
	}, nil)
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if msg.Content != "你好" {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestChatCompletionToolCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": Message{
					Role: RoleAssistant,
					ToolCalls: []ToolCall{{
						ID:   "call_1",
						Type: "function",
						Function: FunctionCall{
							Name:      "getDoctorInformation",
							Arguments: `{"doctorId":1}`,
						},
					}},
				}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	msg, err := c.ChatCompletion(context.Background(), []Message{{Role: RoleUser, Content: "查医生"}}, nil)
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if len(msg.ToolCalls) != 1 || msg.ToolCalls[0].Function.Name != "getDoctorInformation" {
		t.Errorf("tool calls = %+v", msg.ToolCalls)
	}
}

func TestChatCompletionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	if _, err := c.ChatCompletion(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, nil); err == nil {
		t.Fatal("expected error on 429 response")
	}
}
