package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tempdev/site/internal/apperr"
)

type mockChatService struct {
	replyFunc func(msg string) (string, error)
}

func (m *mockChatService) Reply(msg string) (string, error) {
	if m.replyFunc != nil {
		return m.replyFunc(msg)
	}
	return "hello", nil
}

func TestChatHandler_Chat_Success(t *testing.T) {
	var got string
	mock := &mockChatService{
		replyFunc: func(msg string) (string, error) {
			got = msg
			return "The Aurora GT starts at $48,900 before options.", nil
		},
	}
	h := NewChatHandler(mock)

	rec := post(h.Chat, "/api/chat", `{"message":"What does it cost?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != "What does it cost?" {
		t.Errorf("message not forwarded: %q", got)
	}
	var resp chatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK || resp.Reply != "The Aurora GT starts at $48,900 before options." {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestChatHandler_Chat_MessageRequired(t *testing.T) {
	mock := &mockChatService{
		replyFunc: func(msg string) (string, error) {
			return "", apperr.Validation("Message required.")
		},
	}
	h := NewChatHandler(mock)

	rec := post(h.Chat, "/api/chat", `{"message":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error != "Message required." {
		t.Errorf("unexpected error %q", env.Error)
	}
}

func TestChatHandler_Chat_InvalidJSON(t *testing.T) {
	h := NewChatHandler(&mockChatService{
		replyFunc: func(msg string) (string, error) {
			t.Error("service should not be called for malformed JSON")
			return "", nil
		},
	})

	rec := post(h.Chat, "/api/chat", "[")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
