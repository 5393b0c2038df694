package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/syam1133/portfolio-assistant/internal/model/chat"
	"github.com/syam1133/portfolio-assistant/internal/service/conversation"
)

type cannedResponder struct {
	reply string
}

func (c *cannedResponder) Respond(context.Context, []chatModel.Message, string) (string, error) {
	return c.reply, nil
}

func setupRouter(reply string) (*chi.Mux, *conversation.Service) {
	convSvc := conversation.NewService(&cannedResponder{reply: reply}, chatModel.ModeLocal, "Hi! I'm Syam's AI assistant. How can I help you today?")
	handler := New(convSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, convSvc
}

func TestCreateSessionReturnsGreetingTranscript(t *testing.T) {
	r, _ := setupRouter("ok")

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var payload struct {
		Session    chatModel.Session   `json:"session"`
		Transcript []chatModel.Message `json:"transcript"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Session.ID == "" {
		t.Fatal("expected session id")
	}
	if len(payload.Transcript) != 1 || payload.Transcript[0].Role != chatModel.RoleAssistant {
		t.Fatalf("expected greeting-seeded transcript, got %+v", payload.Transcript)
	}
}

func TestChatReturnsAssistantTurn(t *testing.T) {
	r, convSvc := setupRouter("canned reply")
	session, _ := convSvc.CreateSession(context.Background())

	body, _ := json.Marshal(map[string]string{"sessionId": session.ID, "message": "What are his skills?"})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var reply chatModel.Message
	if err := json.Unmarshal(resp.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if reply.Role != chatModel.RoleAssistant || reply.Content != "canned reply" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	r, convSvc := setupRouter("ok")
	session, _ := convSvc.CreateSession(context.Background())

	body, _ := json.Marshal(map[string]string{"sessionId": session.ID, "message": "   "})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatUnknownSession(t *testing.T) {
	r, _ := setupRouter("ok")

	body, _ := json.Marshal(map[string]string{"sessionId": "missing", "message": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestTranscriptEndpoint(t *testing.T) {
	r, convSvc := setupRouter("ok")
	session, _ := convSvc.CreateSession(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/session/"+session.ID+"/transcript", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var transcript []chatModel.Message
	if err := json.Unmarshal(resp.Body.Bytes(), &transcript); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(transcript) != 1 {
		t.Fatalf("expected greeting transcript, got %d turns", len(transcript))
	}
}

func TestTranscriptUnknownSession(t *testing.T) {
	r, _ := setupRouter("ok")

	req := httptest.NewRequest(http.MethodGet, "/session/missing/transcript", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
