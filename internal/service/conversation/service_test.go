package conversation_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/syam1133/portfolio-assistant/internal/model/chat"
	"github.com/syam1133/portfolio-assistant/internal/responder"
	"github.com/syam1133/portfolio-assistant/internal/service/conversation"
)

const testGreeting = "Hi! I'm Syam's AI assistant. How can I help you today?"

type stubResponder struct {
	mu      sync.Mutex
	reply   string
	err     error
	windows [][]chat.Message
	queries []string
}

func (s *stubResponder) Respond(_ context.Context, history []chat.Message, query string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	window := make([]chat.Message, len(history))
	copy(window, history)
	s.windows = append(s.windows, window)
	s.queries = append(s.queries, query)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestService(rsp responder.Responder) *conversation.Service {
	return conversation.NewService(rsp, chat.ModeLocal, testGreeting)
}

func TestCreateSessionSeedsGreeting(t *testing.T) {
	svc := newTestService(&stubResponder{reply: "ok"})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	transcript, err := svc.Transcript(ctx, session.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}

	if len(transcript) != 1 {
		t.Fatalf("expected exactly one seeded turn, got %d", len(transcript))
	}
	if transcript[0].Role != chat.RoleAssistant || transcript[0].Content != testGreeting {
		t.Fatalf("unexpected greeting turn: %+v", transcript[0])
	}
}

func TestSubmitAppendsUserAndAssistantTurns(t *testing.T) {
	stub := &stubResponder{reply: "he knows his stuff"}
	svc := newTestService(stub)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	reply, err := svc.Submit(ctx, session.ID, "  What are his skills?  ")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if reply.Role != chat.RoleAssistant || reply.Content != "he knows his stuff" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	transcript, _ := svc.Transcript(ctx, session.ID)
	if len(transcript) != 3 {
		t.Fatalf("expected transcript of 3 turns, got %d", len(transcript))
	}
	if transcript[1].Role != chat.RoleUser || transcript[1].Content != "What are his skills?" {
		t.Fatalf("expected trimmed user turn, got %+v", transcript[1])
	}
	if transcript[2].Content != "he knows his stuff" {
		t.Fatalf("expected assistant turn last, got %+v", transcript[2])
	}
}

func TestSubmitEmptyMessageIsNoOp(t *testing.T) {
	stub := &stubResponder{reply: "ok"}
	svc := newTestService(stub)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	for _, input := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Submit(ctx, session.ID, input); err != conversation.ErrEmptyMessage {
			t.Fatalf("Submit(%q) expected ErrEmptyMessage, got %v", input, err)
		}
	}

	transcript, _ := svc.Transcript(ctx, session.ID)
	if len(transcript) != 1 {
		t.Fatalf("transcript changed on empty submissions: %d turns", len(transcript))
	}
	if len(stub.queries) != 0 {
		t.Fatalf("responder invoked for empty submission")
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	svc := newTestService(&stubResponder{reply: "ok"})

	if _, err := svc.Submit(context.Background(), "missing", "hello"); err != conversation.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

type blockingResponder struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingResponder) Respond(context.Context, []chat.Message, string) (string, error) {
	close(b.started)
	<-b.release
	return "done", nil
}

func TestSubmitWhileDispatchingIsRejected(t *testing.T) {
	blocking := &blockingResponder{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestService(blocking)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := svc.Submit(ctx, session.ID, "first"); err != nil {
			t.Errorf("first Submit err: %v", err)
		}
	}()

	<-blocking.started
	if _, err := svc.Submit(ctx, session.ID, "second"); err != conversation.ErrBusy {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(blocking.release)
	<-done

	transcript, _ := svc.Transcript(ctx, session.ID)
	if len(transcript) != 3 {
		t.Fatalf("expected 3 turns after rejected submission, got %d", len(transcript))
	}
}

func TestSubmitFailureAppendsApology(t *testing.T) {
	stub := &stubResponder{err: &responder.Error{Kind: responder.KindRateLimited, Message: "rate limit"}}
	svc := newTestService(stub)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	reply, err := svc.Submit(ctx, session.ID, "hello")
	if err != nil {
		t.Fatalf("Submit must not surface responder failures, got %v", err)
	}
	if !strings.Contains(reply.Content, "Rate limit reached. Please wait a moment and try again.") {
		t.Fatalf("expected rate-limit apology, got %q", reply.Content)
	}

	transcript, _ := svc.Transcript(ctx, session.ID)
	if len(transcript) != 3 {
		t.Fatalf("expected 3 turns after failure, got %d", len(transcript))
	}

	// The engine returns to idle: a follow-up submission is accepted.
	stub.err = nil
	stub.reply = "recovered"
	if _, err := svc.Submit(ctx, session.ID, "try again"); err != nil {
		t.Fatalf("follow-up Submit err: %v", err)
	}
}

func TestSubmitFailureKinds(t *testing.T) {
	cases := []struct {
		kind responder.Kind
		want string
	}{
		{responder.KindConfigMissing, "API key is correctly configured"},
		{responder.KindQuotaOrBilling, "needs credits"},
		{responder.KindRateLimited, "Rate limit reached"},
		{responder.KindProviderGeneric, "try again in a moment"},
	}

	for _, tc := range cases {
		stub := &stubResponder{err: &responder.Error{Kind: tc.kind, Message: "boom"}}
		svc := newTestService(stub)
		ctx := context.Background()
		session, _ := svc.CreateSession(ctx)

		reply, err := svc.Submit(ctx, session.ID, "hello")
		if err != nil {
			t.Fatalf("Submit err for kind %s: %v", tc.kind, err)
		}
		if !strings.Contains(reply.Content, tc.want) {
			t.Fatalf("kind %s: expected apology containing %q, got %q", tc.kind, tc.want, reply.Content)
		}
	}
}

func TestSubmitWindowsTrailingTenTurns(t *testing.T) {
	stub := &stubResponder{reply: "ack"}
	svc := newTestService(stub)
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)

	for i := 1; i <= 11; i++ {
		if _, err := svc.Submit(ctx, session.ID, fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Submit %d err: %v", i, err)
		}
	}

	if len(stub.windows) != 11 {
		t.Fatalf("expected 11 responder calls, got %d", len(stub.windows))
	}

	// First submission sees only the greeting.
	if len(stub.windows[0]) != 1 || stub.windows[0][0].Role != chat.RoleAssistant {
		t.Fatalf("unexpected first window: %+v", stub.windows[0])
	}

	// The 11th submission sees exactly the 10 most recent prior turns; the
	// greeting and the oldest exchanges have fallen out of the window.
	last := stub.windows[10]
	if len(last) != 10 {
		t.Fatalf("expected window of 10 turns, got %d", len(last))
	}
	if last[0].Role != chat.RoleUser || last[0].Content != "message 6" {
		t.Fatalf("unexpected oldest window turn: %+v", last[0])
	}
	if last[9].Role != chat.RoleAssistant {
		t.Fatalf("expected window to end with prior assistant turn, got %+v", last[9])
	}
	if stub.queries[10] != "message 11" {
		t.Fatalf("expected new turn passed as query, got %q", stub.queries[10])
	}
}
