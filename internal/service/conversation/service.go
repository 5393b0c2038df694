// Package conversation owns the per-session transcript and the dispatch state
// machine around the selected responder.
package conversation

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/syam1133/portfolio-assistant/internal/model/chat"
	"github.com/syam1133/portfolio-assistant/internal/responder"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrBusy            = errors.New("a reply is already being generated for this session")
)

// historyLimit caps the trailing conversation window handed to the responder.
const historyLimit = 10

// session pairs the published session record with its append-only transcript
// and the busy flag guarding dispatch.
type session struct {
	info        chat.Session
	transcript  []chat.Message
	dispatching bool
}

// Service is the conversation engine. One responder, chosen at startup, is
// invoked for every turn of every session; failures are converted into
// apology turns and never escape to callers.
type Service struct {
	mu        sync.RWMutex
	responder responder.Responder
	mode      chat.Mode
	greeting  string
	sessions  map[string]*session
}

// NewService bootstraps the in-memory conversation engine. The greeting seeds
// every new transcript as its first assistant turn.
func NewService(rsp responder.Responder, mode chat.Mode, greeting string) *Service {
	return &Service{
		responder: rsp,
		mode:      mode,
		greeting:  greeting,
		sessions:  make(map[string]*session),
	}
}

// Mode reports the responder strategy selected at startup.
func (s *Service) Mode() chat.Mode {
	return s.mode
}

// CreateSession provisions an anonymous session whose transcript starts with
// the greeting turn.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	info := chat.Session{
		ID:        uuid.NewString(),
		Mode:      s.mode,
		CreatedAt: time.Now().UTC(),
	}

	greeting := chat.Message{
		ID:        uuid.NewString(),
		SessionID: info.ID,
		Role:      chat.RoleAssistant,
		Content:   s.greeting,
		CreatedAt: info.CreatedAt,
	}

	s.mu.Lock()
	s.sessions[info.ID] = &session{
		info:       info,
		transcript: append(make([]chat.Message, 0, 16), greeting),
	}
	s.mu.Unlock()

	return info, nil
}

// GetSession retrieves a session record by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return sess.info, nil
}

// Transcript returns a copy of the stored turns for the provided session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(sess.transcript))
	copy(copied, sess.transcript)
	return copied, nil
}

// Submit accepts one visitor turn. Whitespace-only input and submissions that
// arrive while a dispatch is in flight are rejected without touching the
// transcript; otherwise the user turn and exactly one assistant turn (the
// reply, or an apology specialized by the failure kind) are appended.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (chat.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return chat.Message{}, ErrSessionNotFound
	}
	if sess.dispatching {
		s.mu.Unlock()
		return chat.Message{}, ErrBusy
	}

	userMsg := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      chat.RoleUser,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}

	window := trailingWindow(sess.transcript)
	sess.transcript = append(sess.transcript, userMsg)
	sess.dispatching = true
	s.mu.Unlock()

	reply, err := s.responder.Respond(ctx, window, text)
	if err != nil {
		kind := responder.KindOf(err)
		log.Printf("[conversation] responder failed for session=%s kind=%s: %v", sessionID, kind, err)
		reply = apologyFor(kind)
	}

	assistantMsg := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      chat.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	sess.transcript = append(sess.transcript, assistantMsg)
	sess.dispatching = false
	s.mu.Unlock()

	return assistantMsg, nil
}

// trailingWindow copies the last historyLimit turns preceding the new
// submission. The responder receives at most these plus the new turn.
func trailingWindow(transcript []chat.Message) []chat.Message {
	start := 0
	if len(transcript) > historyLimit {
		start = len(transcript) - historyLimit
	}

	window := make([]chat.Message, len(transcript)-start)
	copy(window, transcript[start:])
	return window
}

// apologyFor maps a failure classification to the assistant turn shown to the
// visitor. The widget always stays interactive after a failure.
func apologyFor(kind responder.Kind) string {
	const prefix = "I'm having trouble responding right now. "

	switch kind {
	case responder.KindConfigMissing:
		return prefix + "Please check that the OpenAI API key is correctly configured on the server."
	case responder.KindQuotaOrBilling:
		return prefix + "It looks like the OpenAI account needs credits. Please check your billing at platform.openai.com."
	case responder.KindRateLimited:
		return prefix + "Rate limit reached. Please wait a moment and try again."
	default:
		return prefix + "Please try again in a moment."
	}
}
