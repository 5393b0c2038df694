package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatModel "github.com/syam1133/portfolio-assistant/internal/model/chat"
	"github.com/syam1133/portfolio-assistant/internal/service/conversation"
	"github.com/syam1133/portfolio-assistant/pkg/utils"
)

// SocketHandler serves the widget's bidirectional chat transport.
type SocketHandler struct {
	conv     *conversation.Service
	upgrader websocket.Upgrader
}

// NewSocket creates the websocket chat handler.
func NewSocket(conv *conversation.Service) *SocketHandler {
	return &SocketHandler{
		conv: conv,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the websocket chat route.
func (h *SocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type textPayload struct {
	Text string `json:"text"`
}

type outboundMessage struct {
	Type    string             `json:"type"`
	Message *chatModel.Message `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func (h *SocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := h.conv.GetSession(r.Context(), sessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[ws] read error for session=%s: %v", sessionID, err)
			}
			return
		}

		if in.Type != "message" {
			h.write(conn, sessionID, outboundMessage{Type: "error", Error: "unsupported message type"})
			continue
		}

		var payload textPayload
		if err := json.Unmarshal(in.Data, &payload); err != nil {
			h.write(conn, sessionID, outboundMessage{Type: "error", Error: "invalid message payload"})
			continue
		}

		reply, err := h.conv.Submit(r.Context(), sessionID, payload.Text)
		switch {
		case errors.Is(err, conversation.ErrBusy):
			h.write(conn, sessionID, outboundMessage{Type: "busy"})
		case errors.Is(err, conversation.ErrEmptyMessage):
			h.write(conn, sessionID, outboundMessage{Type: "error", Error: "message is empty"})
		case err != nil:
			h.write(conn, sessionID, outboundMessage{Type: "error", Error: "failed to generate reply"})
		default:
			h.write(conn, sessionID, outboundMessage{Type: "reply", Message: &reply})
		}
	}
}

func (h *SocketHandler) write(conn *websocket.Conn, sessionID string, out outboundMessage) {
	if err := conn.WriteJSON(out); err != nil {
		log.Printf("[ws] write error for session=%s: %v", sessionID, err)
	}
}
