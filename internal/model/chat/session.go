package chat

import "time"

// Mode is the session-wide choice between the local keyword responder and the
// remote completion model. It is decided once at startup from credential
// presence and never re-evaluated per message.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// Session captures a transient anonymous conversation. Transcripts live in
// memory only and are discarded when the process exits.
type Session struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
}
