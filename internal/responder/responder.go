package responder

import (
	"context"

	"github.com/syam1133/portfolio-assistant/internal/model/chat"
)

// Responder turns a visitor message into reply text. Implementations receive
// the trailing conversation window chosen by the caller and must not mutate
// it. History is already truncated by the conversation engine; responders do
// not truncate it further.
type Responder interface {
	Respond(ctx context.Context, history []chat.Message, query string) (string, error)
}
