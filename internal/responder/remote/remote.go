// Package remote implements the completion-backed responder. It formats the
// knowledge base plus the caller-provided conversation window into a chat
// chain invocation and classifies provider failures for the conversation
// engine.
package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/syam1133/portfolio-assistant/internal/model/chat"
	"github.com/syam1133/portfolio-assistant/internal/responder"
)

// EmptyCompletionReply substitutes for a success response that carried no
// usable text. It is not a failure and never reaches the apology path.
const EmptyCompletionReply = "Sorry, I could not generate a response."

// Responder invokes the configured chat model with one leading system
// instruction followed by the history window and the new query.
type Responder struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// New compiles the chat chain around chatModel. A nil model means remote mode
// was entered without a usable configuration, which is rejected here rather
// than at dispatch time.
func New(ctx context.Context, chatModel model.ChatModel, systemPrompt string) (*Responder, error) {
	if chatModel == nil {
		return nil, &responder.Error{Kind: responder.KindConfigMissing, Message: "chat model is not configured"}
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("system prompt is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.MessagesPlaceholder("history", true),
		schema.MessagesPlaceholder("query", false),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Responder{chain: runnable}, nil
}

// Respond performs exactly one completion call. History arrives already
// truncated by the caller and is forwarded unmodified.
func (r *Responder) Respond(ctx context.Context, history []chat.Message, query string) (string, error) {
	input := map[string]any{
		"history": toSchemaMessages(history),
		"query":   []*schema.Message{schema.UserMessage(query)},
	}

	response, err := r.chain.Invoke(ctx, input)
	if err != nil {
		return "", responder.Classify(fmt.Errorf("failed to run chat chain: %w", err))
	}

	if strings.TrimSpace(response.Content) == "" {
		return EmptyCompletionReply, nil
	}

	return response.Content, nil
}

// toSchemaMessages maps transcript turns to chat-completion messages. Only
// user and assistant turns are forwarded; the system instruction is injected
// by the prompt template.
func toSchemaMessages(history []chat.Message) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case chat.RoleUser:
			messages = append(messages, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return messages
}
