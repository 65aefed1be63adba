// Package frobot is the intake assistant that chats with a prospect and
// gathers what the brand pipeline needs.
package frobot

import (
	"context"
	"errors"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// SystemPrompt frames every conversation.
const SystemPrompt = `You are FroBot, a friendly and professional AI assistant for EZ Help Technology.

Your job is to have a natural conversation to gather business information. You should:
1. Be warm, enthusiastic, and encouraging
2. Ask follow-up questions if answers are vague
3. Acknowledge each answer before moving to the next topic
4. Keep responses concise (2-3 sentences max)

Information to gather:
- Business name
- Industry and target customers
- Brand style preference (modern, minimal, luxury, playful, etc.)
- Primary colors for branding
- Email address for delivery

After gathering all information, summarize what you learned and say you're ready to start building their package.`

// Canned replies.
const (
	HiccupReply = "I apologize for the brief hiccup! Let's continue - what were you saying?"
	EmptyReply  = "I apologize, I'm having trouble responding. Please try again."
)

const maxTokens = 1024

var (
	// ErrInvalidRequest means the body carried neither messages nor message.
	ErrInvalidRequest = errors.New("frobot: invalid request format")
	// ErrNoMessages means every supplied message was empty or had an unknown role.
	ErrNoMessages = errors.New("frobot: no valid messages provided")
)

// Turn is one client-side chat message. The widget labels its own turns
// "bot", which maps to the assistant role.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request accepts both the current {messages} body and the older
// {message, conversationHistory} body.
type Request struct {
	Messages            []Turn `json:"messages"`
	Message             string `json:"message"`
	ConversationHistory []Turn `json:"conversationHistory"`
}

// Conversation normalises the request into chat messages.
func (r Request) Conversation() ([]ai.Message, error) {
	var turns []Turn
	switch {
	case r.Messages != nil:
		turns = r.Messages
	case r.Message != "":
		turns = append(append(turns, r.ConversationHistory...), Turn{Role: string(ai.RoleUser), Content: r.Message})
	default:
		return nil, ErrInvalidRequest
	}

	msgs := Normalize(turns)
	if len(msgs) == 0 {
		return nil, ErrNoMessages
	}
	return msgs, nil
}

// Normalize maps "bot" to assistant and drops empty or unknown-role turns.
func Normalize(turns []Turn) []ai.Message {
	out := make([]ai.Message, 0, len(turns))
	for _, t := range turns {
		role := ai.Role(strings.TrimSpace(t.Role))
		if role == "bot" {
			role = ai.RoleAssistant
		}
		switch role {
		case ai.RoleUser, ai.RoleAssistant, ai.RoleSystem:
		default:
			continue
		}
		if t.Content == "" {
			continue
		}
		out = append(out, ai.Message{Role: role, Content: t.Content})
	}
	return out
}

// Reply is FroBot's answer to one conversation.
type Reply struct {
	Message  string
	Fallback bool
	Provider ai.Provider
	Usage    ai.Usage
}

// Bot answers intake conversations.
type Bot struct {
	chat  ai.ChatClient
	model string
}

// New returns a Bot. A nil chat client answers every turn with HiccupReply.
func New(chat ai.ChatClient, model string) *Bot {
	if model == "" {
		model = config.DefaultAgentModel
	}
	return &Bot{chat: chat, model: model}
}

// Respond sends the conversation behind the system prompt. Upstream failures
// are not errors: they produce HiccupReply with Fallback set.
func (b *Bot) Respond(ctx context.Context, conversation []ai.Message) Reply {
	if b.chat == nil {
		return Reply{Message: HiccupReply, Fallback: true}
	}

	msgs := make([]ai.Message, 0, len(conversation)+1)
	msgs = append(msgs, ai.Message{Role: ai.RoleSystem, Content: SystemPrompt})
	msgs = append(msgs, conversation...)

	resp, err := b.chat.Complete(ctx, ai.ChatRequest{
		Model:       b.model,
		Messages:    msgs,
		Temperature: ai.DefaultTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		logging.L().Warn("frobot completion failed",
			zap.String("provider", string(b.chat.Provider())),
			zap.Int("turns", len(conversation)),
			zap.Error(err),
		)
		return Reply{Message: HiccupReply, Fallback: true, Provider: b.chat.Provider()}
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		content = EmptyReply
	}
	return Reply{Message: content, Provider: resp.Provider, Usage: resp.Usage}
}
