package frobot

import (
	"context"
	"errors"
	"testing"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	content string
	err     error
	got     ai.ChatRequest
}

func (f *fakeChat) Provider() ai.Provider { return ai.ProviderGroq }

func (f *fakeChat) Complete(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &ai.ChatResponse{Content: f.content, Provider: ai.ProviderGroq, Usage: ai.Usage{InputTokens: 3, OutputTokens: 4}}, nil
}

func TestRequest_Conversation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    []ai.Message
		wantErr error
	}{
		{
			name: "messages with bot role",
			req: Request{Messages: []Turn{
				{Role: "bot", Content: "Hi! What's your business called?"},
				{Role: "user", Content: "Acme Spa"},
			}},
			want: []ai.Message{
				{Role: ai.RoleAssistant, Content: "Hi! What's your business called?"},
				{Role: ai.RoleUser, Content: "Acme Spa"},
			},
		},
		{
			name: "legacy message with history",
			req: Request{
				Message:             "We do massages",
				ConversationHistory: []Turn{{Role: "bot", Content: "Tell me more"}},
			},
			want: []ai.Message{
				{Role: ai.RoleAssistant, Content: "Tell me more"},
				{Role: ai.RoleUser, Content: "We do massages"},
			},
		},
		{
			name: "drops empty and unknown roles",
			req: Request{Messages: []Turn{
				{Role: "user", Content: ""},
				{Role: "narrator", Content: "meanwhile"},
				{Role: "user", Content: "hello"},
			}},
			want: []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
		},
		{name: "neither shape", req: Request{}, wantErr: ErrInvalidRequest},
		{name: "nothing valid", req: Request{Messages: []Turn{{Role: "user"}}}, wantErr: ErrNoMessages},
		{name: "empty messages array", req: Request{Messages: []Turn{}}, wantErr: ErrNoMessages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Conversation()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBot_Respond(t *testing.T) {
	chat := &fakeChat{content: "  Love it! What industry are you in?  "}
	bot := New(chat, "llama-3.1-8b-instant")

	reply := bot.Respond(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "Acme Spa"}})

	assert.Equal(t, "Love it! What industry are you in?", reply.Message)
	assert.False(t, reply.Fallback)
	assert.Equal(t, 7, reply.Usage.Total())

	require.Len(t, chat.got.Messages, 2)
	assert.Equal(t, SystemPrompt, chat.got.Messages[0].Content)
	assert.Equal(t, 1024, chat.got.MaxTokens)
	assert.Equal(t, "llama-3.1-8b-instant", chat.got.Model)
}

func TestBot_RespondFallbacks(t *testing.T) {
	msgs := []ai.Message{{Role: ai.RoleUser, Content: "hi"}}

	t.Run("upstream error", func(t *testing.T) {
		reply := New(&fakeChat{err: errors.New("boom")}, "").Respond(context.Background(), msgs)
		assert.Equal(t, HiccupReply, reply.Message)
		assert.True(t, reply.Fallback)
	})

	t.Run("no client", func(t *testing.T) {
		reply := New(nil, "").Respond(context.Background(), msgs)
		assert.Equal(t, HiccupReply, reply.Message)
		assert.True(t, reply.Fallback)
	})

	t.Run("empty completion", func(t *testing.T) {
		reply := New(&fakeChat{content: " "}, "").Respond(context.Background(), msgs)
		assert.Equal(t, EmptyReply, reply.Message)
		assert.False(t, reply.Fallback)
	})
}
