// Package recruiter runs the mock recruiter conversation students can
// practise networking with.
package recruiter

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/models"
	"go.uber.org/zap"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"

	// FallbackReply stands in for the recruiter when the model cannot answer.
	FallbackReply = "I'm sorry, I'm having trouble connecting right now. Could you repeat that?"

	openingTurn = "Start the conversation: greet the student and ask what kind of role they are interested in."
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrNoConversation = errors.New("no conversation in progress")
)

// Responder produces the recruiter's next line in a conversation.
type Responder interface {
	Reply(ctx context.Context, userID, conversationID, text string) (string, error)
	Forget(ctx context.Context, userID, conversationID string) error
}

type conversation struct {
	id       string
	messages []models.ChatMessage
}

// Chat keeps one conversation per user.
type Chat struct {
	responder Responder
	log       *zap.Logger

	mu            sync.Mutex
	conversations map[string]*conversation
}

func NewChat(responder Responder, log *zap.Logger) *Chat {
	return &Chat{responder: responder, log: log.Named("recruiter"), conversations: make(map[string]*conversation)}
}

// Start opens a fresh conversation with the recruiter's greeting.
func (c *Chat) Start(ctx context.Context, userID string) []models.ChatMessage {
	c.End(ctx, userID)

	conv := &conversation{id: uuid.NewString()}
	conv.messages = append(conv.messages, c.botMessage(c.reply(ctx, userID, conv.id, openingTurn)))

	c.mu.Lock()
	c.conversations[userID] = conv
	c.mu.Unlock()
	return cloneMessages(conv.messages)
}

// Send adds the student's message and the recruiter's answer.
func (c *Chat) Send(ctx context.Context, userID, text string) ([]models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	c.mu.Lock()
	conv, ok := c.conversations[userID]
	c.mu.Unlock()
	if !ok {
		return nil, ErrNoConversation
	}

	answer := c.reply(ctx, userID, conv.id, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conversations[userID] != conv {
		return nil, ErrNoConversation
	}
	conv.messages = append(conv.messages,
		models.ChatMessage{ID: "chat_" + uuid.NewString(), Text: text, Sender: SenderUser},
		c.botMessage(answer),
	)
	return cloneMessages(conv.messages), nil
}

func (c *Chat) History(userID string) ([]models.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	conv, ok := c.conversations[userID]
	if !ok {
		return nil, ErrNoConversation
	}
	return cloneMessages(conv.messages), nil
}

// End drops the user's conversation, if any.
func (c *Chat) End(ctx context.Context, userID string) {
	c.mu.Lock()
	conv, ok := c.conversations[userID]
	delete(c.conversations, userID)
	c.mu.Unlock()

	if !ok {
		return
	}
	if err := c.responder.Forget(ctx, userID, conv.id); err != nil {
		c.log.Warn("failed to delete agent session", zap.String("user_id", userID), zap.Error(err))
	}
}

func (c *Chat) reply(ctx context.Context, userID, conversationID, text string) string {
	answer, err := c.responder.Reply(ctx, userID, conversationID, text)
	if err != nil || strings.TrimSpace(answer) == "" {
		c.log.Error("Error getting chatbot response", zap.String("user_id", userID), zap.Error(err))
		return FallbackReply
	}
	return strings.TrimSpace(answer)
}

func (c *Chat) botMessage(text string) models.ChatMessage {
	return models.ChatMessage{ID: "chat_" + uuid.NewString(), Text: text, Sender: SenderBot}
}

func cloneMessages(m []models.ChatMessage) []models.ChatMessage {
	return append([]models.ChatMessage(nil), m...)
}
