package recruiter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoResponder struct {
	mu        sync.Mutex
	err       error
	turns     map[string][]string
	forgotten []string
}

func newEchoResponder() *echoResponder {
	return &echoResponder{turns: make(map[string][]string)}
}

func (e *echoResponder) Reply(ctx context.Context, userID, conversationID, text string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return "", e.err
	}
	e.turns[conversationID] = append(e.turns[conversationID], text)
	if text == openingTurn {
		return "Hi, I'm Alex from Innovate Inc.", nil
	}
	return "You said: " + text, nil
}

func (e *echoResponder) Forget(ctx context.Context, userID, conversationID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.forgotten = append(e.forgotten, conversationID)
	return nil
}

func TestChatConversation(t *testing.T) {
	r := newEchoResponder()
	c := NewChat(r, zap.NewNop())
	ctx := context.Background()

	msgs := c.Start(ctx, "student_1")
	require.Len(t, msgs, 1)
	assert.Equal(t, SenderBot, msgs[0].Sender)
	assert.Equal(t, "Hi, I'm Alex from Innovate Inc.", msgs[0].Text)

	msgs, err := c.Send(ctx, "student_1", "  What does a backend intern do?  ")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, SenderUser, msgs[1].Sender)
	assert.Equal(t, "What does a backend intern do?", msgs[1].Text)
	assert.Equal(t, "You said: What does a backend intern do?", msgs[2].Text)

	hist, err := c.History("student_1")
	require.NoError(t, err)
	assert.Equal(t, msgs, hist)
}

func TestChatFallsBackOnFailure(t *testing.T) {
	r := newEchoResponder()
	r.err = errors.New("quota exceeded")
	c := NewChat(r, zap.NewNop())

	msgs := c.Start(context.Background(), "student_2")
	require.Len(t, msgs, 1)
	assert.Equal(t, FallbackReply, msgs[0].Text)
}

func TestChatRequiresConversation(t *testing.T) {
	c := NewChat(newEchoResponder(), zap.NewNop())
	ctx := context.Background()

	_, err := c.Send(ctx, "student_3", "hello")
	assert.ErrorIs(t, err, ErrNoConversation)

	c.Start(ctx, "student_3")
	_, err = c.Send(ctx, "student_3", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestChatRestartForgetsOldSession(t *testing.T) {
	r := newEchoResponder()
	c := NewChat(r, zap.NewNop())
	ctx := context.Background()

	c.Start(ctx, "student_1")
	_, err := c.Send(ctx, "student_1", "hello")
	require.NoError(t, err)

	msgs := c.Start(ctx, "student_1")
	assert.Len(t, msgs, 1)
	assert.Len(t, r.forgotten, 1)

	c.End(ctx, "student_1")
	assert.Len(t, r.forgotten, 2)
	_, err = c.History("student_1")
	assert.ErrorIs(t, err, ErrNoConversation)
}
