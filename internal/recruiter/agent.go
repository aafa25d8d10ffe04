package recruiter

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const (
	agentName   = "recruiter"
	instruction = `You are a friendly and professional tech recruiter named Alex from Innovate Inc.
Your goal is to have a natural conversation, ask about the student's interests, and answer
their questions about the company or roles. Keep your responses concise and conversational.`
)

// Agent answers as the recruiter through an ADK runner, keeping one agent
// session per conversation.
type Agent struct {
	runner   *runner.Runner
	sessions session.Service

	mu      sync.Mutex
	created map[string]bool
}

func NewAgent(ctx context.Context, apiKey, modelName string) (*Agent, error) {
	model, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	recruiter, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Mock tech recruiter for networking practice",
		Instruction: instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        agentName,
		Agent:          recruiter,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	return &Agent{runner: r, sessions: sessions, created: make(map[string]bool)}, nil
}

func (a *Agent) ensureSession(ctx context.Context, userID, conversationID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.created[conversationID] {
		return nil
	}
	_, err := a.sessions.Create(ctx, &session.CreateRequest{
		AppName:   agentName,
		UserID:    userID,
		SessionID: conversationID,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	a.created[conversationID] = true
	return nil
}

func (a *Agent) Reply(ctx context.Context, userID, conversationID, text string) (string, error) {
	if err := a.ensureSession(ctx, userID, conversationID); err != nil {
		return "", err
	}

	stream := a.runner.Run(ctx, userID, conversationID, &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: text},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	if output == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}

func (a *Agent) Forget(ctx context.Context, userID, conversationID string) error {
	a.mu.Lock()
	known := a.created[conversationID]
	delete(a.created, conversationID)
	a.mu.Unlock()

	if !known {
		return nil
	}
	return a.sessions.Delete(ctx, &session.DeleteRequest{
		AppName:   agentName,
		UserID:    userID,
		SessionID: conversationID,
	})
}
