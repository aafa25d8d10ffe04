package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"github.com/muhammadolammi/aithera/internal/resume"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const analyzerAgentName = "resume analyzer"

// resumeAnalyzer scores resumes with an ADK agent. Every call runs in its
// own agent session, deleted once the answer is in.
type resumeAnalyzer struct {
	runner   *runner.Runner
	sessions session.Service
}

var _ resume.Analyzer = (*resumeAnalyzer)(nil)

func newResumeAnalyzer(ctx context.Context, apiKey, modelName string) (*resumeAnalyzer, error) {
	model, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	analyzer, err := llmagent.New(llmagent.Config{
		Name:        analyzerAgentName,
		Model:       model,
		Description: "Analyze Resume",
		Instruction: prompt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        analyzer.Name(),
		Agent:          analyzer,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	return &resumeAnalyzer{runner: r, sessions: sessions}, nil
}

func (a *resumeAnalyzer) Analyze(ctx context.Context, job messaging.Job, resumeText string) (string, error) {
	created, err := a.sessions.Create(ctx, &session.CreateRequest{
		AppName:   analyzerAgentName,
		UserID:    job.StudentID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	sess := created.Session
	defer func() {
		_ = a.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   sess.AppName(),
			UserID:    sess.UserID(),
			SessionID: sess.ID(),
		})
	}()

	stream := a.runner.Run(ctx, sess.UserID(), sess.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: analysisMessage(job, resumeText)},
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
