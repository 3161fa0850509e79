package summary

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaude3_5HaikuLatest,
		modelName: "claude-3.5-haiku",
	}
}

func (c *AnthropicClient) SummarizeWithGlossary(ctx context.Context, title, content, category string) (Result, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: buildSystemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(title, content, category))),
		},
	})

	if err != nil {
		return Result{}, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return Result{}, fmt.Errorf("no response from anthropic")
	}

	summaryText, glossaryText, err := parseSections(resp.Content[0].Text)
	if err != nil {
		return Result{}, fmt.Errorf("anthropic response: %w", err)
	}

	return Result{Summary: summaryText, Glossary: glossaryText}, nil
}
