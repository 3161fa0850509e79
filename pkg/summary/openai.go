package summary

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) SummarizeWithGlossary(ctx context.Context, title, content, category string) (Result, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(buildSystemPrompt()),
			openai.UserMessage(buildUserPrompt(title, content, category)),
		},
	})

	if err != nil {
		return Result{}, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("no response from openai")
	}

	summaryText, glossaryText, err := parseSections(resp.Choices[0].Message.Content)
	if err != nil {
		return Result{}, fmt.Errorf("openai response: %w", err)
	}

	return Result{Summary: summaryText, Glossary: glossaryText}, nil
}
