package planner

import (
	"context"
	"strings"

	generativeAI "github.com/FACorreiaa/go-genai-sdk/lib"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Generator is the AI collaborator contract: one prompt in, free-form text
// out. The service treats errors and empty text as fatal to the current
// generation attempt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator backs Generator with the Gemini API.
type GeminiGenerator struct {
	client *generativeAI.LLMChatClient
	config *genai.GenerateContentConfig
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := generativeAI.NewLLMChatClient(ctx, apiKey)
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return &GeminiGenerator{
		client: client,
		config: &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.7),
		},
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := g.client.GenerateResponse(ctx, prompt, g.config)
	if err != nil {
		return "", err
	}
	if response == nil || len(response.Candidates) == 0 {
		// Surfaced as an empty upstream response by the caller.
		return "", nil
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

// OpenAIGenerator backs Generator with the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		// Surfaced as an empty upstream response by the caller.
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
