package groq

import (
	"context"
	"fmt"

	"github.com/conneroisu/groq-go"

	"lecturecast/internal/llm"
)

var _ llm.Client = (*Client)(nil)

const systemPrompt = `You are an educational content generator.
Given a topic, target audience, and duration, produce:
1. A structured slide outline with detailed content (title, comprehensive bullet points with explanations, detailed narration script). The narration script for each slide should be long enough to be read in approximately 25 seconds at a normal speaking pace.
2. 3 multiple-choice quiz questions with explanations.
Format output in valid JSON with detailed content.
{
    "slides": [
        {
            "title": "Slide Title",
            "content": ["bullet point 1", "bullet point 2", "bullet point 3"],
            "script": "Narration script for this slide"
        }
    ],
    "quiz": [
        {
            "question": "Question text",
            "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
            "answer": "Correct option"
        }
    ]
}`

type Client struct {
	client *groq.Client
	model  groq.ChatModel
}

func NewClient(apiKey, model string) (*Client, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &Client{
		client: client,
		model:  groq.ChatModel(model),
	}, nil
}

func (c *Client) GenerateLecture(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: systemPrompt},
			{Role: groq.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	return content, nil
}
