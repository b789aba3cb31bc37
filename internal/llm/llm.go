package llm

import "context"

// Client produces the raw lecture payload for a topic prompt. The
// response is free text expected to parse as the lecture JSON schema
// after fence-stripping.
type Client interface {
	GenerateLecture(ctx context.Context, prompt string) (string, error)
}
