package speech

import "context"

// Provider synthesizes spoken audio from narration text. Format names
// the container the provider emits ("mp3", "wav"), so callers can name
// clip files to match and downstream muxers pick the right container.
type Provider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Format() string
}
