// Package llm wraps the external text-generation service behind a small
// interface so handlers can be exercised with a fake client.
package llm

import "context"

// Message is one prior conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries everything needed for one coach completion. The
// context block is prepended as non-user-authored system context ahead
// of the bounded history and the user's message.
type Request struct {
	SystemPersona string
	ContextBlock  string
	History       []Message
	UserMessage   string
	MaxTokens     int
}

// Client generates coach replies. Implementations must honor ctx
// cancellation; callers treat every error as transient and never retry
// automatically.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
