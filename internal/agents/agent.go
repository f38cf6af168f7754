// Package agents defines the contract between the HTTP layer and the AI
// agent engine, plus the registry that owns agent construction.
//
// The engine itself is an external collaborator behind the Completer seam;
// agents only frame prompts, delegate, and report capabilities.
package agents

import "context"

// Result is the outcome of one agent execution.
type Result struct {
	Content  string
	Metadata map[string]any
}

// Agent executes a prompt and reports its capabilities.
type Agent interface {
	Execute(ctx context.Context, prompt string) (*Result, error)
	Capabilities() []string
}

// Completer is the execute-and-return seam to the AI engine. The returned
// metadata is passed through to clients untouched.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, map[string]any, error)
}
