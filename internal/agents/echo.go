package agents

import "context"

// EchoCompleter is the fallback engine used when no real AI backend is
// configured. It reflects the prompt back so the HTTP contract stays
// exercisable end to end.
type EchoCompleter struct{}

func NewEchoCompleter() *EchoCompleter {
	return &EchoCompleter{}
}

func (e *EchoCompleter) Complete(ctx context.Context, prompt string) (string, map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	return "Echo: " + prompt, map[string]any{"engine": "echo"}, nil
}
