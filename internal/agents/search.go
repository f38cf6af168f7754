package agents

import (
	"context"
	"fmt"
)

// SearchAgent wraps queries in a search-and-summarize framing before
// delegating to the engine.
type SearchAgent struct {
	completer Completer
}

func NewSearchAgent(completer Completer) *SearchAgent {
	return &SearchAgent{completer: completer}
}

// SearchPrompt frames a raw query the way the search agent expects it.
func SearchPrompt(query string) string {
	return fmt.Sprintf("Search for information about: %s. Provide a comprehensive summary with key findings.", query)
}

func (a *SearchAgent) Execute(ctx context.Context, prompt string) (*Result, error) {
	content, metadata, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return &Result{Content: content, Metadata: metadata}, nil
}

func (a *SearchAgent) Capabilities() []string {
	return []string{"web_search", "summarization", "source_tracking"}
}

// SourcesCount extracts the number of sources the engine consulted from
// result metadata. Engines report it either as tool_run_count or tools_used.
func SourcesCount(metadata map[string]any) int {
	for _, key := range []string{"tool_run_count", "tools_used"} {
		switch v := metadata[key].(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return 0
}
