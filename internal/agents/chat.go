package agents

import "context"

// ChatAgent answers free-form conversational prompts.
type ChatAgent struct {
	completer Completer
}

func NewChatAgent(completer Completer) *ChatAgent {
	return &ChatAgent{completer: completer}
}

func (a *ChatAgent) Execute(ctx context.Context, prompt string) (*Result, error) {
	content, metadata, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return &Result{Content: content, Metadata: metadata}, nil
}

func (a *ChatAgent) Capabilities() []string {
	return []string{"general_conversation", "analysis", "summarization"}
}
