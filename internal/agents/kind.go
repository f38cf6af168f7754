package agents

import "fmt"

// Kind enumerates the closed set of agent types the server exposes.
type Kind string

const (
	KindChat   Kind = "chat"
	KindSearch Kind = "search"
)

// ParseKind maps a wire-level agent type to a Kind. An empty string selects
// the chat agent; anything outside the enumeration is an error.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", string(KindChat):
		return KindChat, nil
	case string(KindSearch):
		return KindSearch, nil
	default:
		return "", fmt.Errorf("unknown agent type %q", s)
	}
}
