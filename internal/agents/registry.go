package agents

// Registry holds one agent instance per Kind. It is built once at startup
// from the closed enumeration and is read-only afterwards, so it is safe for
// concurrent use by request handlers.
type Registry struct {
	agents map[Kind]Agent
}

// NewRegistry constructs every agent in the enumeration against the given
// completer.
func NewRegistry(completer Completer) *Registry {
	return &Registry{
		agents: map[Kind]Agent{
			KindChat:   NewChatAgent(completer),
			KindSearch: NewSearchAgent(completer),
		},
	}
}

// Get returns the agent for kind. The bool is false only for a Kind value
// outside the enumeration.
func (r *Registry) Get(kind Kind) (Agent, bool) {
	a, ok := r.agents[kind]
	return a, ok
}
