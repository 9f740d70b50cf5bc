package query

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Done is delivered when a mutation completes. Value carries whatever the
// mutation function returned.
type Done struct {
	Key   string
	Value any
	Err   error
}

// Mutation tracks a single kind of remote change, such as "create entity".
type Mutation struct {
	Key     string
	Pending bool
}

func NewMutation(key string) Mutation {
	return Mutation{Key: key}
}

// Run marks the mutation pending and returns the command that performs fn.
func (m *Mutation) Run(ctx context.Context, fn func(context.Context) (any, error)) tea.Cmd {
	m.Pending = true
	key := m.Key
	return func() tea.Msg {
		v, err := fn(ctx)
		return Done{Key: key, Value: v, Err: err}
	}
}

// Finish clears the pending flag for a Done addressed to this mutation and
// reports whether it matched.
func (m *Mutation) Finish(msg Done) bool {
	if msg.Key != m.Key {
		return false
	}
	m.Pending = false
	return true
}
