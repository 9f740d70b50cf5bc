// Package query binds client calls to bubbletea. A Query holds one fetched
// collection and its loading flag; a Mutation runs a single remote change and
// tracks whether it is in flight. Both deliver their outcome as messages so
// the owning page stays the only writer of its state.
package query

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Result is delivered when a fetch started by Query.Fetch completes.
type Result[T any] struct {
	Key  string
	Data []T
	Err  error
}

// Query is the state of a collection fetch. A disabled query never fetches
// and always reports empty data.
type Query[T any] struct {
	Key     string
	Data    []T
	Loading bool
	Err     error
	Enabled bool
}

func New[T any](key string, enabled bool) Query[T] {
	return Query[T]{Key: key, Enabled: enabled, Data: []T{}}
}

// Fetch marks the query as loading and returns the command that performs fn.
// It returns nil when the query is disabled.
func (q *Query[T]) Fetch(ctx context.Context, fn func(context.Context) ([]T, error)) tea.Cmd {
	if !q.Enabled || fn == nil {
		return nil
	}
	q.Loading = true
	key := q.Key
	return func() tea.Msg {
		data, err := fn(ctx)
		return Result[T]{Key: key, Data: data, Err: err}
	}
}

// Apply stores a result addressed to this query and reports whether it did.
// A disabled query accepts nothing. A failed fetch keeps the previous data.
func (q *Query[T]) Apply(msg Result[T]) bool {
	if !q.Enabled || msg.Key != q.Key {
		return false
	}
	q.Loading = false
	q.Err = msg.Err
	if msg.Err != nil {
		return true
	}
	if msg.Data == nil {
		q.Data = []T{}
	} else {
		q.Data = msg.Data
	}
	return true
}
