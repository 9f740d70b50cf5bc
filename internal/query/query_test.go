package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-loco/workspaces/internal/query"
)

func TestQueryFetchApply(t *testing.T) {
	q := query.New[string]("entities", true)
	assert.NotNil(t, q.Data)

	cmd := q.Fetch(context.Background(), func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NotNil(t, cmd)
	assert.True(t, q.Loading)

	msg, ok := cmd().(query.Result[string])
	require.True(t, ok)
	assert.True(t, q.Apply(msg))
	assert.False(t, q.Loading)
	assert.Equal(t, []string{"a", "b"}, q.Data)
}

func TestQueryNilDataDefaultsToEmpty(t *testing.T) {
	q := query.New[int]("n", true)
	q.Apply(query.Result[int]{Key: "n"})
	assert.NotNil(t, q.Data)
	assert.Empty(t, q.Data)
}

func TestQueryErrorKeepsData(t *testing.T) {
	q := query.New[int]("n", true)
	q.Apply(query.Result[int]{Key: "n", Data: []int{1}})
	q.Apply(query.Result[int]{Key: "n", Err: errors.New("down")})
	assert.Equal(t, []int{1}, q.Data)
	assert.EqualError(t, q.Err, "down")
}

func TestQueryIgnoresOtherKeys(t *testing.T) {
	q := query.New[int]("mine", true)
	assert.False(t, q.Apply(query.Result[int]{Key: "theirs", Data: []int{1}}))
	assert.Empty(t, q.Data)
}

func TestDisabledQueryNeverFetches(t *testing.T) {
	q := query.New[int]("n", false)
	called := false
	cmd := q.Fetch(context.Background(), func(context.Context) ([]int, error) {
		called = true
		return nil, nil
	})
	assert.Nil(t, cmd)
	assert.False(t, q.Loading)
	assert.False(t, called)
}

func TestDisabledQueryIgnoresResults(t *testing.T) {
	q := query.New[int]("n", false)
	assert.False(t, q.Apply(query.Result[int]{Key: "n", Data: []int{1}}))
	assert.Empty(t, q.Data)
	assert.False(t, q.Loading)
}

func TestMutation(t *testing.T) {
	m := query.NewMutation("create")
	cmd := m.Run(context.Background(), func(context.Context) (any, error) {
		return 42, nil
	})
	assert.True(t, m.Pending)

	done, ok := cmd().(query.Done)
	require.True(t, ok)
	assert.False(t, m.Finish(query.Done{Key: "other"}))
	assert.True(t, m.Pending)
	assert.True(t, m.Finish(done))
	assert.False(t, m.Pending)
	assert.Equal(t, 42, done.Value)
}
