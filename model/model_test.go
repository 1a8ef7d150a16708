package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	m := NewMockModel("qwen-turbo")
	reg.Register("qwen-turbo", m)

	got, ok := reg.Resolve("qwen-turbo")
	require.True(t, ok)
	assert.Same(t, Model(m), got)

	_, ok = reg.Resolve("unknown")
	assert.False(t, ok)
}

func TestRegistry_ReplacesBinding(t *testing.T) {
	reg := NewRegistry()
	first := NewMockModel("id")
	second := NewMockModel("id")
	reg.Register("id", first)
	reg.Register("id", second)

	got, ok := reg.Resolve("id")
	require.True(t, ok)
	assert.Same(t, Model(second), got)
}

func TestRegistry_IDsSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", NewMockModel("b"))
	reg.Register("a", NewMockModel("a"))
	reg.Register("c", NewMockModel("c"))

	assert.Equal(t, []string{"a", "b", "c"}, reg.IDs())
}

func TestMockModel_MatchesInInsertionOrder(t *testing.T) {
	m := NewMockModel("mock")
	m.AddResponse("支持文件", "first match")
	m.AddResponse("文件", "broader match")

	out, err := m.Invoke(context.Background(), "请分析支持文件内容")
	require.NoError(t, err)
	assert.Equal(t, "first match", out)

	out, err = m.Invoke(context.Background(), "文件列表")
	require.NoError(t, err)
	assert.Equal(t, "broader match", out)
}

func TestMockModel_DefaultResponse(t *testing.T) {
	m := NewMockModel("mock")

	out, err := m.Invoke(context.Background(), "anything")
	require.NoError(t, err)
	assert.Contains(t, out, "Mock response to")
}

func TestMockModel_FailOnCall(t *testing.T) {
	m := NewMockModel("mock")
	wantErr := errors.New("scripted failure")
	m.FailOnCall(2, wantErr)

	_, err := m.Invoke(context.Background(), "one")
	require.NoError(t, err)

	_, err = m.Invoke(context.Background(), "two")
	assert.ErrorIs(t, err, wantErr)

	_, err = m.Invoke(context.Background(), "three")
	assert.NoError(t, err)

	assert.Equal(t, []string{"one", "two", "three"}, m.Calls())
}

func TestMockModel_HonorsContextCancellation(t *testing.T) {
	m := NewMockModel("mock")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Invoke(ctx, "prompt")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}
