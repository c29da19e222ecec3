package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStack(t *testing.T) *Stack[int] {
	s := NewStack[int]()
	for i := 0; i < 5; i += 1 {
		s.Push(i)
	}
	assert.Equal(t, 5, s.Len())
	return s
}

func TestStack_Pop(t *testing.T) {
	s := testStack(t)

	for i := s.Len() - 1; i >= 0; i -= 1 {
		got, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, i, got)
	}

	assert.True(t, s.Empty())

	// underflow
	_, err := s.Pop()
	assert.Error(t, err)
}

func TestStack_Peek(t *testing.T) {
	s := testStack(t)

	got, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 4, got)
	// peek must not consume
	assert.Equal(t, 5, s.Len())

	s.Clear()
	_, err = s.Peek()
	assert.Error(t, err)
}

func TestStack_Clear(t *testing.T) {
	s := testStack(t)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Empty())

	// reuse after clear
	s.Push(7)
	assert.Equal(t, 1, s.Len())
}
