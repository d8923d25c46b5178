package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())

	s.Push(42)
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(42, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(7, val)
	assert.Equal(1, s.Depth())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(3, val)
	assert.True(s.Empty())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(7, val)
	assert.Equal(2, s.Depth())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Peek()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)
	assert.Equal(2, s.Depth())

	s.Reset()
	assert.True(s.Empty())

	s.Reset()
	assert.True(s.Empty())
}

func TestStack_Deep(t *testing.T) {
	assert := assert.New(t)

	// No depth limit.
	s := &Stack{}
	for n := range 1000 {
		s.Push(n)
	}
	assert.Equal(1000, s.Depth())

	for n := 999; n >= 0; n-- {
		val, ok := s.Pop()
		assert.True(ok)
		assert.Equal(n, val)
	}
	assert.True(s.Empty())
}
