package types

import (
	"fmt"
)

type Stack[T any] struct {
	data []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		data: make([]T, 0),
	}
}

func (s *Stack[T]) Push(val T) {
	s.data = append(s.data, val)
}

func (s *Stack[T]) Pop() (T, error) {
	var empty T
	if len(s.data) == 0 {
		return empty, fmt.Errorf("pop on empty stack")
	}

	val := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return val, nil
}

func (s *Stack[T]) Peek() (T, error) {
	var empty T
	if len(s.data) == 0 {
		return empty, fmt.Errorf("peek on empty stack")
	}
	return s.data[len(s.data)-1], nil
}

func (s *Stack[T]) Empty() bool {
	return len(s.data) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.data)
}

func (s *Stack[T]) Clear() {
	s.data = []T{}
}
