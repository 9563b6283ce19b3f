// Package stack is a slice backed LIFO. It does not lock; callers serialise
// access.
package stack

type Stack[T any] struct {
	s []T
}

func New[T any](initialSize int) *Stack[T] {
	return &Stack[T]{s: make([]T, 0, initialSize)}
}

func (s *Stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

// Pop removes the top value. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (value T, ok bool) {
	l := len(s.s)
	if l == 0 {
		return value, false
	}

	value = s.s[l-1]
	var zero T
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value, true
}

func (s *Stack[T]) Top() (value T, ok bool) {
	if l := len(s.s); l > 0 {
		return s.s[l-1], true
	}
	return value, false
}

func (s *Stack[T]) Size() int {
	return len(s.s)
}

// Drain pops every value, top first, stopping at the first error fn returns.
func (s *Stack[T]) Drain(fn func(value T) error) error {
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
