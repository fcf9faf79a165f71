package popzy

// Stack is an ordered record of open values, last-in-first-out. It is owned by
// a single coordinator and is not safe for concurrent use.
type Stack[T comparable] struct {
	items []T
}

// NewStack creates an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value. Returns false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Remove deletes the topmost occurrence of v, wherever it sits in the stack.
// Returns false if v is not present.
func (s *Stack[T]) Remove(v T) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] != v {
			continue
		}
		copy(s.items[i:], s.items[i+1:])
		var zero T
		s.items[len(s.items)-1] = zero
		s.items = s.items[:len(s.items)-1]
		return true
	}
	return false
}

// Contains reports whether v is on the stack.
func (s *Stack[T]) Contains(v T) bool {
	for _, item := range s.items {
		if item == v {
			return true
		}
	}
	return false
}

// IsTop reports whether v is the topmost value.
func (s *Stack[T]) IsTop(v T) bool {
	top, ok := s.Peek()
	return ok && top == v
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack has no values.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a copy of the stack contents ordered bottom to top.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
