package popzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c")

	require.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "c", top)

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_EmptyNeverUnderflows(t *testing.T) {
	s := NewStack[int]()

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStack_Remove(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		remove  string
		want    []string
		removed bool
	}{
		{"top", []string{"a", "b", "c"}, "c", []string{"a", "b"}, true},
		{"middle", []string{"a", "b", "c"}, "b", []string{"a", "c"}, true},
		{"bottom", []string{"a", "b", "c"}, "a", []string{"b", "c"}, true},
		{"missing", []string{"a", "b"}, "z", []string{"a", "b"}, false},
		{"topmost duplicate only", []string{"a", "b", "a"}, "a", []string{"a", "b"}, true},
		{"empty", nil, "a", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack[string]()
			for _, v := range tt.initial {
				s.Push(v)
			}

			assert.Equal(t, tt.removed, s.Remove(tt.remove))
			assert.Equal(t, tt.want, s.Items())
		})
	}
}

func TestStack_ContainsAndIsTop(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")

	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))
	assert.True(t, s.IsTop("b"))
	assert.False(t, s.IsTop("a"))
}

func TestStack_ItemsIsCopy(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")

	items := s.Items()
	items[0] = "mutated"

	top, _ := s.Peek()
	assert.Equal(t, "a", top)
}
