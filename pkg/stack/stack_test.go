package stack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := New[int](2)
	require.Zero(t, s.Size())

	_, ok := s.Pop()
	require.False(t, ok)
	_, ok = s.Top()
	require.False(t, ok)

	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	require.Equal(t, 5, s.Size())

	top, ok := s.Top()
	require.True(t, ok)
	require.Equal(t, 4, top)
	require.Equal(t, 5, s.Size())

	for i := 4; i >= 0; i-- {
		v, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Zero(t, s.Size())
}

func TestDrain(t *testing.T) {
	s := New[string](0)
	s.Push("a")
	s.Push("b")
	s.Push("c")

	got := []string{}
	require.NoError(t, s.Drain(func(v string) error {
		got = append(got, v)
		return nil
	}))
	require.Equal(t, []string{"c", "b", "a"}, got)
	require.Zero(t, s.Size())

	s.Push("a")
	s.Push("b")
	boom := errors.New("boom")
	err := s.Drain(func(v string) error {
		if v == "b" {
			return boom
		}
		return nil
	})
	require.Equal(t, boom, err)
	require.Equal(t, 1, s.Size())
}
