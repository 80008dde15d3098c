package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a", "b"}, "c"))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestAbsAndSign(t *testing.T) {
	require.Equal(t, 3, Abs(-3))
	require.Equal(t, 3, Abs(3))
	require.Equal(t, int64(0), Abs(int64(0)))
	require.Equal(t, -1, Sign(-7))
	require.Equal(t, 1, Sign(2))
	require.Equal(t, 0, Sign(0))
}

func TestWindow(t *testing.T) {
	t.Run("length never exceeds capacity", func(t *testing.T) {
		w := NewWindow[int](3)
		for i := 0; i < 10; i++ {
			w.Push(i)
			require.LessOrEqual(t, w.Len(), 3, "Window should stay bounded")
		}
		require.Equal(t, []int{7, 8, 9}, w.Items(), "Window should keep the newest items")
	})

	t.Run("drops oldest first", func(t *testing.T) {
		w := NewWindow[string](2)
		w.Push("a")
		w.Push("b")
		require.True(t, w.Contains("a"))
		w.Push("c")
		require.False(t, w.Contains("a"), "Oldest item should be dropped first")
		require.Equal(t, []string{"b", "c"}, w.Items())
	})

	t.Run("zero capacity keeps nothing", func(t *testing.T) {
		w := NewWindow[int](0)
		w.Push(1)
		require.Equal(t, 0, w.Len())
		require.False(t, w.Contains(1))
	})

	t.Run("items is a copy", func(t *testing.T) {
		w := NewWindow[int](2)
		w.Push(1)
		items := w.Items()
		items[0] = 42
		require.Equal(t, []int{1}, w.Items())
	})

	t.Run("panics with negative capacity", func(t *testing.T) {
		require.Panics(t, func() { NewWindow[int](-1) })
	})
}
