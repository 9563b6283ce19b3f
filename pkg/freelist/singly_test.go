package freelist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func fmtAddr(a Addr) string {
	return fmt.Sprintf("%v", a)
}

func TestSinglyLinked_Basic(t *testing.T) {
	addrs := newPool(t, 2)
	l := &SinglyLinked{}
	require.True(t, l.IsEmpty())

	l.Push(FromAddr(addrs[0]))
	l.Push(FromAddr(addrs[1]))
	require.False(t, l.IsEmpty())

	require.Equal(t, FromAddr(addrs[1]), l.Pop())
	require.Equal(t, FromAddr(addrs[0]), l.Pop())
	require.True(t, l.IsEmpty())
}

func TestSinglyLinked_PopEmpty(t *testing.T) {
	l := &SinglyLinked{}
	require.Nil(t, l.Pop())
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
}

func TestSinglyLinked_LIFO(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			addrs := newPool(t, n)
			l := &SinglyLinked{}

			for i, addr := range addrs {
				l.Push(FromAddr(addr))
				require.Equal(t, i+1, l.Len())
			}

			for i := n - 1; i >= 0; i-- {
				node := l.Pop()
				require.NotNil(t, node)
				require.Equal(t, addrs[i], node.Addr())
			}
			require.True(t, l.IsEmpty())
			require.Nil(t, l.Pop())
		})
	}
}

func TestSinglyLinked_Interleaved(t *testing.T) {
	addrs := newPool(t, 4)
	l := &SinglyLinked{}

	l.Push(FromAddr(addrs[0]))
	l.Push(FromAddr(addrs[1]))
	require.Equal(t, addrs[1], l.Pop().Addr())

	l.Push(FromAddr(addrs[2]))
	l.Push(FromAddr(addrs[3]))
	require.Equal(t, addrs[3], l.Pop().Addr())
	require.Equal(t, addrs[2], l.Pop().Addr())
	require.Equal(t, addrs[0], l.Pop().Addr())
	require.True(t, l.IsEmpty())
}

func TestSinglyLinked_ReuseAfterPop(t *testing.T) {
	addrs := newPool(t, 2)
	l := &SinglyLinked{}

	l.Push(FromAddr(addrs[0]))
	l.Push(FromAddr(addrs[1]))
	popped := l.Pop()

	// pushing a popped node again must not resurrect its stale successor
	other := &SinglyLinked{}
	other.Push(popped)
	require.Equal(t, 1, other.Len())
	require.True(t, popped.IsEmpty())
	require.Equal(t, 1, l.Len())
}
