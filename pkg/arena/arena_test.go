package arena

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"go-freelist/pkg/freelist"
)

func TestOpen(t *testing.T) {
	a, err := Open(&Options{Size: 100})
	require.NoError(t, err)
	defer a.Close()

	require.NotZero(t, a.Base())
	require.Equal(t, uintptr(os.Getpagesize()), a.Size())
	require.Zero(t, uintptr(a.Base())%uintptr(os.Getpagesize()))
	require.Len(t, a.Bytes(), os.Getpagesize())

	for _, b := range a.Bytes() {
		require.Zero(t, b)
	}
}

func TestOpenInvalidSize(t *testing.T) {
	_, err := Open(&Options{Size: 0})
	require.True(t, errors.Is(err, ErrInvalidSize))

	_, err = Open(&Options{Size: -5})
	require.True(t, errors.Is(err, ErrInvalidSize))
}

func TestClose(t *testing.T) {
	a, err := Open(&Options{Size: 4096})
	require.NoError(t, err)

	base := a.Base()
	require.NoError(t, a.Close())
	require.Equal(t, ErrClosed, a.Close())

	require.Zero(t, a.Base())
	require.Zero(t, a.Size())
	require.False(t, a.Has(base))
	_, err = a.Sub(0, 1)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestRegion(t *testing.T) {
	a, err := Open(&Options{Size: 8192})
	require.NoError(t, err)
	defer a.Close()

	require.True(t, a.Has(a.Base()))
	require.True(t, a.Has(a.End()-1))
	require.False(t, a.Has(a.End()))
	require.False(t, a.Has(a.Base()-1))
	require.Equal(t, uintptr(16), a.Offset(a.Base()+16))

	sub, err := a.Sub(1024, 512)
	require.NoError(t, err)
	require.Equal(t, a.Base()+1024, sub.Base())
	require.Equal(t, uintptr(512), sub.Size())
	require.False(t, sub.Has(a.Base()))
	require.True(t, sub.Has(a.Base()+1024+511))

	_, err = a.Sub(a.Size()-100, 512)
	require.True(t, errors.Is(err, ErrOutOfRange))
	_, err = a.Sub(0, 0)
	require.True(t, errors.Is(err, ErrOutOfRange))
	_, err = a.Sub(a.Size()+1, 1)
	require.True(t, errors.Is(err, ErrOutOfRange))

	r := NewRegion(sub.Base(), 64)
	require.Equal(t, sub.Base(), r.Base())
	require.Equal(t, sub.Base()+64, r.End())
}

func TestArenaBacksFreeList(t *testing.T) {
	a, err := Open(&Options{Size: 4096})
	require.NoError(t, err)
	defer a.Close()

	l := &freelist.DoublyLinked{}
	step := freelist.DoublyNodeSize
	for off := uintptr(0); off < 4*step; off += step {
		l.Push(freelist.DoublyFromAddr(a.Base() + freelist.Addr(off)))
	}

	require.Equal(t, 4, l.Len())
	require.True(t, l.Remove(a.Base()+freelist.Addr(2*step)))
	require.Equal(t, a.Base()+freelist.Addr(3*step), l.Pop().Addr())
	require.Equal(t, a.Base()+freelist.Addr(step), l.Pop().Addr())
	require.Equal(t, a.Base(), l.Pop().Addr())
	require.True(t, l.IsEmpty())
}
