package workload

import (
	"github.com/pkg/errors"

	"go-freelist/pkg/freelist"
)

var ErrTooLarge = errors.New("request exceeds block size")

// Allocator hands out blocks by size. Free gets the size passed to Alloc.
type Allocator interface {
	Alloc(size uintptr) (freelist.Addr, error)
	Free(addr freelist.Addr, size uintptr) error
}

// FixedAllocator hands out blocks of one size.
type FixedAllocator interface {
	Alloc() (freelist.Addr, error)
	Free(addr freelist.Addr) error
	BlockSize() uintptr
}

// Fixed adapts a FixedAllocator, rejecting requests larger than its block.
func Fixed(a FixedAllocator) Allocator {
	return &fixed{a}
}

type fixed struct {
	a FixedAllocator
}

func (f *fixed) Alloc(size uintptr) (freelist.Addr, error) {
	if size > f.a.BlockSize() {
		return 0, errors.Wrapf(ErrTooLarge, "size %d, block %d", size, f.a.BlockSize())
	}
	return f.a.Alloc()
}

func (f *fixed) Free(addr freelist.Addr, _ uintptr) error {
	return f.a.Free(addr)
}
