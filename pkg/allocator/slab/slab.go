// Package slab is a fixed-size block allocator over a caller supplied region.
// Freed blocks are kept on an intrusive singly linked list, so the most
// recently freed block is handed out first.
package slab

import (
	"github.com/pkg/errors"

	"go-freelist/pkg/freelist"
	"go-freelist/util/helpers"
	"go-freelist/util/logger"
)

var log = logger.For("slab")

type Region interface {
	Base() freelist.Addr
	Size() uintptr
}

func New(region Region, opts *Options) (*Allocator, error) {
	if uintptr(region.Base())%freelist.NodeAlign != 0 {
		return nil, errors.Wrapf(ErrMisaligned, "base %v", region.Base())
	}

	blockSize := helpers.AlignUp(helpers.Max(opts.BlockSize, freelist.NodeSize), freelist.NodeAlign)
	total := int(region.Size() / blockSize)
	if total == 0 {
		return nil, errors.Wrapf(ErrRegionTooSmall, "region %d, block %d", region.Size(), blockSize)
	}

	a := &Allocator{
		base:      region.Base(),
		blockSize: blockSize,
		total:     total,
	}
	a.init()

	log.WithField("blocks", total).WithField("block_size", blockSize).Debug("carved")
	return a, nil
}

// Allocator is not safe for concurrent use.
type Allocator struct {
	free      freelist.SinglyLinked
	base      freelist.Addr
	blockSize uintptr
	total     int
	available int
}

func (a *Allocator) Alloc() (freelist.Addr, error) {
	n := a.free.Pop()
	if n == nil {
		log.WithField("blocks", a.total).Warn("out of memory")
		return 0, ErrOutOfMemory
	}

	a.available--
	return n.Addr(), nil
}

// Free returns the block at addr to the slab. Freeing a block twice is not
// detected.
func (a *Allocator) Free(addr freelist.Addr) error {
	if !a.owns(addr) {
		return errors.Wrapf(ErrInvalidAddress, "%v", addr)
	}

	a.free.Push(freelist.FromAddr(addr))
	a.available++
	return nil
}

func (a *Allocator) BlockSize() uintptr {
	return a.blockSize
}

func (a *Allocator) Total() int {
	return a.total
}

func (a *Allocator) Available() int {
	return a.available
}

func (a *Allocator) owns(addr freelist.Addr) bool {
	if addr < a.base {
		return false
	}
	off := uintptr(addr - a.base)
	return off < uintptr(a.total)*a.blockSize && off%a.blockSize == 0
}

func (a *Allocator) init() {
	for i := a.total - 1; i >= 0; i-- {
		a.free.Push(freelist.FromAddr(a.block(i)))
	}
	a.available = a.total
}

func (a *Allocator) block(i int) freelist.Addr {
	return a.base + freelist.Addr(uintptr(i)*a.blockSize)
}
