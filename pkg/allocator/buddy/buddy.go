// Package buddy is a power-of-two block allocator. Each order keeps its free
// blocks on an intrusive doubly linked list so a freed block can pull its
// buddy out of the middle of a list when the two coalesce.
package buddy

import (
	"github.com/pkg/errors"

	"go-freelist/pkg/freelist"
	"go-freelist/util/helpers"
	"go-freelist/util/logger"
)

var log = logger.For("buddy")

// maxOrder keeps MinBlockSize<<MaxOrder within a 32-bit address space too.
const maxOrder = 30

type Region interface {
	Base() freelist.Addr
	Size() uintptr
}

func New(region Region, opts *Options) (*Allocator, error) {
	if !helpers.IsPowerOfTwo(opts.MinBlockSize) || opts.MinBlockSize < freelist.DoublyNodeSize {
		return nil, errors.Wrapf(ErrInvalidOptions, "min block size %d", opts.MinBlockSize)
	}
	if opts.MaxOrder < 0 || opts.MaxOrder > maxOrder {
		return nil, errors.Wrapf(ErrInvalidOptions, "max order %d", opts.MaxOrder)
	}
	if uintptr(region.Base())%freelist.NodeAlign != 0 {
		return nil, errors.Wrapf(ErrInvalidOptions, "misaligned base %v", region.Base())
	}

	a := &Allocator{
		base:     region.Base(),
		minBlock: opts.MinBlockSize,
		maxOrder: opts.MaxOrder,
		free:     make([]freelist.DoublyLinked, opts.MaxOrder+1),
	}
	if region.Size() < a.blockSize(a.maxOrder) {
		return nil, errors.Wrapf(ErrRegionTooSmall, "region %d, largest block %d", region.Size(), a.blockSize(a.maxOrder))
	}

	a.free[a.maxOrder].Push(freelist.DoublyFromAddr(a.base))

	log.WithField("max_block", a.blockSize(a.maxOrder)).WithField("orders", a.maxOrder+1).Debug("initialized")
	return a, nil
}

// Allocator is not safe for concurrent use.
type Allocator struct {
	base     freelist.Addr
	minBlock uintptr
	maxOrder int
	free     []freelist.DoublyLinked
}

// Alloc returns a block of at least size bytes, aligned to its own size
// relative to the region base.
func (a *Allocator) Alloc(size uintptr) (freelist.Addr, error) {
	order, err := a.order(size)
	if err != nil {
		return 0, err
	}

	j := order
	for j <= a.maxOrder && a.free[j].IsEmpty() {
		j++
	}
	if j > a.maxOrder {
		log.WithField("size", size).Warn("out of memory")
		return 0, ErrOutOfMemory
	}

	addr := a.free[j].Pop().Addr()
	for j > order {
		j--
		a.free[j].Push(freelist.DoublyFromAddr(addr + freelist.Addr(a.blockSize(j))))
	}
	return addr, nil
}

// Free returns a block obtained from Alloc with the same size, merging it
// with its buddy for as long as the buddy is free too.
func (a *Allocator) Free(addr freelist.Addr, size uintptr) error {
	order, err := a.order(size)
	if err != nil {
		return errors.Wrapf(err, "free %v", addr)
	}
	if !a.isBlock(addr, order) {
		return errors.Wrapf(ErrInvalidAddress, "%v of order %d", addr, order)
	}
	if a.freeEnclosing(addr, order) {
		return errors.Wrapf(ErrDoubleFree, "%v", addr)
	}

	for order < a.maxOrder {
		buddy := a.buddy(addr, order)
		if !a.free[order].Remove(buddy) {
			break
		}
		addr = helpers.Min(addr, buddy)
		order++
	}

	a.free[order].Push(freelist.DoublyFromAddr(addr))
	return nil
}

// IsFree reports whether the block of the given size at addr is currently on
// a free list as a whole block.
func (a *Allocator) IsFree(addr freelist.Addr, size uintptr) bool {
	order, err := a.order(size)
	if err != nil {
		return false
	}
	return a.free[order].Contains(addr)
}

func (a *Allocator) MaxBlockSize() uintptr {
	return a.blockSize(a.maxOrder)
}

// Stats returns the number of free blocks per order.
func (a *Allocator) Stats() []int {
	stats := make([]int, len(a.free))
	for i := range a.free {
		stats[i] = a.free[i].Len()
	}
	return stats
}

// FreeBytes sums the free blocks of every order.
func (a *Allocator) FreeBytes() uintptr {
	total := uintptr(0)
	for order, count := range a.Stats() {
		total += uintptr(count) * a.blockSize(order)
	}
	return total
}

func (a *Allocator) blockSize(order int) uintptr {
	return a.minBlock << order
}

func (a *Allocator) order(size uintptr) (int, error) {
	if size > a.blockSize(a.maxOrder) {
		return 0, errors.Wrapf(ErrTooLarge, "size %d, largest block %d", size, a.blockSize(a.maxOrder))
	}
	blocks := (size + a.minBlock - 1) / a.minBlock
	return helpers.Log2Ceil(blocks), nil
}

func (a *Allocator) isBlock(addr freelist.Addr, order int) bool {
	if addr < a.base {
		return false
	}
	off := uintptr(addr - a.base)
	return off < a.blockSize(a.maxOrder) && off%a.blockSize(order) == 0
}

// freeEnclosing reports whether addr already lies in a free block of order or
// any larger order, which is where it lands once it has coalesced.
func (a *Allocator) freeEnclosing(addr freelist.Addr, order int) bool {
	off := uintptr(addr - a.base)
	for k := order; k <= a.maxOrder; k++ {
		if a.free[k].Contains(a.base + freelist.Addr(off&^(a.blockSize(k)-1))) {
			return true
		}
	}
	return false
}

func (a *Allocator) buddy(addr freelist.Addr, order int) freelist.Addr {
	return a.base + freelist.Addr(uintptr(addr-a.base)^a.blockSize(order))
}
