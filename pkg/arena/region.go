package arena

import (
	"github.com/pkg/errors"

	"go-freelist/pkg/freelist"
)

// NewRegion describes size bytes at base. The caller vouches for the memory.
func NewRegion(base freelist.Addr, size uintptr) *Region {
	return &Region{base: base, size: size}
}

// Region is a contiguous address range [Base, Base+Size).
type Region struct {
	base freelist.Addr
	size uintptr
}

func (r *Region) Base() freelist.Addr {
	return r.base
}

func (r *Region) Size() uintptr {
	return r.size
}

func (r *Region) End() freelist.Addr {
	return r.base + freelist.Addr(r.size)
}

// Has reports whether addr lies inside the region.
func (r *Region) Has(addr freelist.Addr) bool {
	return addr >= r.base && addr < r.End()
}

func (r *Region) Offset(addr freelist.Addr) uintptr {
	return uintptr(addr - r.base)
}

// Sub carves [offset, offset+size) out of r.
func (r *Region) Sub(offset, size uintptr) (*Region, error) {
	if size == 0 || offset > r.size || size > r.size-offset {
		return nil, errors.Wrapf(ErrOutOfRange, "offset %d size %d in region of %d", offset, size, r.size)
	}
	return &Region{base: r.base + freelist.Addr(offset), size: size}, nil
}
