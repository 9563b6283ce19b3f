// Package arena provides off-heap memory for the free lists to link. Memory
// comes from an anonymous mapping, so the Go garbage collector never scans or
// moves it and raw addresses into it stay valid until Close.
package arena

import (
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"go-freelist/pkg/freelist"
	"go-freelist/util/helpers"
	"go-freelist/util/logger"
)

var log = logger.For("arena")

func Open(opts *Options) (*Arena, error) {
	if opts.Size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", opts.Size)
	}

	size := helpers.AlignUp(uint(opts.Size), uint(os.Getpagesize()))
	m, err := mmap.MapRegion(nil, int(size), mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map arena")
	}

	if opts.Lock {
		if err := m.Lock(); err != nil {
			_ = m.Unmap()
			return nil, errors.Wrap(err, "failed to lock arena")
		}
	}

	a := &Arena{
		mem:    m,
		locked: opts.Lock,
		Region: Region{
			base: freelist.Addr(unsafe.Pointer(&m[0])),
			size: uintptr(len(m)),
		},
	}

	log.WithField("base", a.base).WithField("size", a.size).Debug("mapped")
	return a, nil
}

// Arena owns a mapping. Its embedded Region spans the whole mapping.
type Arena struct {
	Region
	mem    mmap.MMap
	locked bool
}

func (a *Arena) Close() error {
	if a.mem == nil {
		return ErrClosed
	}

	if a.locked {
		if err := a.mem.Unlock(); err != nil {
			return errors.Wrap(err, "failed to unlock arena")
		}
	}
	if err := a.mem.Unmap(); err != nil {
		return errors.Wrap(err, "failed to unmap arena")
	}

	log.WithField("base", a.base).Debug("unmapped")
	a.mem = nil
	a.Region = Region{}
	return nil
}

// Bytes exposes the mapping for payload access. The slice is invalid after
// Close.
func (a *Arena) Bytes() []byte {
	return a.mem
}
