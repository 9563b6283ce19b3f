// Package workload drives an allocator with a seeded alloc/free churn. Live
// blocks are released in LIFO order, the pattern free lists favour.
package workload

import (
	"math/rand"

	"github.com/pkg/errors"

	"go-freelist/pkg/freelist"
	"go-freelist/pkg/stack"
	"go-freelist/util/logger"
)

var log = logger.For("workload")

type Stats struct {
	Allocs   int
	Frees    int
	Failures int
	PeakLive int
}

type block struct {
	addr freelist.Addr
	size uintptr
}

// Run performs opts.Operations steps against a and then frees every block it
// still holds. Alloc errors count as failures; Free errors abort the run.
func Run(name string, a Allocator, opts *Options) (*Stats, error) {
	if opts.MaxSize == 0 {
		return nil, errors.New("max size must be positive")
	}

	rnd := rand.New(rand.NewSource(opts.Seed))
	live := stack.New[block](opts.Operations)
	stats := &Stats{}

	for i := 0; i < opts.Operations; i++ {
		if live.Size() == 0 || rnd.Intn(3) != 0 {
			size := 1 + uintptr(rnd.Int63n(int64(opts.MaxSize)))
			addr, err := a.Alloc(size)
			if err != nil {
				stats.Failures++
				continue
			}

			stats.Allocs++
			live.Push(block{addr, size})
			if live.Size() > stats.PeakLive {
				stats.PeakLive = live.Size()
			}
			continue
		}

		b, _ := live.Pop()
		if err := free(a, b, stats); err != nil {
			return nil, errors.Wrapf(err, "%s: step %d", name, i)
		}
	}

	err := live.Drain(func(b block) error {
		return free(a, b, stats)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s: drain", name)
	}

	log.WithField("allocator", name).
		WithField("allocs", stats.Allocs).
		WithField("frees", stats.Frees).
		WithField("failures", stats.Failures).
		WithField("peak_live", stats.PeakLive).
		Info("workload finished")
	return stats, nil
}

func free(a Allocator, b block, stats *Stats) error {
	if err := a.Free(b.addr, b.size); err != nil {
		return errors.Wrapf(err, "failed to free %v", b.addr)
	}
	stats.Frees++
	return nil
}
