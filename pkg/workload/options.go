package workload

type Options struct {
	Seed       int64
	Operations int
	// MaxSize bounds the size of a single request, at least 1.
	MaxSize uintptr
}
