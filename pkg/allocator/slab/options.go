package slab

type Options struct {
	// BlockSize is rounded up to freelist.NodeAlign and never below
	// freelist.NodeSize.
	BlockSize uintptr
}
