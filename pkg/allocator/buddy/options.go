package buddy

type Options struct {
	// MinBlockSize must be a power of two no smaller than
	// freelist.DoublyNodeSize.
	MinBlockSize uintptr
	// MaxOrder is the order of the largest block, MinBlockSize<<MaxOrder.
	MaxOrder int
}
