package arena

type Options struct {
	// Size is rounded up to a whole number of OS pages.
	Size int
	// Lock pins the mapping in RAM.
	Lock bool
}
