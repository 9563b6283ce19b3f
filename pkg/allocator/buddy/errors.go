package buddy

import "github.com/pkg/errors"

var ErrOutOfMemory = errors.New("no free block large enough")
var ErrTooLarge = errors.New("size exceeds largest block")
var ErrInvalidAddress = errors.New("address is not a block of this allocator")
var ErrDoubleFree = errors.New("block is already free")
var ErrInvalidOptions = errors.New("invalid buddy options")
var ErrRegionTooSmall = errors.New("region can't hold the largest block")
