package slab

import "github.com/pkg/errors"

var ErrOutOfMemory = errors.New("slab exhausted")
var ErrInvalidAddress = errors.New("address is not a block of this slab")
var ErrRegionTooSmall = errors.New("region can't hold a single block")
var ErrMisaligned = errors.New("region base is misaligned")
