package arena

import "github.com/pkg/errors"

var ErrInvalidSize = errors.New("invalid arena size")
var ErrOutOfRange = errors.New("region out of arena range")
var ErrClosed = errors.New("arena is closed")
