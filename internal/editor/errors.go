package editor

import "errors"

// ErrInvalidRange is returned by ShowRange when the bounds do not satisfy
// 1 <= lower <= upper <= LineCount()+1.
var ErrInvalidRange = errors.New("invalid line range")
