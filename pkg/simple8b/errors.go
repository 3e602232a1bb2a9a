package simple8b

import (
	"errors"
	"fmt"
)

// ErrValueOutOfRange is returned, wrapped in an [*OutOfRangeError], when
// [Encode] is given a value no selector can represent.
var ErrValueOutOfRange = errors.New("simple8b: value out of range")

// OutOfRangeError reports the first value that prevented encoding.
type OutOfRangeError struct {
	Value    uint64
	Position int // Offset of Value in the slice passed to Encode.
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("simple8b: value %d at position %d exceeds maximum %d", e.Value, e.Position, uint64(MaxValue))
}

// Is reports whether target is [ErrValueOutOfRange].
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrValueOutOfRange
}
