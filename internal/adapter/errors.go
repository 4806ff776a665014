package adapter

import (
	"errors"
	"fmt"
)

// ErrPositionOutOfRange is matched (via errors.Is) by every error reporting a
// position outside [0, ItemCount()).
var ErrPositionOutOfRange = errors.New("position out of range")

// PositionOutOfRangeError reports a bind or dataset edit at an invalid
// position. It signals a caller bug and is never retried.
type PositionOutOfRangeError struct {
	Position int
	Count    int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Position, e.Count)
}

// Is reports whether target is ErrPositionOutOfRange.
func (e *PositionOutOfRangeError) Is(target error) bool {
	return target == ErrPositionOutOfRange
}
