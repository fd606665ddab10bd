package HashSet

import "errors"

var (
	// ErrOutOfRange is returned by Index when the slot index is outside [0, Capacity()).
	ErrOutOfRange = errors.New("hashset: slot index out of range")
	ErrNilHash    = errors.New("hashset: nil hash function")
)
