package tracker

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is
var (
	ErrDuplicateName     = errors.New("hobby already exists")
	ErrIndexOutOfRange   = errors.New("hobby index out of range")
	ErrReentrantMutation = errors.New("hobby collection mutated during change notification")
)

// DuplicateNameError is returned by AddHobby when a hobby with the same name
// (compared case-insensitively) is already tracked.
type DuplicateNameError struct {
	Name     string // rejected name as given
	Existing string // name of the record it collided with
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("hobby %q already exists as %q", e.Name, e.Existing)
}

// Unwrap lets errors.Is match ErrDuplicateName.
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// IndexError is returned by the remove operations for a position outside
// [0, Len). It means the caller held a stale index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("hobby index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
