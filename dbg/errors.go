package dbg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath = errors.New("invalid image path")
	ErrInvalidText = errors.New("text contains embedded terminator")
	ErrNotPointer  = errors.New("value is not a pointer")
)

// InvalidSizeError reports a zero or otherwise unusable size returned by the
// engine for a variable-length read.
type InvalidSizeError struct {
	Size uint32
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid size: %d", e.Size)
}

// EngineError wraps a failure surfaced by a call into the host engine.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine: %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// IOError wraps a local filesystem failure, such as image path
// canonicalization.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
