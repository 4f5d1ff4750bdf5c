package forkjoin

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrInvalidConfig signals an invalid pool configuration.
var ErrInvalidConfig = errors.New("forkjoin: invalid configuration")

// PanicError is the value re-panicked in the joining goroutine when a spawned
// branch panicked.
type PanicError struct {
	Value any    // value passed to panic in the branch
	Stack []byte // stack of the branch at the time of the panic
}

func newPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe // nested pairs: keep the innermost stack
	}
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("forkjoin: panic in forked branch: %v", pe.Value)
}

// Unwrap returns the panic value if it is an error.
func (pe *PanicError) Unwrap() error {
	if err, ok := pe.Value.(error); ok {
		return err
	}
	return nil
}
