package mte

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrNoValue      = errors.New("no value")
	ErrNoLeftValue  = errors.New("no left value")
	ErrNoRightValue = errors.New("no right value")
	ErrNilArgument  = errors.New("nil argument")
)

// PanicError wraps a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func argumentError(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}

// RequireNonNil panics with ErrNilArgument, naming the argument, when v is
// nil. Functions, pointers, maps, channels, slices and interfaces are
// checked; other kinds are never nil.
func RequireNonNil(v any, name string) {
	if IsNil(v) {
		panic(argumentError(name))
	}
}
