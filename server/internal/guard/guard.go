// Package guard runs functions that may panic, turning the panic into an
// error so that a single failing unit of work does not take down the loop
// running it.
package guard

import (
	"fmt"
	"runtime/debug"
)

// PanicError is returned by Run when the function passed panicked.
type PanicError struct {
	Value any
	Stack []byte
}

// Error ...
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the value passed to panic if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Run calls fn and returns the error it returns. If fn panics, the panic is
// recovered and returned as a *PanicError.
func Run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
