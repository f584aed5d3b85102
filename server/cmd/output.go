package cmd

import (
	"errors"
	"fmt"
)

// Output holds the messages and errors produced by running a command.
type Output struct {
	messages []string
	errs     []error
}

// Print adds a message to the Output. The operands are formatted as with
// fmt.Sprint.
func (o *Output) Print(a ...any) {
	o.messages = append(o.messages, fmt.Sprint(a...))
}

// Printf adds a formatted message to the Output.
func (o *Output) Printf(format string, a ...any) {
	o.messages = append(o.messages, fmt.Sprintf(format, a...))
}

// Error adds an error to the Output. The operands are formatted as with
// fmt.Sprint unless a single error is passed.
func (o *Output) Error(a ...any) {
	if len(a) == 1 {
		if err, ok := a[0].(error); ok {
			o.errs = append(o.errs, err)
			return
		}
	}
	o.errs = append(o.errs, errors.New(fmt.Sprint(a...)))
}

// Errorf adds a formatted error to the Output.
func (o *Output) Errorf(format string, a ...any) {
	o.errs = append(o.errs, fmt.Errorf(format, a...))
}

// Messages returns the messages added to the Output.
func (o *Output) Messages() []string {
	return o.messages
}

// Errors returns the errors added to the Output.
func (o *Output) Errors() []error {
	return o.errs
}

// MessageCount returns the number of messages added.
func (o *Output) MessageCount() int {
	return len(o.messages)
}

// ErrorCount returns the number of errors added.
func (o *Output) ErrorCount() int {
	return len(o.errs)
}
