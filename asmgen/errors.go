/*
File: cc/asmgen/errors.go
*/
package asmgen

import "fmt"

// InternalError signals an invariant broken between passes, e.g. a
// Pseudo operand surviving to the emitter. It always indicates a
// compiler bug, never a problem with the input program.
type InternalError struct {
	Text string
}

func (e *InternalError) Error() string {
	return e.Text
}

func internalf(format string, args ...any) *InternalError {
	return &InternalError{Text: fmt.Sprintf(format, args...)}
}
