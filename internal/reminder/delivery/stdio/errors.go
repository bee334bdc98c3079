package stdio

import (
	"errors"
	"fmt"
	"strings"

	"nanoclaw-bridges/internal/reminder"
)

var (
	ErrNoInput         = errors.New("No input")
	ErrParamsNotObject = errors.New("params must be an object")
)

// UnknownOperationError carries the rejected operation name verbatim.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Unknown operation: %s. Valid: [%s]", e.Name, strings.Join(reminder.Operations, ", "))
}

// ExitError is returned by Serve after the error object has been written.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }
func (e *ExitError) ExitCode() int { return e.Code }
