package serror

import "fmt"

// StrideError is the error type returned by the library for conditions that
// callers are expected to handle, such as invalid configuration.
type StrideError struct {
	Err string
}

// New creates a StrideError from a format string and arguments.
func New(format string, args ...interface{}) *StrideError {
	return &StrideError{Err: fmt.Sprintf(format, args...)}
}

func (e *StrideError) Error() string {
	return e.Err
}
