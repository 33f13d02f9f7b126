package types

import "fmt"

// ValidationError represents a malformed input record
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// InvalidArgumentError represents a caller-supplied value the engine cannot act on,
// such as an unsupported export format.
type InvalidArgumentError struct {
	Argument string
	Value    string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Argument, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Argument, e.Message)
}
