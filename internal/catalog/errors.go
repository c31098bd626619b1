package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidContractArgument is matched by every contract construction failure.
var ErrInvalidContractArgument = errors.New("invalid contract argument")

// ValidationError reports which contract argument was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidContractArgument, e.Field, e.Reason)
}

// Is lets errors.Is match ErrInvalidContractArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidContractArgument
}
