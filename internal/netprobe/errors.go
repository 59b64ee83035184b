package netprobe

import (
	"errors"
	"fmt"
)

// InterfaceError means the local address of a network interface could not be resolved.
type InterfaceError struct {
	// Interface is the interface name that was queried
	Interface string
	// Underlying error
	Err error
}

func (e *InterfaceError) Error() string {
	return fmt.Sprintf("could not get IP for interface %s: %v", e.Interface, e.Err)
}

func (e *InterfaceError) Unwrap() error {
	return e.Err
}

// IsInterfaceError reports whether err is (or wraps) an InterfaceError.
func IsInterfaceError(err error) bool {
	var ie *InterfaceError
	return errors.As(err, &ie)
}
