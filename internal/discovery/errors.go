package discovery

import (
	"errors"
	"fmt"
)

// ErrDeviceNotFound is returned when the target hardware address is absent
// from the ARP cache even after a subnet sweep.
var ErrDeviceNotFound = errors.New("device not found")

// NotFoundError records which device was searched for and where.
type NotFoundError struct {
	MAC    string
	Subnet string
}

func (e *NotFoundError) Error() string {
	if e.Subnet == "" {
		return fmt.Sprintf("could not find device %s", e.MAC)
	}
	return fmt.Sprintf("could not find device %s on %s", e.MAC, e.Subnet)
}

func (e *NotFoundError) Unwrap() error {
	return ErrDeviceNotFound
}

// IsNotFound checks if an error means the device could not be located
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDeviceNotFound)
}
