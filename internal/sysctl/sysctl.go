// Package sysctl reads typed kernel state by name.
package sysctl

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrNotFound is returned when the kernel has no value under the name.
	ErrNotFound = errors.New("sysctl: no such name")
	// ErrUnsupported is returned on platforms without sysctlbyname.
	ErrUnsupported = errors.New("sysctl: unsupported platform")
)

// wrap maps ENOENT to ErrNotFound and keeps any other errno inspectable.
func wrap(name string, err error) error {
	if errors.Is(err, syscall.ENOENT) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("sysctl %s: %w", name, err)
}
