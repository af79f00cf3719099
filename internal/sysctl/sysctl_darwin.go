//go:build darwin

package sysctl

import "golang.org/x/sys/unix"

// Uint64 reads a 64-bit integer value such as hw.cpufrequency_max.
func Uint64(name string) (uint64, error) {
	v, err := unix.SysctlUint64(name)
	if err != nil {
		return 0, wrap(name, err)
	}
	return v, nil
}

// String reads a string value such as machdep.cpu.brand_string.
func String(name string) (string, error) {
	v, err := unix.Sysctl(name)
	if err != nil {
		return "", wrap(name, err)
	}
	return v, nil
}
