package pstatedump

import "errors"

var (
	// ErrPlatformUnavailable is returned when the platform plugin entry or a
	// required system value cannot be read.
	ErrPlatformUnavailable = errors.New("pstatedump: platform plugin unavailable")

	// ErrMissingField is returned when a P-State record lacks its id or frequency.
	ErrMissingField = errors.New("pstatedump: P-State entry missing field")

	// ErrUnsupportedPlatform is returned on operating systems without the
	// platform plugin.
	ErrUnsupportedPlatform = errors.New("pstatedump: unsupported platform")
)
