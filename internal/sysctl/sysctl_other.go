//go:build !darwin

package sysctl

func Uint64(string) (uint64, error) {
	return 0, ErrUnsupported
}

func String(string) (string, error) {
	return "", ErrUnsupported
}
