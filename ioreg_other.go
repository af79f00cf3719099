//go:build !darwin

package pstatedump

import "context"

func runIoreg(context.Context, string, []string) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}
