//go:build darwin

package pstatedump

import (
	"context"
	"os/exec"
)

func runIoreg(ctx context.Context, ioregPath string, args []string) ([]byte, error) {
	return exec.CommandContext(ctx, ioregPath, args...).Output()
}
