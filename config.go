package pstatedump

import "go.uber.org/zap"

const (
	defaultIoregPath      = "/usr/sbin/ioreg"
	defaultPlatformPlugin = "X86PlatformPlugin"
)

// Config holds configuration for the registry-backed source.
type Config struct {
	IoregPath      string
	PlatformPlugin string
	Logger         *zap.Logger
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg

	if normalized.IoregPath == "" {
		normalized.IoregPath = defaultIoregPath
	}

	if normalized.PlatformPlugin == "" {
		normalized.PlatformPlugin = defaultPlatformPlugin
	}

	if normalized.Logger == nil {
		normalized.Logger = zap.NewNop()
	}

	return normalized
}

// ioregArgs selects the plugin entry by name, one level deep, as an XML plist.
func ioregArgs(plugin string) []string {
	return []string{"-a", "-r", "-d", "1", "-n", plugin}
}
