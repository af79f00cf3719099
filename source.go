package pstatedump

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BinSquare/pstatedump/internal/sysctl"
)

// Source is the platform data a Table is built from.
type Source interface {
	// FrequencyEntries returns the P-States in platform order.
	FrequencyEntries(ctx context.Context) ([]Entry, error)
	// Scalar returns an integer system value; ok is false when it is absent.
	Scalar(ctx context.Context, key string) (value int, ok bool, err error)
	// LimitedStateID returns the id of the P-State enforced as a ceiling, if any.
	LimitedStateID(ctx context.Context) (id int, ok bool, err error)
	// ModelName returns the CPU model without its "@ frequency" suffix.
	ModelName(ctx context.Context) (string, error)
}

type registryReader func(ctx context.Context, ioregPath string, args []string) ([]byte, error)

// IORegistrySource reads P-States from the platform plugin's registry entry
// and scalars from sysctl.
type IORegistrySource struct {
	config Config
	logger *zap.Logger

	readRegistry registryReader
	sysctlUint64 func(name string) (uint64, error)
	sysctlString func(name string) (string, error)

	entry *registryEntry
}

var _ Source = (*IORegistrySource)(nil)

// NewIORegistrySource creates a source using the provided configuration, filling in defaults as required.
func NewIORegistrySource(cfg Config) *IORegistrySource {
	normalized := normalizeConfig(cfg)

	return &IORegistrySource{
		config:       normalized,
		logger:       normalized.Logger,
		readRegistry: runIoreg,
		sysctlUint64: sysctl.Uint64,
		sysctlString: sysctl.String,
	}
}

// lookup resolves the plugin entry on first use. The entry is the handle both
// registry properties are read from.
func (s *IORegistrySource) lookup(ctx context.Context) (*registryEntry, error) {
	if s.entry != nil {
		return s.entry, nil
	}

	args := ioregArgs(s.config.PlatformPlugin)
	s.logger.Debug("querying registry",
		zap.String("path", s.config.IoregPath),
		zap.Strings("args", args))

	out, err := s.readRegistry(ctx, s.config.IoregPath, args)
	if err != nil {
		if errors.Is(err, ErrUnsupportedPlatform) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrPlatformUnavailable, s.config.IoregPath, err)
	}

	entry, err := decodeRegistry(out, s.config.PlatformPlugin)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("registry entry found",
		zap.String("name", entry.Name),
		zap.Int("pstates", len(entry.PStates)))

	s.entry = entry
	return entry, nil
}

// FrequencyEntries implements Source.
func (s *IORegistrySource) FrequencyEntries(ctx context.Context) ([]Entry, error) {
	entry, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}
	if entry.PStates == nil {
		s.logger.Warn("registry entry has no P-States", zap.String("key", pstatesKey))
	}
	return entry.frequencyEntries()
}

// LimitedStateID implements Source.
func (s *IORegistrySource) LimitedStateID(ctx context.Context) (int, bool, error) {
	entry, err := s.lookup(ctx)
	if err != nil {
		return 0, false, err
	}
	id, ok := entry.limitedStateID()
	return id, ok, nil
}

// Scalar implements Source.
func (s *IORegistrySource) Scalar(_ context.Context, key string) (int, bool, error) {
	v, err := s.sysctlUint64(key)
	switch {
	case errors.Is(err, sysctl.ErrNotFound):
		s.logger.Warn("sysctl not found", zap.String("key", key))
		return 0, false, nil
	case errors.Is(err, sysctl.ErrUnsupported):
		return 0, false, ErrUnsupportedPlatform
	case err != nil:
		return 0, false, fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}
	return int(v), true, nil
}

// ModelName implements Source.
func (s *IORegistrySource) ModelName(_ context.Context) (string, error) {
	brand, err := s.sysctlString(ModelNameKey)
	switch {
	case errors.Is(err, sysctl.ErrNotFound):
		return "", nil
	case errors.Is(err, sysctl.ErrUnsupported):
		return "", ErrUnsupportedPlatform
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}
	return trimModel(brand), nil
}

// trimModel drops the "@ 2.30GHz" suffix Intel brand strings carry.
func trimModel(brand string) string {
	if i := strings.Index(brand, "@"); i >= 0 {
		brand = brand[:i]
	}
	return strings.TrimSpace(brand)
}
