package pstatedump

import (
	"bytes"
	"fmt"

	"howett.net/plist"
)

const (
	pstatesKey      = "CPUPStates"
	pstateIDKey     = "PState"
	pstateFreqKey   = "Frequency"
	limitDictKey    = "CPUPLimitDict"
	currentLimitKey = "currentLimit"
)

// registryEntry is the subset of an ioreg plist dictionary we read.
type registryEntry struct {
	Name     string           `plist:"IORegistryEntryName"`
	PStates  []map[string]any `plist:"CPUPStates"`
	DiagDict map[string]any   `plist:"IOPPFDiagDict"`
}

// decodeRegistry parses `ioreg -a` output and returns the entry named plugin.
func decodeRegistry(data []byte, plugin string) (*registryEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: no registry entry named %q", ErrPlatformUnavailable, plugin)
	}

	var entries []registryEntry
	if _, err := plist.Unmarshal(data, &entries); err != nil {
		// A single match may be printed as a bare dictionary.
		var single registryEntry
		if _, serr := plist.Unmarshal(data, &single); serr != nil {
			return nil, fmt.Errorf("%w: decode registry: %v", ErrPlatformUnavailable, err)
		}
		entries = []registryEntry{single}
	}

	for i := range entries {
		if entries[i].Name == plugin {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no registry entry named %q", ErrPlatformUnavailable, plugin)
}

// frequencyEntries converts the CPUPStates array. A missing property yields no
// entries; an element without an id or frequency is an error.
func (e *registryEntry) frequencyEntries() ([]Entry, error) {
	entries := make([]Entry, 0, len(e.PStates))
	for i, item := range e.PStates {
		id, ok := intValue(item[pstateIDKey])
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] has no %s", ErrMissingField, pstatesKey, i, pstateIDKey)
		}
		freq, ok := intValue(item[pstateFreqKey])
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] has no %s", ErrMissingField, pstatesKey, i, pstateFreqKey)
		}
		entries = append(entries, Entry{ID: id, FrequencyMHz: freq})
	}
	return entries, nil
}

// limitedStateID reads IOPPFDiagDict.CPUPLimitDict.currentLimit.
func (e *registryEntry) limitedStateID() (int, bool) {
	limits, ok := e.DiagDict[limitDictKey].(map[string]any)
	if !ok {
		return 0, false
	}
	return intValue(limits[currentLimitKey])
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case uint64:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
