package pstatedump

import (
	"context"
	"fmt"
	"sort"
)

const (
	// NominalFrequencyKey is the sysctl holding the nominal frequency in Hz.
	NominalFrequencyKey = "hw.cpufrequency_max"
	// ModelNameKey is the sysctl holding the CPU brand string.
	ModelNameKey = "machdep.cpu.brand_string"
)

// Table is a snapshot of the CPU's P-States, ordered by descending frequency.
type Table struct {
	Model          string
	NominalMHz     int
	LimitedStateID int
	HasLimit       bool
	States         []State
}

// Load queries src once and builds the table. Any source error aborts the
// load; no partial table is returned.
func Load(ctx context.Context, src Source) (*Table, error) {
	hz, ok, err := src.Scalar(ctx, NominalFrequencyKey)
	if err != nil {
		return nil, fmt.Errorf("read nominal frequency: %w", err)
	}
	nominal := 0
	if ok {
		nominal = hz / 1_000_000
	}

	model, err := src.ModelName(ctx)
	if err != nil {
		return nil, fmt.Errorf("read model name: %w", err)
	}

	limit, hasLimit, err := src.LimitedStateID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read limited state: %w", err)
	}

	entries, err := src.FrequencyEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("read P-States: %w", err)
	}

	return NewTable(model, nominal, entries, limit, hasLimit), nil
}

// NewTable classifies entries against nominalMHz. States are stable-sorted by
// descending frequency so the first state is the highest boost and the last
// the lowest operating point, whatever order the platform reported.
func NewTable(model string, nominalMHz int, entries []Entry, limit int, hasLimit bool) *Table {
	states := ClassifyEntries(entries, nominalMHz)
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].FrequencyMHz > states[j].FrequencyMHz
	})

	return &Table{
		Model:          model,
		NominalMHz:     nominalMHz,
		LimitedStateID: limit,
		HasLimit:       hasLimit,
		States:         states,
	}
}

// Count returns the number of P-States.
func (t *Table) Count() int {
	return len(t.States)
}

// Highest returns the first (highest frequency) state.
func (t *Table) Highest() (State, bool) {
	if len(t.States) == 0 {
		return State{}, false
	}
	return t.States[0], true
}

// Lowest returns the last (lowest frequency) state.
func (t *Table) Lowest() (State, bool) {
	if len(t.States) == 0 {
		return State{}, false
	}
	return t.States[len(t.States)-1], true
}

// Limited returns the state currently enforced as the ceiling, if the platform
// reports a limit and a state with that id exists.
func (t *Table) Limited() (State, bool) {
	if !t.HasLimit {
		return State{}, false
	}
	for _, s := range t.States {
		if s.ID == t.LimitedStateID {
			return s, true
		}
	}
	return State{}, false
}
