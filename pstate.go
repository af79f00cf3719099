package pstatedump

// Classification labels a P-State relative to the nominal frequency.
// The zero value means the state is neither boost nor nominal.
type Classification int

const (
	Unclassified Classification = iota
	Boost
	Nominal
)

// String returns the label printed next to a state, or "" when unclassified.
func (c Classification) String() string {
	switch c {
	case Boost:
		return "Boost"
	case Nominal:
		return "Nominal"
	default:
		return ""
	}
}

// Entry is a raw P-State record as reported by the platform.
type Entry struct {
	ID           int
	FrequencyMHz int
}

// State is a classified P-State.
type State struct {
	ID           int
	FrequencyMHz int
	Class        Classification
}

// Classify labels a frequency against the nominal frequency.
func Classify(freqMHz, nominalMHz int) Classification {
	switch {
	case freqMHz > nominalMHz:
		return Boost
	case freqMHz == nominalMHz:
		return Nominal
	default:
		return Unclassified
	}
}

// ClassifyEntries converts raw entries into classified states, preserving order.
func ClassifyEntries(entries []Entry, nominalMHz int) []State {
	states := make([]State, 0, len(entries))
	for _, e := range entries {
		states = append(states, State{
			ID:           e.ID,
			FrequencyMHz: e.FrequencyMHz,
			Class:        Classify(e.FrequencyMHz, nominalMHz),
		})
	}
	return states
}
