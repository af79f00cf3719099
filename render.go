package pstatedump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Mode selects what Render prints.
type Mode int

const (
	ModeTable Mode = iota
	ModeCount
	ModeNominal
	ModeMin
	ModeBoost
	ModeAvailableBoost
	ModeJSON
	ModeYAML
)

// Render writes the part of t selected by mode. Lookups that find nothing
// (an empty table, no matching limited state) write nothing.
func Render(w io.Writer, t *Table, mode Mode) error {
	switch mode {
	case ModeTable:
		return renderTable(w, t)
	case ModeCount:
		_, err := fmt.Fprintf(w, "%d P-States\n", t.Count())
		return err
	case ModeNominal:
		_, err := fmt.Fprintf(w, "Maximum Nominal: %d MHz\n", t.NominalMHz)
		return err
	case ModeMin:
		if s, ok := t.Lowest(); ok {
			_, err := fmt.Fprintf(w, "Minimum Nominal: %d MHz\n", s.FrequencyMHz)
			return err
		}
		return nil
	case ModeBoost:
		if s, ok := t.Highest(); ok {
			_, err := fmt.Fprintf(w, "Maximum Boost: %d MHz\n", s.FrequencyMHz)
			return err
		}
		return nil
	case ModeAvailableBoost:
		if s, ok := t.Limited(); ok {
			_, err := fmt.Fprintf(w, "Maximum Available Boost: %d MHz\n", s.FrequencyMHz)
			return err
		}
		return nil
	case ModeJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(t))
	case ModeYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(t)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("pstatedump: unknown render mode %d", mode)
	}
}

func renderTable(w io.Writer, t *Table) error {
	bold := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	if _, err := fmt.Fprintf(w, "%s\n\n", bold.Render(t.Model)); err != nil {
		return err
	}
	heading := fmt.Sprintf("***** %d P-States *****", t.Count())
	if _, err := fmt.Fprintf(w, "%s\n\n", bold.Render(heading)); err != nil {
		return err
	}

	for _, s := range t.States {
		line := fmt.Sprintf("%2d %6d MHz", s.ID, s.FrequencyMHz)
		if s.Class != Unclassified {
			line += fmt.Sprintf("   (%s)", s.Class)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type document struct {
	Model          string          `json:"model" yaml:"model"`
	NominalMHz     int             `json:"nominal_mhz" yaml:"nominal_mhz"`
	LimitedStateID *int            `json:"limited_state_id,omitempty" yaml:"limited_state_id,omitempty"`
	States         []stateDocument `json:"states" yaml:"states"`
}

type stateDocument struct {
	ID             int    `json:"id" yaml:"id"`
	FrequencyMHz   int    `json:"frequency_mhz" yaml:"frequency_mhz"`
	Classification string `json:"classification,omitempty" yaml:"classification,omitempty"`
}

func newDocument(t *Table) document {
	doc := document{
		Model:      t.Model,
		NominalMHz: t.NominalMHz,
		States:     make([]stateDocument, 0, len(t.States)),
	}
	if t.HasLimit {
		id := t.LimitedStateID
		doc.LimitedStateID = &id
	}
	for _, s := range t.States {
		doc.States = append(doc.States, stateDocument{
			ID:             s.ID,
			FrequencyMHz:   s.FrequencyMHz,
			Classification: s.Class.String(),
		})
	}
	return doc
}
