package docmodel

import (
	"github.com/hierdoc/go-hierdoc/textdiff"
)

// Report is the result of Validate.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate re-parses the current source text through the active handler
// without mutating any state. It never fails; parse problems come back as
// a structured report.
func (m *Model) Validate() Report {
	if m.root == nil {
		return Report{Valid: false, Errors: []string{ErrNotLoaded.Error()}}
	}
	h, err := m.reg.Resolve(m.format)
	if err != nil {
		return Report{Valid: false, Errors: []string{err.Error()}}
	}
	if _, err := h.Parse(m.source); err != nil {
		return Report{Valid: false, Errors: []string{err.Error()}}
	}
	return Report{Valid: true}
}

// Diff renders the textual difference between the current serialization
// and other.
func (m *Model) Diff(other string) (string, error) {
	cur, err := m.Serialize()
	if err != nil {
		return "", err
	}
	return textdiff.Unified(cur, other), nil
}
