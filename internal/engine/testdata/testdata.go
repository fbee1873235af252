// Package testdata ships a labeled corpus of log lines used to validate
// classification behavior across packages.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled log line. An empty ExpectedKind means the line
// must be dropped (structural mismatch, unmonitored level, or no rule).
type CorpusEntry struct {
	Raw              string `json:"raw"`
	ExpectedKind     string `json:"expected_kind"`
	ExpectedSeverity string `json:"expected_severity"`
	ExpectedPath     string `json:"expected_path,omitempty"`
	Description      string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
