package triage

import "github.com/hejijunhao/triage/internal/model"

// Classification is a classified error line.
type Classification struct {
	Timestamp    string   // source format: YYYY-MM-DD HH:MM:SS,mmm
	Level        string   // ERROR, CRITICAL, or WARNING
	Module       string   // logger path from the log line
	Message      string   // free-text message
	FilePath     string   // best-effort extraction, "<module>.py" fallback
	Kind         string   // one of the five fixed error kinds
	Severity     string   // low, medium, or high; rule-derived
	Labels       []string // triage labels from the matched rule
	SuggestedFix string   // canned remediation snippet for the kind
}

// fromInternal converts the internal classification to the public type.
func fromInternal(c model.ErrorClassification) Classification {
	return Classification{
		Timestamp:    c.Timestamp,
		Level:        c.Level,
		Module:       c.Module,
		Message:      c.Message,
		FilePath:     c.FilePath,
		Kind:         string(c.Kind),
		Severity:     string(c.Severity),
		Labels:       c.Labels,
		SuggestedFix: c.SuggestedFix,
	}
}
