// Package engine orchestrates the parse and classify steps for log lines.
package engine

import (
	"regexp"

	"github.com/hejijunhao/triage/internal/engine/parser"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
)

// pathPattern hunts for a Python source path anywhere in a message.
var pathPattern = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_/\\]*\.py`)

// Engine turns raw log lines into classified errors using a fixed rule
// table constructed once at initialization.
type Engine struct {
	rules *taxonomy.Table
}

// New creates an Engine over the given rule table.
func New(rules *taxonomy.Table) *Engine {
	return &Engine{rules: rules}
}

// Process parses and classifies one raw line. ok is false when the line
// is structurally invalid, at an unmonitored level, or matches no rule.
// All three are silent skips, not errors.
func (e *Engine) Process(line string) (model.ErrorClassification, bool) {
	rec, ok := parser.Parse(line)
	if !ok {
		return model.ErrorClassification{}, false
	}
	rule, ok := e.rules.Match(rec.Message)
	if !ok {
		return model.ErrorClassification{}, false
	}
	return model.ErrorClassification{
		Timestamp:    rec.Timestamp,
		Level:        rec.Level,
		Module:       rec.Module,
		Message:      rec.Message,
		FilePath:     extractFilePath(rec.Message, rec.Module),
		Kind:         rule.Kind,
		Severity:     rule.Severity,
		Labels:       rule.Labels,
		SuggestedFix: taxonomy.FixFor(rule.Kind),
	}, true
}

// ProcessBatch classifies a slice of raw lines in order, dropping lines
// that do not classify.
func (e *Engine) ProcessBatch(lines []string) []model.ErrorClassification {
	out := make([]model.ErrorClassification, 0, len(lines))
	for _, line := range lines {
		if c, ok := e.Process(line); ok {
			out = append(out, c)
		}
	}
	return out
}

// extractFilePath pulls a path-like token from the message, falling back
// to a "<module>.py" placeholder when none is present. Absence is not an
// error.
func extractFilePath(message, module string) string {
	if m := pathPattern.FindString(message); m != "" {
		return m
	}
	return module + ".py"
}
