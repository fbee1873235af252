// Package parser turns raw log lines into structured records.
package parser

import (
	"regexp"
	"strings"

	"github.com/hejijunhao/triage/internal/model"
)

// linePattern matches the Django-style structural format:
// LEVEL YYYY-MM-DD HH:MM:SS,mmm MODULE PID TID MESSAGE...
// Module names may be dotted logger paths (django.db.backends). PID and
// TID must be present but are not retained.
var linePattern = regexp.MustCompile(`^(\w+)\s+(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2},\d{3})\s+([\w.]+)\s+\d+\s+\d+\s+(.*)$`)

// Monitored reports whether lines at the given level are considered at all.
func Monitored(level string) bool {
	switch level {
	case model.LevelError, model.LevelCritical, model.LevelWarning:
		return true
	}
	return false
}

// Parse matches one raw line against the structural format. ok is false
// when the line does not fit the five-field prefix or its level is not
// monitored. Such lines are skipped, never treated as errors, even when
// the message contains an error keyword.
func Parse(line string) (rec model.LogRecord, ok bool) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.LogRecord{}, false
	}
	rec = model.LogRecord{
		Level:     m[1],
		Timestamp: m[2],
		Module:    m[3],
		Message:   m[4],
	}
	if !Monitored(rec.Level) {
		return model.LogRecord{}, false
	}
	return rec, true
}
