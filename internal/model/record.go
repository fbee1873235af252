package model

// Log levels the scanner cares about. Lines at any other level are skipped
// before classification, regardless of message content.
const (
	LevelError    = "ERROR"
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// LogRecord is one structurally parsed log line.
// Timestamp keeps the source format (YYYY-MM-DD HH:MM:SS,mmm) verbatim.
type LogRecord struct {
	Timestamp string
	Level     string
	Module    string
	Message   string
}
