package model

// Kind is one of the five fixed error categories.
type Kind string

const (
	KindDatabase       Kind = "database_error"
	KindAuthentication Kind = "authentication_error"
	KindValidation     Kind = "validation_error"
	KindServer         Kind = "server_error"
	KindPerformance    Kind = "performance_issue"
)

// Severity of a classified error. Severity comes from the matched rule,
// never from the line's log level.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ErrorClassification is a classified error line ready for triage.
type ErrorClassification struct {
	Timestamp    string   `json:"timestamp"`
	Level        string   `json:"level"`
	Module       string   `json:"module"`
	Message      string   `json:"message"`
	FilePath     string   `json:"file_path"` // best-effort extraction; "<module>.py" when absent
	Kind         Kind     `json:"kind"`
	Severity     Severity `json:"severity"`
	Labels       []string `json:"labels"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
}
