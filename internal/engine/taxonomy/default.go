package taxonomy

import (
	"regexp"

	"github.com/hejijunhao/triage/internal/model"
)

// Default returns the built-in rule table. The sequence is load-bearing:
// database_error precedes server_error, so a message matching both
// classifies as database_error.
func Default() *Table {
	return New([]Rule{
		{
			Kind:     model.KindDatabase,
			Pattern:  regexp.MustCompile(`(?i)(DatabaseError|IntegrityError|OperationalError)`),
			Severity: model.SeverityHigh,
			Labels:   []string{"bug", "database", "critical"},
		},
		{
			Kind:     model.KindAuthentication,
			Pattern:  regexp.MustCompile(`(?i)(AuthenticationFailed|PermissionDenied|Unauthorized)`),
			Severity: model.SeverityMedium,
			Labels:   []string{"bug", "security", "auth"},
		},
		{
			Kind:     model.KindValidation,
			Pattern:  regexp.MustCompile(`(?i)(ValidationError|Invalid.*|Bad.*Request)`),
			Severity: model.SeverityMedium,
			Labels:   []string{"bug", "validation"},
		},
		{
			Kind:     model.KindServer,
			Pattern:  regexp.MustCompile(`(?i)(500|Internal Server Error|AttributeError|KeyError)`),
			Severity: model.SeverityHigh,
			Labels:   []string{"bug", "server-error", "critical"},
		},
		{
			Kind:     model.KindPerformance,
			Pattern:  regexp.MustCompile(`(?i)(slow query|timeout|performance)`),
			Severity: model.SeverityMedium,
			Labels:   []string{"performance", "optimization"},
		},
	})
}
