package output

import "github.com/hejijunhao/triage/internal/model"

// FormatReport returns a copy of the report trimmed for compact output.
// When full is false the issue and PR bodies and the fix text are zeroed
// (omitted from JSON via omitempty); titles, branch names, and the
// classification fields remain. With full set, everything is preserved.
func FormatReport(r model.Report, full bool) model.Report {
	if !full {
		r.Issue.Body = ""
		r.PR.Body = ""
		r.Error.SuggestedFix = ""
	}
	return r
}
