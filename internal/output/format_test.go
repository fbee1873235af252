package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/triage/internal/model"
)

func sampleReport() model.Report {
	return model.Report{
		ID: "00000000-0000-0000-0000-000000000001",
		Error: model.ErrorClassification{
			Kind:         model.KindDatabase,
			FilePath:     "clients/models.py",
			Message:      "DatabaseError: boom",
			SuggestedFix: "## Suggested Solution\nwrap it",
		},
		Issue: model.IssuePayload{Title: "issue title", Body: "issue body", Labels: []string{"automated"}},
		PR:    model.PRPayload{Branch: "fix/x", Title: "pr title", Body: "pr body", Head: "fix/x", Base: "main"},
	}
}

func TestFormatReportCompact(t *testing.T) {
	got := FormatReport(sampleReport(), false)

	assert.Empty(t, got.Issue.Body)
	assert.Empty(t, got.PR.Body)
	assert.Empty(t, got.Error.SuggestedFix)

	// Everything else survives trimming.
	assert.Equal(t, "issue title", got.Issue.Title)
	assert.Equal(t, "fix/x", got.PR.Branch)
	assert.Equal(t, "DatabaseError: boom", got.Error.Message)
}

func TestFormatReportFull(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, r, FormatReport(r, true))
}

func TestFormatReportDoesNotMutateInput(t *testing.T) {
	r := sampleReport()
	FormatReport(r, false)
	assert.Equal(t, "issue body", r.Issue.Body)
}

func TestCompactJSONOmitsBodies(t *testing.T) {
	data, err := json.Marshal(FormatReport(sampleReport(), false))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "issue body")
	assert.NotContains(t, string(data), "\"body\"")
	assert.NotContains(t, string(data), "suggested_fix")
}
