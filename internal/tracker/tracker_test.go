package tracker

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
)

func sample() model.ErrorClassification {
	return model.ErrorClassification{
		Timestamp:    "2026-03-14 09:12:45,123",
		Level:        "ERROR",
		Module:       "django.db",
		Message:      "DatabaseError in clients/models.py: UNIQUE constraint failed",
		FilePath:     "clients/models.py",
		Kind:         model.KindDatabase,
		Severity:     model.SeverityHigh,
		Labels:       []string{"bug", "database", "critical"},
		SuggestedFix: taxonomy.FixFor(model.KindDatabase),
	}
}

func TestIssuePayload(t *testing.T) {
	integ := New("example", "webapp")
	issue := integ.Issue(sample())

	assert.Equal(t, "🐛 Database Error: clients/models.py", issue.Title)
	assert.Equal(t, []string{"automated", "bug", "database", "critical"}, issue.Labels)
	assert.Empty(t, issue.Assignees)

	assert.Contains(t, issue.Body, "`example/webapp`")
	assert.Contains(t, issue.Body, "`database_error`")
	assert.Contains(t, issue.Body, "`high`")
	assert.Contains(t, issue.Body, "`clients/models.py`")
	assert.Contains(t, issue.Body, "UNIQUE constraint failed")
	assert.Contains(t, issue.Body, "## Suggested Solution")
}

func TestPullRequestPayload(t *testing.T) {
	integ := New("example", "webapp")
	pr := integ.PullRequest(sample(), 999)

	assert.Equal(t, "fix/database_error-clients-models-999", pr.Branch)
	assert.Equal(t, pr.Branch, pr.Head)
	assert.Equal(t, "main", pr.Base)
	assert.Equal(t, "🔧 Fix: Database Error in clients/models.py", pr.Title)
	assert.Contains(t, pr.Body, "**Fixes:** #999")
}

func TestPullRequestTruncatesMessage(t *testing.T) {
	e := sample()
	e.Message = strings.Repeat("a", 300)
	pr := New("example", "webapp").PullRequest(e, 999)
	assert.Contains(t, pr.Body, strings.Repeat("a", 200)+"...")
	assert.NotContains(t, pr.Body, strings.Repeat("a", 201))
}

func TestBranchName(t *testing.T) {
	tests := []struct {
		name string
		e    model.ErrorClassification
		want string
	}{
		{
			"nested path",
			model.ErrorClassification{Kind: model.KindDatabase, FilePath: "clients/models.py"},
			"fix/database_error-clients-models-999",
		},
		{
			"windows separators",
			model.ErrorClassification{Kind: model.KindServer, FilePath: `apps\billing\views.py`},
			"fix/server_error-apps-billing-views-999",
		},
		{
			"module fallback path",
			model.ErrorClassification{Kind: model.KindAuthentication, FilePath: "django.security.py"},
			"fix/authentication_error-django.security-999",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, branchName(tt.e, 999))
		})
	}
}

func TestReportBundle(t *testing.T) {
	integ := New("example", "webapp")
	e := sample()

	r1 := integ.Report(e)
	r2 := integ.Report(e)

	_, err := uuid.Parse(r1.ID)
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID, "each report gets a fresh ID")

	assert.Equal(t, e, r1.Error)
	assert.Equal(t, integ.Issue(e).Title, r1.Issue.Title)
	assert.Contains(t, r1.PR.Body, "**Fixes:** #999")
}

func TestFixCodeInterpolatesPath(t *testing.T) {
	integ := New("example", "webapp")
	kinds := []model.Kind{
		model.KindDatabase,
		model.KindAuthentication,
		model.KindValidation,
		model.KindServer,
		model.KindPerformance,
	}
	for _, k := range kinds {
		e := model.ErrorClassification{Kind: k, FilePath: "billing/views.py"}
		snippet := integ.FixCode(e)
		assert.Contains(t, snippet, "billing/views.py", "kind %s", k)
	}

	generic := integ.FixCode(model.ErrorClassification{Kind: "mystery_error", FilePath: "x.py"})
	assert.Contains(t, generic, "# Fix for x.py")
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "Database Error", kindTitle(model.KindDatabase))
	assert.Equal(t, "Performance Issue", kindTitle(model.KindPerformance))
}
