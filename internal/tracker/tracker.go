// Package tracker drafts GitHub issue and pull request payloads for
// classified errors. Payloads are pure data for a downstream issue
// tracker; nothing here performs network calls.
package tracker

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hejijunhao/triage/internal/model"
)

// placeholderIssue stands in for a tracker-assigned issue number. No live
// tracker participates in this pipeline, so PR drafts reference a fixed
// number.
const placeholderIssue = 999

// Integrator drafts payloads for a single repository.
type Integrator struct {
	owner string
	repo  string
}

// New creates an Integrator for owner/repo.
func New(owner, repo string) *Integrator {
	return &Integrator{owner: owner, repo: repo}
}

// Report drafts the full bundle for one error: the issue, the companion
// PR, and a fresh ID used to track the simulated submission.
func (g *Integrator) Report(e model.ErrorClassification) model.Report {
	return model.Report{
		ID:    uuid.NewString(),
		Error: e,
		Issue: g.Issue(e),
		PR:    g.PullRequest(e, placeholderIssue),
	}
}

// kindTitle renders an error kind as a human-readable title, e.g.
// "database_error" becomes "Database Error".
func kindTitle(k model.Kind) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(k), "_", " "))
}

func code(s string) string {
	return "`" + s + "`"
}

func fenced(s string) string {
	return "```\n" + s + "\n```"
}
