package tracker

import (
	"fmt"
	"time"

	"github.com/hejijunhao/triage/internal/model"
)

// Issue drafts a GitHub issue payload for a classified error. Labels are
// the rule's labels prefixed with "automated"; assignees are left for the
// repository to configure.
func (g *Integrator) Issue(e model.ErrorClassification) model.IssuePayload {
	title := fmt.Sprintf("🐛 %s: %s", kindTitle(e.Kind), e.FilePath)

	body := fmt.Sprintf(`## 🚨 Automated Error Detection

**Repository:** %s
**Error Type:** %s
**Severity:** %s
**File:** %s
**Timestamp:** %s

### 📋 Error Details
%s

### 🔧 Suggested Fix
%s

### 📊 Error Context
- **Log Level:** %s
- **Detection Time:** %s
- **Auto-generated:** this issue was created by the log monitoring system

### ✅ Next Steps
1. Review the error details above
2. Implement the suggested fix
3. Test the solution
4. Close this issue when resolved

---
*This issue was automatically created by triage 🤖*`,
		code(g.owner+"/"+g.repo),
		code(string(e.Kind)),
		code(string(e.Severity)),
		code(e.FilePath),
		code(e.Timestamp),
		fenced(e.Message),
		e.SuggestedFix,
		e.Level,
		time.Now().Format("2006-01-02 15:04:05"),
	)

	labels := make([]string, 0, len(e.Labels)+1)
	labels = append(labels, "automated")
	labels = append(labels, e.Labels...)

	return model.IssuePayload{
		Title:     title,
		Body:      body,
		Labels:    labels,
		Assignees: []string{},
	}
}
