package tracker

import (
	"fmt"
	"strings"

	"github.com/hejijunhao/triage/internal/model"
)

// truncateAt bounds how much of the message is quoted in a PR body.
const truncateAt = 200

// PullRequest drafts a GitHub PR payload carrying the fix for an error,
// referencing the issue it closes. Head and branch are the same fix
// branch; base is the repository default.
func (g *Integrator) PullRequest(e model.ErrorClassification, issueNumber int) model.PRPayload {
	branch := branchName(e, issueNumber)
	title := fmt.Sprintf("🔧 Fix: %s in %s", kindTitle(e.Kind), e.FilePath)

	body := fmt.Sprintf(`## 🔧 Automated Fix for Log Error

**Fixes:** #%d
**Error Type:** %s
**File:** %s

### 📋 Changes Made
This PR implements the suggested fix for the %s detected in the logs.

### 🔍 Error Details
- **Timestamp:** %s
- **Message:** %s
- **Severity:** %s

### ✅ Solution Implemented
%s

### 🧪 Testing
- [ ] Manual testing completed
- [ ] Unit tests added/updated
- [ ] Error no longer appears in logs

---
*This PR was automatically created by triage 🤖*

**Please review carefully before merging!**`,
		issueNumber,
		code(string(e.Kind)),
		code(e.FilePath),
		e.Kind,
		e.Timestamp,
		truncate(e.Message, truncateAt),
		e.Severity,
		e.SuggestedFix,
	)

	return model.PRPayload{
		Branch: branch,
		Title:  title,
		Body:   body,
		Head:   branch,
		Base:   "main",
	}
}

// branchName builds a fix branch name from the error kind, the file path
// with separators dashed and the source suffix stripped, and the issue
// number.
func branchName(e model.ErrorClassification, issueNumber int) string {
	p := strings.TrimSuffix(e.FilePath, ".py")
	p = strings.NewReplacer("/", "-", `\`, "-").Replace(p)
	return fmt.Sprintf("fix/%s-%s-%d", e.Kind, p, issueNumber)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
