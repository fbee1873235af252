package triage_test

import (
	"fmt"

	"github.com/hejijunhao/triage/pkg/triage"
)

func Example() {
	tr := triage.New()

	lines := []string{
		"ERROR 2026-03-14 09:12:45,123 django.db 4821 140233 DatabaseError: UNIQUE constraint failed",
		"WARNING 2026-03-14 09:13:02,512 django.security 4821 140233 PermissionDenied: User does not have permission",
		"INFO 2026-03-14 09:13:05,000 django.request 4821 140233 GET /health 200",
	}

	for _, c := range tr.ClassifyBatch(lines) {
		fmt.Printf("%s %s %s\n", c.Kind, c.Severity, c.FilePath)
	}
	// Output:
	// database_error high django.db.py
	// authentication_error medium django.security.py
}
