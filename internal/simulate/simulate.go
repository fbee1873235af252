// Package simulate injects canonical test errors into a log file.
package simulate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Lines returns the five canned error lines, one per taxonomy kind. The
// PermissionDenied and slow-query lines are WARNINGs on purpose: severity
// comes from the rule table, not from the log level.
func Lines(now time.Time) []string {
	stamp := now.Format("2006-01-02 15:04:05")
	return []string{
		fmt.Sprintf("ERROR %s,123 django.db.backends 12345 67890 DatabaseError: UNIQUE constraint failed: clients_client.email", stamp),
		fmt.Sprintf("ERROR %s,456 django.request 12345 67890 Internal Server Error: AttributeError: 'NoneType' object has no attribute 'gym'", stamp),
		fmt.Sprintf("WARNING %s,789 django.security 12345 67890 PermissionDenied: User does not have permission to access /admin/", stamp),
		fmt.Sprintf("ERROR %s,012 django.request 12345 67890 ValidationError: Invalid membership plan selected", stamp),
		fmt.Sprintf("WARNING %s,345 django.db 12345 67890 Slow query detected: SELECT * FROM clients_client took 2.5 seconds", stamp),
	}
}

// Append writes lines to the log file at path, creating the parent
// directory as needed.
func Append(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("simulate: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("simulate: open %s: %w", path, err)
	}
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("simulate: write %s: %w", path, err)
	}
	return f.Close()
}
