// Package taxonomy holds the fixed, ordered table of error rules.
package taxonomy

import (
	"regexp"

	"github.com/hejijunhao/triage/internal/model"
)

// Rule pairs an error kind with its detection pattern and triage metadata.
type Rule struct {
	Kind     model.Kind
	Pattern  *regexp.Regexp
	Severity model.Severity
	Labels   []string
}

// Table is an ordered rule set. Order is the tie-break: on an ambiguous
// message the earliest matching rule wins.
type Table struct {
	rules []Rule
}

// New creates a Table from the given rules, preserving their order.
func New(rules []Rule) *Table {
	return &Table{rules: rules}
}

// Match scans the table in order and returns the first rule whose pattern
// matches anywhere in the message. Matching is a substring search, not a
// full-line anchor. The sequential scan with early exit is the documented
// tie-break; do not replace it with a map dispatch.
func (t *Table) Match(message string) (Rule, bool) {
	for _, r := range t.rules {
		if r.Pattern.MatchString(message) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns the table contents in order.
func (t *Table) Rules() []Rule {
	return t.rules
}
