// Package triage exposes the log error triage engine as an embeddable
// library.
//
// A Triage instance classifies application log lines against a fixed
// five-kind error taxonomy and suppresses duplicate errors by signature
// for its lifetime:
//
//	t := triage.New()
//	c, ok := t.Classify(line)
//	if ok {
//		fmt.Println(c.Kind, c.Severity, c.FilePath)
//	}
//
// The signature set is owned by the instance and never persisted; a new
// instance starts with a clean slate.
package triage
