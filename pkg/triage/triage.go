package triage

import (
	"context"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/dedup"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/scanner"
)

// Triage classifies log lines against the fixed error taxonomy and
// deduplicates repeats for its lifetime. The signature set is mutex
// guarded, so one instance may be shared.
type Triage struct {
	eng        *engine.Engine
	seen       *dedup.Set
	batchLimit int
}

// New creates a Triage instance with the default rule table.
func New(opts ...Option) *Triage {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Triage{
		eng:        engine.New(taxonomy.Default()),
		seen:       dedup.NewSet(),
		batchLimit: o.batchLimit,
	}
}

// Classify classifies a single log line without touching the signature
// set. ok is false for lines that are structurally invalid, at an
// unmonitored level, or match no rule.
func (t *Triage) Classify(line string) (Classification, bool) {
	c, ok := t.eng.Process(line)
	if !ok {
		return Classification{}, false
	}
	return fromInternal(c), true
}

// ClassifyBatch classifies lines in order, dropping non-matches and
// errors whose signature this instance has already seen. The configured
// batch limit, if any, caps the result.
func (t *Triage) ClassifyBatch(lines []string) []Classification {
	var out []Classification
	for _, line := range lines {
		c, ok := t.eng.Process(line)
		if !ok {
			continue
		}
		if t.seen.Add(dedup.Signature(c)) {
			continue
		}
		out = append(out, fromInternal(c))
		if t.batchLimit > 0 && len(out) >= t.batchLimit {
			break
		}
	}
	return out
}

// ScanFile runs one full pass over the log file at path, returning newly
// seen errors. Repeated calls on the same instance share the signature
// set, so a second pass over an unchanged file returns nothing. A missing
// file yields an empty result and no error.
func (t *Triage) ScanFile(ctx context.Context, path string) ([]Classification, error) {
	sc := scanner.New(path, t.eng, t.seen)
	batch, err := sc.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if t.batchLimit > 0 && len(batch) > t.batchLimit {
		batch = batch[:t.batchLimit]
	}
	out := make([]Classification, 0, len(batch))
	for _, c := range batch {
		out = append(out, fromInternal(c))
	}
	return out, nil
}

// SeenCount returns the number of distinct error signatures recorded by
// this instance.
func (t *Triage) SeenCount() int {
	return t.seen.Len()
}
