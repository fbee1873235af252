// Package scanner drives full-file scans and the interval rescan loop.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/dedup"
	"github.com/hejijunhao/triage/internal/model"
)

const maxLineSize = 1024 * 1024

// Scanner owns one monitoring session: the log path, the classification
// engine, and the signature set that suppresses repeats across scans.
// The set is held by reference and never persisted, so a process restart
// re-emits previously seen errors.
type Scanner struct {
	path string
	eng  *engine.Engine
	seen *dedup.Set
}

// New creates a Scanner for the log file at path. The caller supplies the
// signature set so it can be shared or inspected.
func New(path string, eng *engine.Engine, seen *dedup.Set) *Scanner {
	return &Scanner{path: path, eng: eng, seen: seen}
}

// Scan reads the whole file once and returns classifications whose
// signature has not been seen in a previous pass. A missing file yields
// an empty result and no error, indistinguishable from an error-free
// file. Other I/O failures are returned to the caller.
// Cancellation is checked on entry only, never mid-scan.
func (s *Scanner) Scan(ctx context.Context) ([]model.ErrorClassification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("log file not found", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("scanner: open %s: %w", s.path, err)
	}
	defer f.Close()

	var out []model.ErrorClassification
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		c, ok := s.eng.Process(sc.Text())
		if !ok {
			continue
		}
		if s.seen.Add(dedup.Signature(c)) {
			continue
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner: read %s: %w", s.path, err)
	}
	return out, nil
}

// Monitor rescans the whole file every interval, invoking handle with
// each batch of newly seen errors (empty batches included). There is no
// offset tracking or rotation detection; each pass re-reads from the
// start and relies solely on the signature set. Cancellation takes
// effect between scans. Blocks until ctx is done or a scan or handler
// fails.
func (s *Scanner) Monitor(ctx context.Context, interval time.Duration, handle func([]model.ErrorClassification) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		batch, err := s.Scan(ctx)
		if err != nil {
			return err
		}
		if err := handle(batch); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// SeenCount returns the number of distinct error signatures recorded so
// far in this session.
func (s *Scanner) SeenCount() int {
	return s.seen.Len()
}
