// Package dedup suppresses repeat emissions of the same error within one
// scanner session.
package dedup

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/hejijunhao/triage/internal/model"
)

// prefixLen bounds how much of the message feeds the signature hash.
// Distinct errors sharing a 100-character prefix collapse into one; that
// approximation is part of the contract.
const prefixLen = 100

// Signature derives the dedupe key for a classification: error kind,
// extracted file path, and a hash of the message prefix.
func Signature(e model.ErrorClassification) string {
	msg := e.Message
	if r := []rune(msg); len(r) > prefixLen {
		msg = string(r[:prefixLen])
	}
	h := fnv.New64a()
	h.Write([]byte(msg))
	return fmt.Sprintf("%s:%s:%x", e.Kind, e.FilePath, h.Sum64())
}

// Set records the signatures seen during one session. First occurrence
// wins; later duplicates are silently suppressed. The set lives in memory
// only, so a restart re-emits everything.
type Set struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewSet returns an empty Set. The mutex keeps a shared set correct if
// more than one scan source ever feeds it.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records sig and reports whether it had been seen before.
func (s *Set) Add(sig string) (dup bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[sig]; ok {
		return true
	}
	s.seen[sig] = struct{}{}
	return false
}

// Len returns the number of distinct signatures recorded.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
