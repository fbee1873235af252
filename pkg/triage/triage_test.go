package triage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/triage/internal/simulate"
	"github.com/hejijunhao/triage/pkg/triage"
)

const dbLine = "ERROR 2026-03-14 09:12:45,123 django.db 4821 140233 DatabaseError in clients/models.py: UNIQUE constraint failed"

func TestClassify(t *testing.T) {
	tr := triage.New()

	c, ok := tr.Classify(dbLine)
	require.True(t, ok)
	assert.Equal(t, "database_error", c.Kind)
	assert.Equal(t, "high", c.Severity)
	assert.Equal(t, "clients/models.py", c.FilePath)
	assert.Equal(t, []string{"bug", "database", "critical"}, c.Labels)
	assert.NotEmpty(t, c.SuggestedFix)

	_, ok = tr.Classify("INFO 2026-03-14 09:12:46,123 django.db 1 2 all good")
	assert.False(t, ok)
}

func TestClassifyDoesNotRecordSignatures(t *testing.T) {
	tr := triage.New()
	_, ok := tr.Classify(dbLine)
	require.True(t, ok)
	assert.Zero(t, tr.SeenCount())

	// The batch path still sees the line as new.
	assert.Len(t, tr.ClassifyBatch([]string{dbLine}), 1)
}

func TestClassifyBatchDedupes(t *testing.T) {
	tr := triage.New()

	first := tr.ClassifyBatch([]string{dbLine, dbLine})
	assert.Len(t, first, 1)
	assert.Equal(t, 1, tr.SeenCount())

	second := tr.ClassifyBatch([]string{dbLine})
	assert.Empty(t, second)
}

func TestClassifyBatchLimit(t *testing.T) {
	tr := triage.New(triage.WithBatchLimit(2))
	lines := []string{
		"ERROR 2026-03-14 09:12:45,123 django.db 1 2 DatabaseError: one",
		"ERROR 2026-03-14 09:12:46,123 django.db 1 2 DatabaseError: two is a much longer different message body",
		"ERROR 2026-03-14 09:12:47,123 django.request 1 2 KeyError: 'three'",
	}
	assert.Len(t, tr.ClassifyBatch(lines), 2)
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, simulate.Append(path, simulate.Lines(now)))

	tr := triage.New()
	first, err := tr.ScanFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, first, 5)
	assert.Equal(t, 5, tr.SeenCount())

	second, err := tr.ScanFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestScanFileMissing(t *testing.T) {
	tr := triage.New()
	got, err := tr.ScanFile(context.Background(), filepath.Join(t.TempDir(), "absent.log"))
	assert.NoError(t, err)
	assert.Empty(t, got)
}
