package simulate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
)

func TestLinesCoverEveryKind(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 12, 45, 0, time.UTC)
	lines := Lines(now)
	require.Len(t, lines, 5)

	eng := engine.New(taxonomy.Default())
	want := []model.Kind{
		model.KindDatabase,
		model.KindServer,
		model.KindAuthentication,
		model.KindValidation,
		model.KindPerformance,
	}
	for i, line := range lines {
		c, ok := eng.Process(line)
		require.True(t, ok, "line %d must classify: %q", i, line)
		assert.Equal(t, want[i], c.Kind, "line %d", i)
		assert.Contains(t, line, "2026-03-14 09:12:45")
	}
}

func TestAppendCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Append(path, []string{"one", "two"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestAppendIsAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Append(path, []string{"first"}))
	require.NoError(t, Append(path, []string{"second"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", ""}, strings.Split(string(data), "\n"))
}
