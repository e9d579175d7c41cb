package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledByDefault(t *testing.T) {
	t.Setenv("GIT_PR_DEBUG", "")
	t.Setenv("GIT_PR_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("GIT_PR_DEBUG", "")
	t.Setenv("GIT_PR_DEBUG_FILE", "")
	debugFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, debugFile, DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging initialized")
}

func TestInitialize_DebugFileFromEnv(t *testing.T) {
	debugFile := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("GIT_PR_DEBUG", "")
	t.Setenv("GIT_PR_DEBUG_FILE", debugFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, debugFile, path)
}

func TestRotateLogs_RemovesOldestFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{"a.log", "b.log", "c.log", "keep.txt"}
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err), "second oldest log should be removed to make room")
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestRotateLogs_UnderLimitKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
