package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "checkers", "games")

	require.NoError(t, TryMkdir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directories are left alone
	assert.NoError(t, TryMkdir(dir))
}

func TestGamesDirectory(t *testing.T) {
	assert.Equal(t, filepath.Join(Directory, "games"), GamesDirectory)
	assert.Equal(t, "checkers", filepath.Base(Directory))
}
