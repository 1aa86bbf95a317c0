package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/player"
)

func playedGame(t *testing.T, seed int64) *Game {
	t.Helper()

	game := New(player.NewComputer(board.Black, seed), player.NewComputer(board.Red, seed+1))
	game.MaxPlies = 30

	_, _, err := game.Play()
	require.NoError(t, err)
	return game
}

func TestRecordSaveLoad(t *testing.T) {
	dir := t.TempDir()
	game := playedGame(t, 7)

	record := game.Record()
	assert.Equal(t, "Computer (black)", record.Players.Black)
	assert.Equal(t, "black", record.Turn)
	assert.Len(t, record.Moves, len(game.Moves))

	path, err := record.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, game.ID.String()+".yaml"), path)

	loaded, err := LoadRecord(path)
	require.NoError(t, err)

	if diff := cmp.Diff(record, loaded); diff != "" {
		t.Errorf("loaded record mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestRecordReplay(t *testing.T) {
	game := playedGame(t, 3)

	plies := 0
	final, err := game.Record().Replay(func(ply int, _ board.Move, _ *board.Board) {
		plies++
		assert.Equal(t, plies, ply)
	})
	require.NoError(t, err)

	assert.Equal(t, len(game.Moves), plies)
	assert.Equal(t, game.Board.String(), final.String())
}

func TestRecordReplayRejectsIllegalMoves(t *testing.T) {
	record := playedGame(t, 5).Record()
	require.NotEmpty(t, record.Moves)

	// a man can't slide backwards as its first move
	record.Moves = append([]string{"c6-b7"}, record.Moves...)

	_, err := record.Replay(nil)
	assert.ErrorIs(t, err, board.ErrIllegalMove)
	assert.Contains(t, err.Error(), "ply 1")
}

func TestListAndFindRecords(t *testing.T) {
	dir := t.TempDir()

	var ids []string
	for seed := int64(0); seed < 3; seed++ {
		record := playedGame(t, seed).Record()
		_, err := record.Save(dir)
		require.NoError(t, err)
		ids = append(ids, record.ID.String())
	}

	// files which aren't records are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))

	records, err := ListRecords(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Started.Before(records[i-1].Started))
	}

	path, err := FindRecord(dir, strings.ToUpper(ids[1][:8]))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ids[1]+".yaml"), path)

	_, err = FindRecord(dir, "zzzz")
	assert.ErrorIs(t, err, ErrNoRecord)

	_, err = FindRecord(dir, "")
	assert.ErrorContains(t, err, "ambiguous")
}
