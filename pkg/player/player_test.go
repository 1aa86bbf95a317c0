package player

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/notation"
)

func sq(file, rank int) board.Coordinate {
	return board.Coordinate{File: file, Rank: rank}
}

func TestHumanPickMove(t *testing.T) {
	var out strings.Builder
	human := NewHuman(board.Black, strings.NewReader("c6 d5\na8xc6xe4\nnonsense\nquit\n"), &out)

	move, err := human.PickMove(board.New())
	require.NoError(t, err)
	assert.Equal(t, board.Move{From: sq(2, 2), Path: []board.Coordinate{sq(3, 3)}}, move)

	move, err = human.PickMove(board.New())
	require.NoError(t, err)
	assert.Equal(t, []board.Coordinate{sq(2, 2), sq(4, 4)}, move.Path)

	_, err = human.PickMove(board.New())
	assert.ErrorIs(t, err, notation.ErrSyntax)

	_, err = human.PickMove(board.New())
	assert.ErrorIs(t, err, ErrQuit)

	// end of input
	_, err = human.PickMove(board.New())
	assert.ErrorIs(t, err, ErrQuit)

	assert.Contains(t, out.String(), "Black's turn")
}

func TestHumanLastLineWithoutNewline(t *testing.T) {
	human := NewHuman(board.Red, strings.NewReader("f3 e4"), &strings.Builder{})

	move, err := human.PickMove(board.New())
	require.NoError(t, err)
	assert.Equal(t, sq(5, 5), move.From)
}

func TestHumanRejected(t *testing.T) {
	var out strings.Builder
	human := NewHuman(board.Red, strings.NewReader(""), &out)

	b := board.New()
	human.Rejected(b.PerformMove(board.Red, board.Move{From: sq(3, 3), Path: []board.Coordinate{sq(2, 4)}}))
	human.Rejected(b.PerformMove(board.Red, board.Move{From: sq(0, 0), Path: []board.Coordinate{sq(1, 1)}}))
	human.Rejected(b.PerformMove(board.Red, board.Move{From: sq(0, 6), Path: []board.Coordinate{sq(0, 5)}}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "There is no piece there.", lines[0])
	assert.Equal(t, "Cannot move the enemy's pieces.", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Invalid move: "), lines[2])
}

func TestComputerFollowsJumpChain(t *testing.T) {
	b, err := board.Parse("b7/1r6/8/3r4/8/8/8/8")
	require.NoError(t, err)

	before := b.String()

	move, err := NewComputer(board.Black, 1).PickMove(b)
	require.NoError(t, err)

	want := board.Move{From: sq(0, 0), Path: []board.Coordinate{sq(2, 2), sq(4, 4)}}
	if diff := cmp.Diff(want, move); diff != "" {
		t.Errorf("PickMove mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, before, b.String(), "PickMove modified the board")
}

func TestComputerPrefersCaptures(t *testing.T) {
	b := board.New()
	b.Place(board.Red, sq(3, 3))

	for seed := int64(0); seed < 20; seed++ {
		move, err := NewComputer(board.Black, seed).PickMove(b)
		require.NoError(t, err)
		assert.True(t, move.IsJump(), "seed %d picked %s", seed, move)
	}
}

func TestComputerNoLegalMove(t *testing.T) {
	// black man on a8 is blocked and can't capture
	b, err := board.Parse("b7/1r6/2r5/8/8/8/8/8")
	require.NoError(t, err)

	_, err = NewComputer(board.Black, 1).PickMove(b)
	assert.ErrorIs(t, err, ErrNoLegalMove)
}

func TestComputerMovesAreLegal(t *testing.T) {
	const maxPlies = 300

	for seed := int64(0); seed < 25; seed++ {
		b := board.New()
		players := [board.ColorN]*Computer{
			NewComputer(board.Black, seed),
			NewComputer(board.Red, seed+1000),
		}

		turn := board.Black
		for ply := 0; ply < maxPlies; ply++ {
			move, err := players[turn].PickMove(b)
			if errors.Is(err, ErrNoLegalMove) {
				break
			}

			require.NoError(t, err)
			require.NoError(t, b.PerformMove(turn, move), "seed %d ply %d: %s", seed, ply, move)

			if b.Won(turn) {
				break
			}

			turn = turn.Other()
		}
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("Human")
	require.NoError(t, err)
	assert.Equal(t, HumanKind, kind)

	kind, err = ParseKind("computer")
	require.NoError(t, err)
	assert.Equal(t, ComputerKind, kind)

	_, err = ParseKind("robot")
	assert.Error(t, err)
}
