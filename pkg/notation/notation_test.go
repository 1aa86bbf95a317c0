package notation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/checkers/pkg/board"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		token string
		want  board.Coordinate
	}{
		{"a8", board.Coordinate{File: 0, Rank: 0}},
		{"c6", board.Coordinate{File: 2, Rank: 2}},
		{"h1", board.Coordinate{File: 7, Rank: 7}},
		{"E3", board.Coordinate{File: 4, Rank: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseCoordinate(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordinateRoundTrip(t *testing.T) {
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			pos := board.Coordinate{File: file, Rank: rank}
			got, err := ParseCoordinate(pos.String())
			require.NoError(t, err)
			assert.Equal(t, pos, got)
		}
	}
}

func TestParseCoordinateErrors(t *testing.T) {
	for _, token := range []string{"", "c", "c10", "i4", "a0", "a9", "44"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseCoordinate(token)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParseMove(t *testing.T) {
	sq := func(file, rank int) board.Coordinate {
		return board.Coordinate{File: file, Rank: rank}
	}

	tests := []struct {
		input string
		want  board.Move
	}{
		{"c6 d5", board.Move{From: sq(2, 2), Path: []board.Coordinate{sq(3, 3)}}},
		{"c6-d5", board.Move{From: sq(2, 2), Path: []board.Coordinate{sq(3, 3)}}},
		{"  C6   D5 ", board.Move{From: sq(2, 2), Path: []board.Coordinate{sq(3, 3)}}},
		{"a8xc6xe4", board.Move{From: sq(0, 0), Path: []board.Coordinate{sq(2, 2), sq(4, 4)}}},
		{"h8 f6 h4 f2", board.Move{From: sq(7, 0), Path: []board.Coordinate{sq(5, 2), sq(7, 4), sq(5, 6)}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMove(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseMoveString(t *testing.T) {
	for _, input := range []string{"c6-d5", "a8xc6xe4"} {
		move, err := ParseMove(input)
		require.NoError(t, err)
		assert.Equal(t, input, move.String())
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, input := range []string{"", "c6", "c6 z9", "k1 c6", "c6 d5 e"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMove(input)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestIsQuit(t *testing.T) {
	for _, input := range []string{"q", "Q", "quit", "QUIT", "exit", " exit now"} {
		assert.True(t, IsQuit(input), "IsQuit(%q)", input)
	}

	for _, input := range []string{"", "c6 d5", "quitter"} {
		assert.False(t, IsQuit(input), "IsQuit(%q)", input)
	}
}

func TestParseColor(t *testing.T) {
	color, err := ParseColor("Black")
	require.NoError(t, err)
	assert.Equal(t, board.Black, color)

	color, err = ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, board.Red, color)

	_, err = ParseColor("white")
	assert.ErrorIs(t, err, ErrSyntax)
}
