// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements the rules of 8x8 English draughts: board storage,
// move generation, forced captures, validated move execution, promotion and
// win detection.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPosition is the position diagram of the standard setup.
const StartPosition = "b1b1b1b1/1b1b1b1b/b1b1b1b1/8/8/1r1r1r1r/r1r1r1r1/1r1r1r1r"

// Board is an 8x8 grid of squares, each holding at most one piece. A piece
// placed on a board always records the coordinate of the square holding it.
type Board struct {
	squares [Size][Size]*Piece
}

// New returns a board with the standard setup: twelve pieces per color on
// the dark squares of the three ranks nearest to each side.
func New() *Board {
	board := Empty()

	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			pos := Coordinate{File: file, Rank: rank}
			if !pos.Dark() {
				continue
			}

			switch {
			case rank < 3:
				board.Place(Black, pos)
			case rank >= Size-3:
				board.Place(Red, pos)
			}
		}
	}

	return board
}

// Empty returns a board without any pieces.
func Empty() *Board {
	return &Board{}
}

// At returns the piece at the given coordinate, or nil if the square is
// empty or out of bounds.
func (board *Board) At(pos Coordinate) *Piece {
	if !pos.InBounds() {
		return nil
	}

	return board.squares[pos.Rank][pos.File]
}

// SetAt puts piece, which may be nil, on the given square. It is the
// caller's responsibility to keep the piece's position in sync.
func (board *Board) SetAt(pos Coordinate, piece *Piece) {
	board.squares[pos.Rank][pos.File] = piece
}

// Place creates a new man of the given color on the given square.
func (board *Board) Place(color Color, pos Coordinate) *Piece {
	piece := &Piece{
		Color:    color,
		Position: pos,
		board:    board,
	}

	board.SetAt(pos, piece)
	return piece
}

// Occupied reports whether there is a piece at the given coordinate.
func (board *Board) Occupied(pos Coordinate) bool {
	return board.At(pos) != nil
}

// Unoccupied reports whether the square at the given coordinate is empty.
func (board *Board) Unoccupied(pos Coordinate) bool {
	return board.At(pos) == nil
}

// InBounds reports whether the coordinate lies on the board.
func (board *Board) InBounds(pos Coordinate) bool {
	return pos.InBounds()
}

// Clone returns a deep copy of the board. The pieces of the copy are new
// values which refer to the copy, so it can be mutated freely without
// affecting the original.
func (board *Board) Clone() *Board {
	clone := Empty()

	for rank := range board.squares {
		for file, piece := range board.squares[rank] {
			if piece != nil {
				clone.squares[rank][file] = piece.dup(clone)
			}
		}
	}

	return clone
}

// Pieces returns the pieces of the given color in rank-major order.
func (board *Board) Pieces(color Color) []*Piece {
	var pieces []*Piece
	for rank := range board.squares {
		for _, piece := range board.squares[rank] {
			if piece != nil && piece.Color == color {
				pieces = append(pieces, piece)
			}
		}
	}

	return pieces
}

// Count returns the number of pieces of the given color on the board.
func (board *Board) Count(color Color) int {
	return len(board.Pieces(color))
}

// String returns the position diagram of the board: one row per rank,
// starting from rank 0, separated by '/'. Men are written as 'b' and 'r',
// kings as 'B' and 'R', and runs of empty squares as their length.
func (board *Board) String() string {
	var diagram strings.Builder

	for rank := range board.squares {
		if rank > 0 {
			diagram.WriteByte('/')
		}

		gaps := 0
		for _, piece := range board.squares[rank] {
			if piece == nil {
				gaps++
				continue
			}

			if gaps > 0 {
				diagram.WriteString(strconv.Itoa(gaps))
				gaps = 0
			}

			diagram.WriteByte(piece.Symbol())
		}

		if gaps > 0 {
			diagram.WriteString(strconv.Itoa(gaps))
		}
	}

	return diagram.String()
}

// Parse creates a board from a position diagram in the format produced by
// String. Pieces may only stand on dark squares.
func Parse(diagram string) (*Board, error) {
	board := Empty()

	rows := strings.Split(strings.TrimSpace(diagram), "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: %q: want %d ranks, got %d", ErrInvalidPosition, diagram, Size, len(rows))
	}

	for rank, row := range rows {
		file := 0
		for _, char := range row {
			if file >= Size {
				return nil, fmt.Errorf("%w: %q: rank %d is too long", ErrInvalidPosition, diagram, rank)
			}

			pos := Coordinate{File: file, Rank: rank}

			switch char {
			case '1', '2', '3', '4', '5', '6', '7', '8':
				file += int(char - '0')
				continue
			case 'b', 'B', 'r', 'R':
				if !pos.Dark() {
					return nil, fmt.Errorf("%w: %q: piece on light square %s", ErrInvalidPosition, diagram, pos)
				}

				color := Black
				if char == 'r' || char == 'R' {
					color = Red
				}

				piece := board.Place(color, pos)
				piece.King = char == 'B' || char == 'R'
			default:
				return nil, fmt.Errorf("%w: %q: unexpected character %q", ErrInvalidPosition, diagram, char)
			}

			file++
		}

		if file != Size {
			return nil, fmt.Errorf("%w: %q: rank %d has %d squares", ErrInvalidPosition, diagram, rank, file)
		}
	}

	return board, nil
}
