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

package board

// Piece is a single checker. Pieces are mutated in place when they move or
// are promoted, and captured pieces are simply dropped from the grid.
type Piece struct {
	Color    Color
	King     bool
	Position Coordinate

	// board the piece stands on; only used for occupancy queries
	board *Board
}

// Board returns the board the piece stands on.
func (piece *Piece) Board() *Board {
	return piece.board
}

// Symbol returns the character used for the piece in position diagrams.
func (piece *Piece) Symbol() byte {
	symbol := byte('b')
	if piece.Color == Red {
		symbol = 'r'
	}

	if piece.King {
		symbol -= 'a' - 'A'
	}

	return symbol
}

func (piece *Piece) String() string {
	kind := "man"
	if piece.King {
		kind = "king"
	}

	return piece.Color.String() + " " + kind + " at " + piece.Position.String()
}

// dup returns a copy of the piece which refers to the given board.
func (piece *Piece) dup(board *Board) *Piece {
	return &Piece{
		Color:    piece.Color,
		King:     piece.King,
		Position: piece.Position,
		board:    board,
	}
}

// Deltas returns the slide deltas usable by the piece.
func (piece *Piece) Deltas() []Delta {
	return Deltas(piece.Color, piece.King)
}

// SlideMoves returns the squares the piece can slide to: every empty,
// in-bounds square one usable diagonal step away.
func (piece *Piece) SlideMoves() []Coordinate {
	var moves []Coordinate
	for _, delta := range piece.Deltas() {
		target := piece.Position.Add(delta)
		if piece.board.InBounds(target) && piece.board.Unoccupied(target) {
			moves = append(moves, target)
		}
	}

	return moves
}

// JumpMoves returns the landing squares of the single captures available
// to the piece. The captured square of each is the midpoint between the
// piece's position and the landing.
func (piece *Piece) JumpMoves() []Coordinate {
	var moves []Coordinate
	for _, delta := range piece.Deltas() {
		over := piece.Position.Add(delta)
		landing := piece.Position.Add(delta.Double())

		if !piece.board.InBounds(landing) {
			continue
		}

		if piece.enemyAt(over) && piece.board.Unoccupied(landing) {
			moves = append(moves, landing)
		}
	}

	return moves
}

// CanJump reports whether the piece has at least one capture available.
func (piece *Piece) CanJump() bool {
	return len(piece.JumpMoves()) > 0
}

func (piece *Piece) enemyAt(pos Coordinate) bool {
	other := piece.board.At(pos)
	return other != nil && other.Color != piece.Color
}

// ReachedBackRow reports whether the piece stands on its color's back rank.
func (piece *Piece) ReachedBackRow() bool {
	return piece.Position.Rank == piece.Color.BackRank()
}

// Promote crowns the piece if it has reached its back rank. It reports
// whether the piece was promoted; promoting a king does nothing.
func (piece *Piece) Promote() bool {
	if piece.King || !piece.ReachedBackRow() {
		return false
	}

	piece.King = true
	return true
}

func contains(moves []Coordinate, target Coordinate) bool {
	for _, move := range moves {
		if move == target {
			return true
		}
	}

	return false
}
