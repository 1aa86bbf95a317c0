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

// PerformSlide moves the piece one diagonal step to the given square.
func (piece *Piece) PerformSlide(to Coordinate) error {
	if !contains(piece.SlideMoves(), to) {
		return moveError(ErrIllegalMove, piece.Position, []Coordinate{to}, 1, "not a legal slide")
	}

	piece.board.SetAt(piece.Position, nil)
	piece.board.SetAt(to, piece)
	piece.Position = to
	return nil
}

// PerformJump moves the piece over an enemy piece to the given landing
// square and removes the captured piece from the board.
func (piece *Piece) PerformJump(to Coordinate) error {
	if !contains(piece.JumpMoves(), to) {
		return moveError(ErrIllegalMove, piece.Position, []Coordinate{to}, 1, "not a legal jump")
	}

	piece.board.SetAt(piece.Position, nil)
	piece.board.SetAt(Midpoint(piece.Position, to), nil)
	piece.board.SetAt(to, piece)
	piece.Position = to
	return nil
}

// PerformMoves validates the given path on a copy of the board and, only if
// the whole request is legal, performs it on the piece's board. A rejected
// request leaves the board untouched.
func (piece *Piece) PerformMoves(path []Coordinate) error {
	if err := piece.ValidMoveSeq(path); err != nil {
		return err
	}

	return piece.performMoves(path)
}

// ValidMoveSeq reports, as a nil error, whether the path is a legal move for
// the piece. It simulates the move on a deep copy of the board.
func (piece *Piece) ValidMoveSeq(path []Coordinate) error {
	simulated := piece.board.Clone().At(piece.Position)
	return simulated.performMoves(path)
}

// performMoves executes the path step by step on the piece's own board,
// stopping at the first illegal step. It does not restore the board on
// failure, so it must only be called on a throwaway copy or after the path
// has been validated.
func (piece *Piece) performMoves(path []Coordinate) error {
	from := piece.Position

	if len(path) == 0 {
		return moveError(ErrMalformedMove, from, path, 0, "no destination given")
	}

	if piece.board.PlayerCanJump(piece.Color) {
		for i, to := range path {
			if !contains(piece.JumpMoves(), to) {
				reason := "not a legal jump"
				if i == 0 && !piece.CanJump() {
					reason = "a capture is available elsewhere"
				}

				return moveError(ErrIllegalMove, from, path, i+1, reason)
			}

			if err := piece.PerformJump(to); err != nil {
				return err
			}
		}

		// a capturing move has to continue while captures remain
		if piece.CanJump() {
			return moveError(ErrIllegalMove, from, path, len(path), "a further capture is available")
		}
	} else {
		if len(path) != 1 {
			return moveError(ErrMalformedMove, from, path, 0, "a slide has a single destination")
		}

		if !contains(piece.SlideMoves(), path[0]) {
			return moveError(ErrIllegalMove, from, path, 1, "not a legal slide")
		}

		if err := piece.PerformSlide(path[0]); err != nil {
			return err
		}
	}

	piece.Promote()
	return nil
}

// PerformMove is the move submission entry point of the board. It checks
// that the origin holds a piece of the given color and performs the move
// atomically.
func (board *Board) PerformMove(color Color, move Move) error {
	piece := board.At(move.From)
	switch {
	case piece == nil:
		return moveError(ErrNoPiece, move.From, move.Path, 0, "")
	case piece.Color != color:
		return moveError(ErrWrongColor, move.From, move.Path, 0, "")
	}

	return piece.PerformMoves(move.Path)
}
