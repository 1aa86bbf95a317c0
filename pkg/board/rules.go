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

// PlayerCanJump reports whether any piece of the given color has a capture
// available. If it does, every slide is illegal for that color this turn.
func (board *Board) PlayerCanJump(color Color) bool {
	for _, piece := range board.Pieces(color) {
		if piece.CanJump() {
			return true
		}
	}

	return false
}

// Won reports whether the given color has won, i.e. whether no piece of the
// opponent is left on the board.
func (board *Board) Won(color Color) bool {
	return board.Count(color.Other()) == 0
}
