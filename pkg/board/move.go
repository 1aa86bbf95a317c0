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

import "strings"

// Move is a move request: the origin of the piece to move and the squares
// it should visit. A slide has a single destination, a jump chain has one
// landing square per capture.
type Move struct {
	From Coordinate
	Path []Coordinate
}

// IsJump reports whether the first step of the move spans two ranks.
func (move Move) IsJump() bool {
	if len(move.Path) == 0 {
		return false
	}

	rank := move.Path[0].Rank - move.From.Rank
	return rank == 2 || rank == -2
}

// String returns the move in draughts notation, "c3-d4" for slides and
// "c3xe5xg7" for jumps.
func (move Move) String() string {
	separator := "-"
	if move.IsJump() {
		separator = "x"
	}

	var str strings.Builder
	str.WriteString(move.From.String())
	for _, to := range move.Path {
		str.WriteString(separator)
		str.WriteString(to.String())
	}

	return str.String()
}
