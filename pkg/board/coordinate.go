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

import "fmt"

// Size is the number of files and ranks on the board.
const Size = 8

// Coordinate addresses a square of the board. Rank 0 is the rank Black
// starts on and is written as '8' in text notation.
type Coordinate struct {
	File, Rank int
}

// InBounds reports whether both the file and rank are in [0, Size).
func (c Coordinate) InBounds() bool {
	return c.File >= 0 && c.File < Size &&
		c.Rank >= 0 && c.Rank < Size
}

// Add returns the coordinate displaced by the given delta.
func (c Coordinate) Add(d Delta) Coordinate {
	return Coordinate{File: c.File + d.File, Rank: c.Rank + d.Rank}
}

// Dark reports whether c is one of the playable squares.
func (c Coordinate) Dark() bool {
	return (c.File+c.Rank)%2 == 0
}

// String returns the coordinate in text notation, like "c6".
func (c Coordinate) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}

	return fmt.Sprintf("%c%c", 'a'+c.File, '8'-c.Rank)
}

// Midpoint returns the square halfway between a and b. For a jump this is
// the square of the captured piece.
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{
		File: (a.File + b.File) / 2,
		Rank: (a.Rank + b.Rank) / 2,
	}
}

// Delta is a displacement between two coordinates.
type Delta struct {
	File, Rank int
}

// Double returns the delta scaled by two, which turns a slide delta into
// the matching jump delta.
func (d Delta) Double() Delta {
	return Delta{File: 2 * d.File, Rank: 2 * d.Rank}
}

// Diagonals are the four diagonal unit deltas.
var Diagonals = [4]Delta{
	{-1, -1}, {1, -1},
	{-1, +1}, {1, +1},
}
