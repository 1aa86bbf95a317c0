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

// Color represents the side a piece belongs to.
type Color uint8

const (
	Black Color = iota
	Red

	ColorN = 2
)

// Other returns the opponent's color.
func (c Color) Other() Color {
	return c ^ 1
}

// Forward is the rank direction the men of the color move in.
func (c Color) Forward() int {
	if c == Black {
		return +1
	}

	return -1
}

// BackRank is the rank on which men of the color are promoted, which is
// the rank farthest from the color's starting side.
func (c Color) BackRank() int {
	if c == Black {
		return Size - 1
	}

	return 0
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Title is the capitalized color name used in prompts.
func (c Color) Title() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// the slide deltas usable by men of each color
var forwardDiagonals = [ColorN][]Delta{
	Black: {{-1, +1}, {+1, +1}},
	Red:   {{-1, -1}, {+1, -1}},
}

// Deltas returns the slide deltas usable by a piece of the given color and
// king-ness. Jump deltas are the doubles of the same vectors.
func Deltas(c Color, king bool) []Delta {
	if king {
		return Diagonals[:]
	}

	return forwardDiagonals[c]
}
