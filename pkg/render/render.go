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

// Package render draws a board for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/checkers/pkg/board"
)

const (
	manGlyph  = " ◉ "
	kingGlyph = " ♚ "
	emptyCell = "   "
)

var (
	darkSquare  = color.BgBlue
	lightSquare = color.BgCyan

	pieceColors = [board.ColorN]color.Attribute{
		board.Black: color.FgBlack,
		board.Red:   color.FgRed,
	}
)

// Board writes the board to w, rank '8' at the top, with coloured squares.
// Colours are left out when color.NoColor is set.
func Board(w io.Writer, b *board.Board) error {
	var out strings.Builder

	out.WriteString("  ")
	for file := 0; file < board.Size; file++ {
		fmt.Fprintf(&out, " %c ", 'a'+file)
	}
	out.WriteByte('\n')

	for rank := 0; rank < board.Size; rank++ {
		fmt.Fprintf(&out, "%c ", '8'-rank)

		for file := 0; file < board.Size; file++ {
			pos := board.Coordinate{File: file, Rank: rank}
			out.WriteString(Square(pos, b.At(pos)))
		}

		fmt.Fprintf(&out, " %c\n", '8'-rank)
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// Square returns the rendering of a single square and its occupant.
func Square(pos board.Coordinate, piece *board.Piece) string {
	background := lightSquare
	if pos.Dark() {
		background = darkSquare
	}

	if piece == nil {
		return color.New(background).Sprint(emptyCell)
	}

	glyph := manGlyph
	if piece.King {
		glyph = kingGlyph
	}

	return color.New(background, pieceColors[piece.Color]).Sprint(glyph)
}
