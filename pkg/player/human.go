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

package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/notation"
)

// Instructions explains how to enter moves.
var Instructions = heredoc.Doc(`
	HOW TO PLAY:
	Enter a move as a 'from' and 'to' position with a space between,
	for example: c6 d5
	To make a multiple-jump, include all destinations,
	for example: h8 f6 h4 f2
	Enter q, quit or exit to stop playing.
`)

// Human reads the moves of one color from a text stream.
type Human struct {
	Color board.Color

	in  *bufio.Reader
	out io.Writer
}

// NewHuman returns a player reading moves from in and writing prompts to out.
func NewHuman(color board.Color, in io.Reader, out io.Writer) *Human {
	return &Human{
		Color: color,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

func (human *Human) Name() string {
	return "Human (" + human.Color.String() + ")"
}

// PickMove prompts for and decodes the next move. A line which can't be
// decoded is returned as a notation.ErrSyntax error so that the prompt can
// be repeated. End of input is treated as quitting.
func (human *Human) PickMove(_ *board.Board) (board.Move, error) {
	fmt.Fprintf(human.out, "%s's turn. Enter move, e.g. c6 d5: ", human.Color.Title())

	line, err := human.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return board.Move{}, err
		}

		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(human.out)
			return board.Move{}, ErrQuit
		}
	}

	if notation.IsQuit(line) {
		return board.Move{}, ErrQuit
	}

	return notation.ParseMove(line)
}

// Rejected tells the human why their move wasn't accepted.
func (human *Human) Rejected(err error) {
	switch {
	case errors.Is(err, board.ErrNoPiece):
		fmt.Fprintln(human.out, "There is no piece there.")
	case errors.Is(err, board.ErrWrongColor):
		fmt.Fprintln(human.out, "Cannot move the enemy's pieces.")
	default:
		fmt.Fprintf(human.out, "Invalid move: %v\n", err)
	}
}
