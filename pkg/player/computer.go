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
	"io"
	"math/rand"
	"time"

	"github.com/briandowns/spinner"

	"laptudirm.com/x/checkers/pkg/board"
)

// Computer picks a uniformly random legal move for its color. When a
// capture is available it picks among the pieces which can capture and
// then follows a random jump chain until no capture is left.
type Computer struct {
	Color board.Color

	// Delay is the time the computer pretends to think before moving. A
	// spinner is shown on Out while it does.
	Delay time.Duration
	Out   io.Writer

	rng *rand.Rand
}

// NewComputer returns a computer player using its own random source.
func NewComputer(color board.Color, seed int64) *Computer {
	return &Computer{
		Color: color,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (computer *Computer) Name() string {
	return "Computer (" + computer.Color.String() + ")"
}

// PickMove returns a random legal move, or ErrNoLegalMove if the computer
// has none. The board is not modified.
func (computer *Computer) PickMove(b *board.Board) (board.Move, error) {
	computer.think()

	if b.PlayerCanJump(computer.Color) {
		var jumpers []*board.Piece
		for _, piece := range b.Pieces(computer.Color) {
			if piece.CanJump() {
				jumpers = append(jumpers, piece)
			}
		}

		piece := jumpers[computer.rng.Intn(len(jumpers))]
		return board.Move{
			From: piece.Position,
			Path: computer.jumpChain(piece),
		}, nil
	}

	var sliders []*board.Piece
	for _, piece := range b.Pieces(computer.Color) {
		if len(piece.SlideMoves()) > 0 {
			sliders = append(sliders, piece)
		}
	}

	if len(sliders) == 0 {
		return board.Move{}, ErrNoLegalMove
	}

	piece := sliders[computer.rng.Intn(len(sliders))]
	slides := piece.SlideMoves()

	return board.Move{
		From: piece.Position,
		Path: []board.Coordinate{slides[computer.rng.Intn(len(slides))]},
	}, nil
}

// jumpChain plays random jumps with the piece on a copy of its board until
// it can't capture any more, returning the landing squares.
func (computer *Computer) jumpChain(piece *board.Piece) []board.Coordinate {
	simulated := piece.Board().Clone().At(piece.Position)

	var path []board.Coordinate
	for {
		jumps := simulated.JumpMoves()
		if len(jumps) == 0 {
			return path
		}

		to := jumps[computer.rng.Intn(len(jumps))]
		if err := simulated.PerformJump(to); err != nil {
			// JumpMoves only returns legal landings
			panic(err)
		}

		path = append(path, to)
	}
}

func (computer *Computer) think() {
	if computer.Delay <= 0 {
		return
	}

	if computer.Out == nil {
		time.Sleep(computer.Delay)
		return
	}

	s := spinner.New(spinner.CharSets[31], 100*time.Millisecond, spinner.WithWriter(computer.Out))
	s.Suffix = " " + computer.Color.Title() + " is thinking..."
	s.Start()
	time.Sleep(computer.Delay)
	s.Stop()
}
