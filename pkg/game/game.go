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

// Package game runs the turn loop of a single game between two players and
// keeps a record of it.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/notation"
	"laptudirm.com/x/checkers/pkg/player"
	"laptudirm.com/x/checkers/pkg/render"
)

// Game is a single game between two players. Black moves first unless the
// game is started from a custom position.
type Game struct {
	ID      uuid.UUID
	Started time.Time

	// Position is the diagram of the starting position.
	Position string
	Board    *board.Board
	Turn     board.Color

	Players [board.ColorN]player.Player

	// MaxPlies ends the game undecided after that many moves. Zero means
	// no limit.
	MaxPlies int

	// Out receives a drawing of the board before every move and the result
	// at the end. Nothing is drawn if it is nil.
	Out io.Writer

	Moves  []board.Move
	Result Result
	Reason string

	first board.Color
}

// New returns a game from the standard starting position.
func New(black, red player.Player) *Game {
	game, _ := NewFromPosition(board.StartPosition, board.Black, black, red)
	return game
}

// NewFromPosition returns a game starting from the given position diagram
// with the given color to move.
func NewFromPosition(position string, turn board.Color, black, red player.Player) (*Game, error) {
	b, err := board.Parse(position)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:       uuid.New(),
		Position: position,
		Board:    b,
		Turn:     turn,
		first:    turn,
		Players: [board.ColorN]player.Player{
			board.Black: black,
			board.Red:   red,
		},
	}, nil
}

// Play runs the game until it is over and returns its result. Moves which
// are rejected by the board are passed back to players implementing
// player.Rejecter, who are then asked again. Rejected moves of any other
// player are a fault and end the game with an error.
func (game *Game) Play() (Result, string, error) {
	game.Started = time.Now()

	log := logrus.WithField("game", game.ID.String()[:8])
	log.Debugf("Started game %s vs %s", game.Players[board.Black].Name(), game.Players[board.Red].Name())

	for {
		if game.MaxPlies > 0 && len(game.Moves) >= game.MaxPlies {
			return game.finish(Undecided, ReasonPlyLimit)
		}

		if err := game.draw(); err != nil {
			return Undecided, "", err
		}

		mover := game.Players[game.Turn]
		move, err := mover.PickMove(game.Board)

		switch {
		case errors.Is(err, player.ErrQuit):
			log.Debugf("%s quit", mover.Name())
			return game.finish(Undecided, ReasonQuit)
		case errors.Is(err, player.ErrNoLegalMove):
			return game.finish(Undecided, ReasonNoMoves)
		case err == nil:
			err = game.Board.PerformMove(game.Turn, move)
		}

		if err != nil {
			if rejecter, ok := mover.(player.Rejecter); ok && recoverable(err) {
				log.WithField("color", game.Turn).Debugf("Rejected move: %v", err)
				rejecter.Rejected(err)
				continue
			}

			return Undecided, "", fmt.Errorf("game: %s: %w", mover.Name(), err)
		}

		game.Moves = append(game.Moves, move)
		log.WithFields(logrus.Fields{
			"ply":   len(game.Moves),
			"color": game.Turn,
			"move":  move,
		}).Debug("Played move")

		if game.Board.Won(game.Turn) {
			if err := game.draw(); err != nil {
				return Undecided, "", err
			}

			return game.finish(GameWonBy[game.Turn], ReasonEradication)
		}

		game.Turn = game.Turn.Other()
	}
}

func (game *Game) finish(result Result, reason string) (Result, string, error) {
	game.Result, game.Reason = result, reason

	logrus.WithField("game", game.ID.String()[:8]).
		Debugf("Finished game after %d plies: %s {%s}", len(game.Moves), result, reason)

	if game.Out != nil {
		fmt.Fprintln(game.Out, result.Announcement(reason))
	}

	return result, reason, nil
}

func (game *Game) draw() error {
	if game.Out == nil {
		return nil
	}

	fmt.Fprintln(game.Out)
	return render.Board(game.Out, game.Board)
}

// recoverable reports whether err is a rejection of the move request
// rather than a failure of the player.
func recoverable(err error) bool {
	var moveErr *board.MoveError
	return errors.As(err, &moveErr) || errors.Is(err, notation.ErrSyntax)
}
