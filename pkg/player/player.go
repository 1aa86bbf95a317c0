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

// Package player implements the two kinds of players which can submit
// moves to a game: a human typing at a terminal and a computer picking
// uniformly among its legal moves.
package player

import (
	"errors"
	"fmt"
	"strings"

	"laptudirm.com/x/checkers/pkg/board"
)

var (
	// ErrQuit is returned by PickMove when the player wants to stop playing.
	ErrQuit = errors.New("player quit")

	// ErrNoLegalMove is returned by PickMove when the player has no move.
	ErrNoLegalMove = errors.New("no legal move")
)

// Player is a participant of a game which picks the moves for one color.
type Player interface {
	// Name identifies the player in records and reports.
	Name() string

	// PickMove returns the next move request of the player. The board must
	// not be modified.
	PickMove(b *board.Board) (board.Move, error)
}

// Rejecter is implemented by players who can be asked again after their
// move was rejected. The game reports the rejection through Rejected and
// asks for another move; moves rejected from other players end the game.
type Rejecter interface {
	Rejected(err error)
}

// Kind is the type of a player as given on the command line.
type Kind string

const (
	HumanKind    Kind = "human"
	ComputerKind Kind = "computer"
)

// ParseKind validates a player kind string.
func ParseKind(name string) (Kind, error) {
	switch kind := Kind(strings.ToLower(name)); kind {
	case HumanKind, ComputerKind:
		return kind, nil
	default:
		return "", fmt.Errorf("player: invalid kind %q (want %s or %s)", name, HumanKind, ComputerKind)
	}
}
