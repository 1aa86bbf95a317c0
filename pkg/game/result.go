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

package game

import (
	"fmt"

	"laptudirm.com/x/checkers/pkg/board"
)

// Result represents the result of a single game, from Black's point of view.
type Result int

const (
	BlackWins Result = +1
	Undecided Result = 0
	RedWins   Result = -1
)

// Reasons a game may end with.
const (
	ReasonEradication = "Eradication"
	ReasonQuit        = "Quit"
	ReasonNoMoves     = "No legal moves"
	ReasonPlyLimit    = "Ply limit"
)

// GameWonBy maps the winning color to the game's Result.
var GameWonBy = [board.ColorN]Result{
	board.Black: BlackWins,
	board.Red:   RedWins,
}

// Winner returns the color which won the game. ok is false if the game
// wasn't decided.
func (result Result) Winner() (color board.Color, ok bool) {
	switch result {
	case BlackWins:
		return board.Black, true
	case RedWins:
		return board.Red, true
	default:
		return 0, false
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case BlackWins:
		return "1-0"
	case Undecided:
		return "*"
	case RedWins:
		return "0-1"
	default:
		return "?-?"
	}
}

// ParseResult parses the string representation of a Result.
func ParseResult(str string) (Result, error) {
	switch str {
	case "1-0":
		return BlackWins, nil
	case "*":
		return Undecided, nil
	case "0-1":
		return RedWins, nil
	default:
		return Undecided, fmt.Errorf("game: invalid result %q", str)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (result Result) MarshalText() ([]byte, error) {
	return []byte(result.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (result *Result) UnmarshalText(text []byte) error {
	parsed, err := ParseResult(string(text))
	if err != nil {
		return err
	}

	*result = parsed
	return nil
}

// Announcement is a human readable sentence describing the result.
func (result Result) Announcement(reason string) string {
	if winner, ok := result.Winner(); ok {
		return fmt.Sprintf("%s wins! (%s)", winner.Title(), reason)
	}

	return fmt.Sprintf("Game undecided. (%s)", reason)
}
