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

// Package notation decodes the textual coordinates and move requests typed
// by players. Files are the letters 'a' to 'h' from left to right, and ranks
// are the digits '8' to '1' from the top of the board (rank index 0) down.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"laptudirm.com/x/checkers/pkg/board"
)

// ErrSyntax indicates text which isn't a coordinate or move request.
var ErrSyntax = errors.New("invalid notation")

// ParseError is returned for text which can't be decoded.
type ParseError struct {
	Input  string // The offending input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v: %s", e.Input, ErrSyntax, e.Reason)
}

// Unwrap returns ErrSyntax.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// quitWords are the inputs which end a game.
var quitWords = []string{"q", "quit", "exit"}

// IsQuit reports whether the given input asks to quit the game.
func IsQuit(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	for _, word := range quitWords {
		if strings.EqualFold(fields[0], word) {
			return true
		}
	}

	return false
}

// ParseCoordinate decodes a two character square token like "c6".
func ParseCoordinate(token string) (board.Coordinate, error) {
	if len(token) != 2 {
		return board.Coordinate{}, &ParseError{Input: token, Reason: "a square is a file letter and a rank digit"}
	}

	file := strings.ToLower(token)[0]
	rank := token[1]

	if file < 'a' || file > 'h' {
		return board.Coordinate{}, &ParseError{Input: token, Reason: "file must be between a and h"}
	}

	if rank < '1' || rank > '8' {
		return board.Coordinate{}, &ParseError{Input: token, Reason: "rank must be between 1 and 8"}
	}

	return board.Coordinate{
		File: int(file - 'a'),
		Rank: int('8' - rank),
	}, nil
}

// ParseMove decodes a move request. The first square is the origin and the
// rest are the destinations in order. Squares may be separated by spaces,
// '-' or 'x', so "c3 d4", "c3-d4" and "a8xc6xe4" are all accepted.
func ParseMove(input string) (board.Move, error) {
	tokens := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == 'x' || r == ','
	})

	if len(tokens) < 2 {
		return board.Move{}, &ParseError{Input: input, Reason: "a move needs an origin and at least one destination"}
	}

	var move board.Move
	var err error

	if move.From, err = ParseCoordinate(tokens[0]); err != nil {
		return board.Move{}, err
	}

	for _, token := range tokens[1:] {
		to, err := ParseCoordinate(token)
		if err != nil {
			return board.Move{}, err
		}

		move.Path = append(move.Path, to)
	}

	return move, nil
}

// ParseColor decodes a color name such as "black" or "Red".
func ParseColor(name string) (board.Color, error) {
	for color := board.Black; color < board.ColorN; color++ {
		if strings.EqualFold(name, color.String()) {
			return color, nil
		}
	}

	return 0, &ParseError{Input: name, Reason: "not a color"}
}
