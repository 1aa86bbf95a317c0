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

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported by the rules engine. All of them are recoverable:
// a rejected request never modifies the board.
var (
	// ErrNoPiece indicates that the origin of a move request is empty.
	ErrNoPiece = errors.New("no piece at origin")

	// ErrWrongColor indicates an attempt to move the opponent's piece.
	ErrWrongColor = errors.New("cannot move the opponent's piece")

	// ErrIllegalMove indicates a request which violates the rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMalformedMove indicates a request of the wrong shape, like an
	// empty path or a multi-square slide.
	ErrMalformedMove = errors.New("malformed move request")

	// ErrInvalidPosition indicates a position diagram which can't be parsed.
	ErrInvalidPosition = errors.New("invalid position")
)

// MoveError wraps one of the sentinel errors with the context of the move
// request which caused it.
type MoveError struct {
	Err    error        // The underlying sentinel error
	From   Coordinate   // Origin of the request
	Path   []Coordinate // Requested destinations
	Step   int          // 1-based index into Path of the failing step, 0 if none
	Reason string       // Human readable detail, may be empty
}

func (e *MoveError) Error() string {
	var b strings.Builder

	b.WriteString("move ")
	b.WriteString(e.From.String())
	for _, to := range e.Path {
		b.WriteByte(' ')
		b.WriteString(to.String())
	}

	if e.Step > 0 {
		fmt.Fprintf(&b, " (step %d)", e.Step)
	}

	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

// Unwrap returns the underlying sentinel error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveError(err error, from Coordinate, path []Coordinate, step int, reason string) *MoveError {
	return &MoveError{
		Err:    err,
		From:   from,
		Path:   append([]Coordinate(nil), path...),
		Step:   step,
		Reason: reason,
	}
}
