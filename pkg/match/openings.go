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

package match

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/notation"
)

// Opening is a starting position for the games of a match.
type Opening struct {
	Position string
	Turn     board.Color
}

// ParseOpening parses an opening book line: a position diagram optionally
// followed by the color to move, which is Black if left out.
func ParseOpening(line string) (Opening, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 2 {
		return Opening{}, fmt.Errorf("opening %q: want a position and an optional color", line)
	}

	if _, err := board.Parse(fields[0]); err != nil {
		return Opening{}, fmt.Errorf("opening %q: %w", line, err)
	}

	opening := Opening{Position: fields[0], Turn: board.Black}
	if len(fields) == 2 {
		color, err := notation.ParseColor(fields[1])
		if err != nil {
			return Opening{}, fmt.Errorf("opening %q: %w", line, err)
		}

		opening.Turn = color
	}

	return opening, nil
}

// NewBook reads an opening book with one opening per line. Empty lines and
// lines starting with '#' are skipped. An empty name returns a book with
// only the standard starting position.
func NewBook(name string, strategy string, rng *rand.Rand) (*Book, error) {
	switch strategy {
	case "", "sequential", "random":
	default:
		return nil, fmt.Errorf("invalid opening order %q", strategy)
	}

	book := Book{strategy: strategy, rng: rng}

	if name == "" {
		book.entries = []Opening{{Position: board.StartPosition, Turn: board.Black}}
		return &book, nil
	}

	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(file), "\n") {
		line = strings.Trim(line, "\n\r\t ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		opening, err := ParseOpening(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		book.entries = append(book.entries, opening)
	}

	if len(book.entries) == 0 {
		return nil, fmt.Errorf("%s: no openings found", name)
	}

	return &book, nil
}

// Book is a list of openings which are played one after the other.
type Book struct {
	entries  []Opening
	strategy string
	current  int

	rng *rand.Rand
}

// Next switches to the next opening in the book.
func (book *Book) Next() {
	switch book.strategy {
	case "random":
		book.current = book.rng.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

// Current returns the current opening.
func (book *Book) Current() Opening {
	return book.entries[book.current]
}

// Len is the number of openings in the book.
func (book *Book) Len() int {
	return len(book.entries)
}
