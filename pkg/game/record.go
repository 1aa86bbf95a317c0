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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/notation"
)

const recordExt = ".yaml"

// ErrNoRecord is returned when no saved game matches an id.
var ErrNoRecord = errors.New("no such game record")

// Record is the saved form of a finished game.
type Record struct {
	ID       uuid.UUID `yaml:"id"`
	Started  time.Time `yaml:"started"`
	Position string    `yaml:"position"`
	Turn     string    `yaml:"turn"`

	Players struct {
		Black string `yaml:"black"`
		Red   string `yaml:"red"`
	} `yaml:"players"`

	Moves  []string `yaml:"moves,flow"`
	Result Result   `yaml:"result"`
	Reason string   `yaml:"reason"`
}

// Record returns the record of the game.
func (game *Game) Record() *Record {
	record := &Record{
		ID:       game.ID,
		Started:  game.Started,
		Position: game.Position,
		Turn:     game.first.String(),
		Result:   game.Result,
		Reason:   game.Reason,
	}

	record.Players.Black = game.Players[board.Black].Name()
	record.Players.Red = game.Players[board.Red].Name()

	for _, move := range game.Moves {
		record.Moves = append(record.Moves, move.String())
	}

	return record
}

// Filename is the name of the record's file in a games directory.
func (record *Record) Filename() string {
	return record.ID.String() + recordExt
}

// Save writes the record into the given directory and returns its path.
func (record *Record) Save(dir string) (string, error) {
	data, err := yaml.Marshal(record)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, record.Filename())
	return path, os.WriteFile(path, data, 0644)
}

// LoadRecord reads a record from the given file.
func LoadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return &record, nil
}

// ListRecords loads every record in the directory, oldest first.
func ListRecords(dir string) ([]*Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var records []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordExt {
			continue
		}

		record, err := LoadRecord(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Started.Before(records[j].Started)
	})

	return records, nil
}

// FindRecord returns the path of the record whose id starts with the given
// prefix. The prefix must match exactly one record.
func FindRecord(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	prefix = strings.ToLower(prefix)

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) == recordExt && strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoRecord, prefix)
	case 1:
		return filepath.Join(dir, matches[0]), nil
	default:
		return "", fmt.Errorf("game id %s is ambiguous: %d records match", prefix, len(matches))
	}
}

// Replay plays the recorded moves again from the recorded position,
// validating each of them. visit, if not nil, is called after every move.
// The final board is returned.
func (record *Record) Replay(visit func(ply int, move board.Move, b *board.Board)) (*board.Board, error) {
	b, err := board.Parse(record.Position)
	if err != nil {
		return nil, err
	}

	turn, err := notation.ParseColor(record.Turn)
	if err != nil {
		return nil, err
	}

	for i, str := range record.Moves {
		move, err := notation.ParseMove(str)
		if err != nil {
			return b, fmt.Errorf("ply %d: %w", i+1, err)
		}

		if err := b.PerformMove(turn, move); err != nil {
			return b, fmt.Errorf("ply %d: %w", i+1, err)
		}

		if visit != nil {
			visit(i+1, move, b)
		}

		turn = turn.Other()
	}

	return b, nil
}
