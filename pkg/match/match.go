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

// Package match plays a series of games between two computer players
// concurrently and keeps score.
package match

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/game"
	"laptudirm.com/x/checkers/pkg/player"
	"laptudirm.com/x/checkers/pkg/stats"
)

// Config is the configuration of a match.
type Config struct {
	// Names of the two players.
	Players [2]string `yaml:"players"`

	// Number of games to play. Colors alternate between games.
	Games int `yaml:"games"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Seed of the random sources of the players.
	Seed int64 `yaml:"seed"`

	// Game adjudication. Zero plays games until they are over.
	MaxPlies int `yaml:"max-plies"`

	Openings struct {
		File  string `yaml:"file"`
		Order string `yaml:"order"`
	} `yaml:"openings"`

	// Directory to store the game records in, if any.
	RecordDir string `yaml:"record-dir"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		Players:     [2]string{"Computer 1", "Computer 2"},
		Games:       10,
		Concurrency: 1,
		Seed:        1,
	}
}

// LoadConfig reads a YAML match configuration on top of the defaults.
func LoadConfig(name string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(name)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%s: %w", name, err)
	}

	return config, nil
}

func (config *Config) validate() error {
	switch {
	case config.Games <= 0:
		return fmt.Errorf("new match: games must be positive, got %d", config.Games)
	case config.Concurrency <= 0:
		return fmt.Errorf("new match: concurrency must be positive, got %d", config.Concurrency)
	case config.MaxPlies < 0:
		return fmt.Errorf("new match: max-plies can't be negative, got %d", config.MaxPlies)
	case config.Players[0] == "" || config.Players[1] == "":
		return fmt.Errorf("new match: both players need a name")
	}

	return nil
}

// NewMatch prepares a match with the given configuration. Reports are
// written to out.
func NewMatch(config Config, out io.Writer) (*Match, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	m := Match{
		Config: config,
		out:    out,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}

	var err error
	m.openings, err = NewBook(config.Openings.File, config.Openings.Order, m.rng)
	if err != nil {
		return nil, err
	}

	m.games = make(chan *Game)
	m.results = make(chan Result)
	m.complete = make(chan bool)

	return &m, nil
}

// Match is a series of games between two players.
type Match struct {
	Config Config

	openings *Book
	rng      *rand.Rand
	out      io.Writer

	games    chan *Game
	results  chan Result
	complete chan bool

	Played int
	Errors int
	Scores [2]stats.Tally
}

// Game is a single scheduled game of a match.
type Game struct {
	Number  int
	Opening Opening

	// Black is the index of the player playing Black.
	Black int

	Seed int64
}

// Red is the index of the player playing Red.
func (g *Game) Red() int {
	return 1 - g.Black
}

// Start plays all the games of the match and blocks until they are over.
func (m *Match) Start() error {
	// 1 Match     = {GAMES} Games
	// 1 Game Pair = 2 Games from the same opening with colors swapped

	go m.ResultHandler()
	for i := 0; i < m.Config.Concurrency; i++ {
		go m.Thread()
	}

	for number := 1; number <= m.Config.Games; number++ {
		m.games <- &Game{
			Number:  number,
			Opening: m.openings.Current(),
			Black:   (number - 1) % 2,
			Seed:    m.rng.Int63(),
		}

		if number%2 == 0 {
			m.openings.Next()
		}
	}

	close(m.games)
	<-m.complete

	m.Report()
	return nil
}

func (m *Match) Thread() {
	for g := range m.games {
		m.results <- m.RunGame(g)
	}
}

// named gives a player the name it has in the match.
type named struct {
	player.Player
	name string
}

func (p named) Name() string {
	return p.name
}

// RunGame plays a single game of the match.
func (m *Match) RunGame(g *Game) Result {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s\n",
		g.Number,
		m.Config.Players[g.Black],
		m.Config.Players[g.Red()],
	)

	seeds := rand.New(rand.NewSource(g.Seed))
	black := named{player.NewComputer(board.Black, seeds.Int63()), m.Config.Players[g.Black]}
	red := named{player.NewComputer(board.Red, seeds.Int63()), m.Config.Players[g.Red()]}

	played, err := game.NewFromPosition(g.Opening.Position, g.Opening.Turn, black, red)
	if err != nil {
		return Result{Game: g, Err: err}
	}

	played.MaxPlies = m.Config.MaxPlies

	result, reason, err := played.Play()
	if err != nil {
		return Result{Game: g, Err: err}
	}

	if m.Config.RecordDir != "" {
		if _, err := played.Record().Save(m.Config.RecordDir); err != nil {
			logrus.Errorf("Game #%d: saving record: %v", g.Number, err)
		}
	}

	return Result{
		Game:   g,
		Names:  [2]string{m.Config.Players[g.Black], m.Config.Players[g.Red()]},
		Result: result,
		Reason: reason,
		Plies:  len(played.Moves),
	}
}

// ResultHandler collects the results of the games and updates the scores.
// It is the only goroutine which touches the scores while games are being
// played.
func (m *Match) ResultHandler() {
	for result := range m.results {
		m.Played++

		if result.Err != nil {
			m.Errors++
			logrus.Errorf("Game #%d: %v", result.Game.Number, result.Err)
		} else {
			m.score(result)

			logrus.Infof(
				"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s\n",
				result.Game.Number,
				result.Names[board.Black],
				result.Names[board.Red],
				result,
			)
		}

		if m.Played%5 == 0 && m.Played != m.Config.Games {
			m.Report()
		}

		if m.Played == m.Config.Games {
			close(m.results)
			m.complete <- true
			return
		}
	}
}

func (m *Match) score(result Result) {
	black, red := &m.Scores[result.Game.Black], &m.Scores[result.Game.Red()]

	switch result.Result {
	case game.BlackWins:
		black.Wins++
		red.Losses++

	case game.RedWins:
		red.Wins++
		black.Losses++

	case game.Undecided:
		black.Undecided++
		red.Undecided++
	}
}

// Report writes the current standings of the match.
func (m *Match) Report() {
	fmt.Fprintln(m.out, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(m.out, "║    Name               Elo Error   Wins Loss Undc   Total ║")
	fmt.Fprintln(m.out, "╠══════════════════════════════════════════════════════════╣")
	for i, name := range m.Config.Players {
		score := m.Scores[i]
		lower, elo, upper := score.Elo()

		fmt.Fprintf(
			m.out,
			"║ %2d. %-15.15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n",
			i+1, name,
			elo, math.Abs(math.Max(upper-elo, elo-lower)),
			score.Wins, score.Losses, score.Undecided,
			score.Games(),
		)
	}
	fmt.Fprintln(m.out, "╚══════════════════════════════════════════════════════════╝")
}

// Result is the outcome of a single game of a match.
type Result struct {
	Game *Game

	// Names of the players by color.
	Names [board.ColorN]string

	Result game.Result
	Reason string
	Plies  int

	// Err is set if the game couldn't be played to the end.
	Err error
}

func (result Result) String() string {
	if winner, ok := result.Result.Winner(); ok {
		return fmt.Sprintf("%s wins by %s after %d plies", result.Names[winner], result.Reason, result.Plies)
	}

	return fmt.Sprintf("Undecided by %s after %d plies", result.Reason, result.Plies)
}
