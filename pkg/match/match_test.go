package match

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/game"
)

func testConfig() Config {
	config := DefaultConfig()
	config.Games = 6
	config.Concurrency = 3
	config.MaxPlies = 60
	return config
}

func TestNewMatchValidates(t *testing.T) {
	for name, edit := range map[string]func(*Config){
		"games":       func(c *Config) { c.Games = 0 },
		"concurrency": func(c *Config) { c.Concurrency = -1 },
		"max-plies":   func(c *Config) { c.MaxPlies = -5 },
		"players":     func(c *Config) { c.Players[1] = "" },
		"order":       func(c *Config) { c.Openings.Order = "shuffled" },
	} {
		t.Run(name, func(t *testing.T) {
			config := testConfig()
			edit(&config)

			_, err := NewMatch(config, &strings.Builder{})
			assert.Error(t, err)
		})
	}
}

func TestMatchStart(t *testing.T) {
	var out strings.Builder
	config := testConfig()
	config.RecordDir = t.TempDir()

	m, err := NewMatch(config, &out)
	require.NoError(t, err)
	require.NoError(t, m.Start())

	assert.Equal(t, config.Games, m.Played)
	assert.Zero(t, m.Errors)
	assert.Equal(t, config.Games, m.Scores[0].Games())
	assert.Equal(t, config.Games, m.Scores[1].Games())
	assert.Equal(t, m.Scores[0].Wins, m.Scores[1].Losses)
	assert.Equal(t, m.Scores[0].Undecided, m.Scores[1].Undecided)

	assert.Contains(t, out.String(), "Computer 1")
	assert.Contains(t, out.String(), "Computer 2")

	records, err := game.ListRecords(config.RecordDir)
	require.NoError(t, err)
	assert.Len(t, records, config.Games)
	for _, record := range records {
		_, err := record.Replay(nil)
		assert.NoError(t, err)
	}
}

func TestMatchIsReproducible(t *testing.T) {
	play := func(concurrency int) [2]int {
		config := testConfig()
		config.Concurrency = concurrency

		m, err := NewMatch(config, &strings.Builder{})
		require.NoError(t, err)
		require.NoError(t, m.Start())

		return [2]int{m.Scores[0].Wins, m.Scores[1].Wins}
	}

	assert.Equal(t, play(1), play(4))
}

func TestMatchAlternatesColors(t *testing.T) {
	g1, g2 := &Game{Number: 1, Black: 0}, &Game{Number: 2, Black: 1}
	assert.Equal(t, 1, g1.Red())
	assert.Equal(t, 0, g2.Red())
}

func TestScore(t *testing.T) {
	m, err := NewMatch(testConfig(), &strings.Builder{})
	require.NoError(t, err)

	m.score(Result{Game: &Game{Black: 1}, Result: game.BlackWins})
	m.score(Result{Game: &Game{Black: 0}, Result: game.BlackWins})
	m.score(Result{Game: &Game{Black: 0}, Result: game.RedWins})
	m.score(Result{Game: &Game{Black: 1}, Result: game.Undecided})

	assert.Equal(t, 1, m.Scores[0].Wins)
	assert.Equal(t, 2, m.Scores[0].Losses)
	assert.Equal(t, 1, m.Scores[0].Undecided)
	assert.Equal(t, 2, m.Scores[1].Wins)
	assert.Equal(t, 1, m.Scores[1].Losses)
}

func TestResultString(t *testing.T) {
	result := Result{
		Names:  [board.ColorN]string{"Alpha", "Beta"},
		Result: game.RedWins,
		Reason: game.ReasonEradication,
		Plies:  41,
	}
	assert.Equal(t, "Beta wins by Eradication after 41 plies", result.String())

	result.Result, result.Reason = game.Undecided, game.ReasonPlyLimit
	assert.Equal(t, "Undecided by Ply limit after 41 plies", result.String())
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, os.WriteFile(name, []byte(strings.Join([]string{
		"players: [Alpha, Beta]",
		"games: 20",
		"max-plies: 150",
		"openings:",
		"  order: random",
	}, "\n")), 0644))

	config, err := LoadConfig(name)
	require.NoError(t, err)

	assert.Equal(t, [2]string{"Alpha", "Beta"}, config.Players)
	assert.Equal(t, 20, config.Games)
	assert.Equal(t, 150, config.MaxPlies)
	assert.Equal(t, "random", config.Openings.Order)
	assert.Equal(t, 1, config.Concurrency, "defaults are kept")
}

func TestBook(t *testing.T) {
	name := filepath.Join(t.TempDir(), "openings.txt")
	require.NoError(t, os.WriteFile(name, []byte(strings.Join([]string{
		"# two openings",
		board.StartPosition,
		"",
		"8/8/2b5/3r4/8/8/8/8 red",
	}, "\n")), 0644))

	book, err := NewBook(name, "sequential", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 2, book.Len())

	assert.Equal(t, Opening{Position: board.StartPosition, Turn: board.Black}, book.Current())
	book.Next()
	assert.Equal(t, Opening{Position: "8/8/2b5/3r4/8/8/8/8", Turn: board.Red}, book.Current())
	book.Next()
	assert.Equal(t, board.StartPosition, book.Current().Position)
}

func TestDefaultBook(t *testing.T) {
	book, err := NewBook("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, book.Len())
	assert.Equal(t, board.StartPosition, book.Current().Position)
}

func TestParseOpeningErrors(t *testing.T) {
	for _, line := range []string{"", "8/8/8 black", board.StartPosition + " white", "a b c"} {
		_, err := ParseOpening(line)
		assert.Error(t, err, line)
	}
}
