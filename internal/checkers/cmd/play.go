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

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/common"
	"laptudirm.com/x/checkers/pkg/game"
	"laptudirm.com/x/checkers/pkg/notation"
	"laptudirm.com/x/checkers/pkg/player"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of checkers in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of checkers on the standard board,
			drawing the board before every move. Each color is played
			either by a human, who types moves at the prompt, or by the
			computer, which picks a random legal move.

			Black moves first. A player who can capture has to, and a
			capturing piece has to keep jumping while it can.

			Finished games are saved in ~/checkers/games and can be
			looked at again with the games and replay commands.`),
		Example: heredoc.Doc(`
			$ checkers play
			$ checkers play --red human
			$ checkers play --black computer --red computer --delay 0
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			seed, _ := flags.GetInt64("seed")
			if !flags.Changed("seed") {
				seed = time.Now().UnixNano()
			}

			delay, _ := flags.GetDuration("delay")

			// humans share one reader so that buffered input isn't lost
			stdin := bufio.NewReader(os.Stdin)

			var players [board.ColorN]player.Player
			humans := 0
			for color := board.Black; color < board.ColorN; color++ {
				name, _ := flags.GetString(color.String())
				kind, err := player.ParseKind(name)
				if err != nil {
					return err
				}

				switch kind {
				case player.HumanKind:
					players[color] = player.NewHuman(color, stdin, os.Stdout)
					humans++
				case player.ComputerKind:
					computer := player.NewComputer(color, seed+int64(color))
					computer.Delay = delay
					computer.Out = os.Stdout
					players[color] = computer
				}
			}

			position, _ := flags.GetString("position")
			turnName, _ := flags.GetString("turn")
			turn, err := notation.ParseColor(turnName)
			if err != nil {
				return err
			}

			g, err := game.NewFromPosition(position, turn, players[board.Black], players[board.Red])
			if err != nil {
				return err
			}

			g.MaxPlies, _ = flags.GetInt("max-plies")
			g.Out = os.Stdout

			if humans > 0 {
				fmt.Println(player.Instructions)
			}

			if _, _, err := g.Play(); err != nil {
				return err
			}

			if noSave, _ := flags.GetBool("no-save"); noSave || len(g.Moves) == 0 {
				return nil
			}

			dir, err := common.Games()
			if err != nil {
				return err
			}

			path, err := g.Record().Save(dir)
			if err != nil {
				return err
			}

			logrus.Debugf("Saved game record to %s", path)
			fmt.Printf("Saved game \x1b[33m%s\x1b[0m\n", g.ID.String()[:8])
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("black", string(player.HumanKind), "Who plays Black (human or computer)")
	flags.String("red", string(player.ComputerKind), "Who plays Red (human or computer)")
	flags.Duration("delay", time.Second, "Time the computer waits before moving")
	flags.Int64("seed", 0, "Seed of the computer players (default random)")
	flags.String("position", board.StartPosition, "Position diagram to start from")
	flags.String("turn", board.Black.String(), "Color to move first")
	flags.Int("max-plies", 0, "End the game undecided after this many moves (0 for no limit)")
	flags.Bool("no-save", false, "Don't save a record of the game")

	return cmd
}
