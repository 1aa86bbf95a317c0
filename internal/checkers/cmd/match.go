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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/checkers/pkg/common"
	"laptudirm.com/x/checkers/pkg/match"
)

func Match() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [config-file]",
		Short: "Play a match between two computer players",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`match plays a number of games between two computer
			players, several at a time, and reports the score and the
			elo difference of the players as the games finish.

			The match is configured by an optional YAML file, whose
			fields can be overridden by flags:

			  players: [Alpha, Beta]
			  games: 100
			  concurrency: 4
			  seed: 42
			  max-plies: 200
			  openings:
			    file: openings.txt
			    order: sequential
			  record-dir: ./games

			Colors alternate between games, and each opening is played
			twice, once with each player as Black.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config := match.DefaultConfig()
			if len(args) == 1 {
				var err error
				if config, err = match.LoadConfig(args[0]); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("games") {
				config.Games, _ = flags.GetInt("games")
			}
			if flags.Changed("concurrency") {
				config.Concurrency, _ = flags.GetInt("concurrency")
			}
			if flags.Changed("seed") {
				config.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("max-plies") {
				config.MaxPlies, _ = flags.GetInt("max-plies")
			}
			if flags.Changed("openings") {
				config.Openings.File, _ = flags.GetString("openings")
			}
			if save, _ := flags.GetBool("save"); save && config.RecordDir == "" {
				config.RecordDir = common.GamesDirectory
			}

			if config.RecordDir != "" {
				if err := common.TryMkdir(config.RecordDir); err != nil {
					return err
				}
			}

			m, err := match.NewMatch(config, os.Stdout)
			if err != nil {
				return err
			}

			logrus.Infof(
				"Playing %d games between %s and %s",
				config.Games, config.Players[0], config.Players[1],
			)

			return m.Start()
		},
	}

	flags := cmd.Flags()
	flags.IntP("games", "n", 0, "Number of games to play")
	flags.IntP("concurrency", "c", 0, "Number of games to play at once")
	flags.Int64("seed", 0, "Seed of the players' random moves")
	flags.Int("max-plies", 0, "End games undecided after this many moves")
	flags.String("openings", "", "File with the starting positions to play")
	flags.Bool("save", false, "Save the game records in ~/checkers/games")

	return cmd
}
