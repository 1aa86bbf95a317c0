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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"laptudirm.com/x/checkers/pkg/board"
	"laptudirm.com/x/checkers/pkg/common"
	"laptudirm.com/x/checkers/pkg/game"
	"laptudirm.com/x/checkers/pkg/render"
)

func Replay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay game-id",
		Short: "Replay a saved game move by move",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := game.FindRecord(common.GamesDirectory, args[0])
			if err != nil {
				return err
			}

			record, err := game.LoadRecord(path)
			if err != nil {
				return err
			}

			final, _ := cmd.Flags().GetBool("final")

			fmt.Printf("%s vs %s\n", record.Players.Black, record.Players.Red)

			var drawErr error
			last, err := record.Replay(func(ply int, move board.Move, b *board.Board) {
				if final || drawErr != nil {
					return
				}

				fmt.Printf("\n%d. %s\n", ply, move)
				drawErr = render.Board(os.Stdout, b)
			})
			if err != nil {
				return fmt.Errorf("replay %s: %w", record.ID.String()[:8], err)
			}

			if drawErr != nil {
				return drawErr
			}

			if final {
				if err := render.Board(os.Stdout, last); err != nil {
					return err
				}
			}

			fmt.Println(record.Result.Announcement(record.Reason))
			return nil
		},
	}

	cmd.Flags().BoolP("final", "f", false, "Only show the final position")
	return cmd
}
