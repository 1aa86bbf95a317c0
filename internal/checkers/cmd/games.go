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

	"github.com/spf13/cobra"

	"laptudirm.com/x/checkers/pkg/common"
	"laptudirm.com/x/checkers/pkg/game"
)

func Games() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "Lists the saved games",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := common.Games()
			if err != nil {
				return err
			}

			records, err := game.ListRecords(dir)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("\x1b[31mNo Games Saved.\x1b[0m")
				return nil
			}

			fmt.Println("\x1b[32mSaved Games\x1b[0m:")
			fmt.Println()

			for _, record := range records {
				id := fmt.Sprintf("\x1b[34m%s\x1b[0m", record.ID.String()[:8])

				fmt.Printf(
					"- %s  %s  %s vs %s: \x1b[33m%s\x1b[0m {%s} in %d plies\n",
					id,
					record.Started.Format("2006-01-02 15:04"),
					record.Players.Black,
					record.Players.Red,
					record.Result,
					record.Reason,
					len(record.Moves),
				)
			}

			return nil
		},
	}
}
