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

// Package cmd contains the commands of the checkers command line.
package cmd

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "checkers",
		Short: "Play and referee games of English draughts",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace or --debug is provided, set the logging level.
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}

			if cmd.Flag("no-color").Changed {
				color.NoColor = true
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Checkers' Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().Bool("no-color", false, "Draw the board without colors")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Match())
	root.AddCommand(Games())
	root.AddCommand(Replay())
	root.AddCommand(Remove())
	root.AddCommand(Completion())

	return root
}
