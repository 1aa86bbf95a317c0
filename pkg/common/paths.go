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

// Package common contains the locations of checkers' user data.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	Directory = filepath.Join(xdg.Home, "checkers")

	// GamesDirectory stores the records of finished games.
	GamesDirectory = filepath.Join(Directory, "games")
)

// TryMkdir creates the directory if it doesn't exist yet.
func TryMkdir(dir string) error {
	_, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return err
}

// Games returns the games directory, creating it if needed.
func Games() (string, error) {
	return GamesDirectory, TryMkdir(GamesDirectory)
}
