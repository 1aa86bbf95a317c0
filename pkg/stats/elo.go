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

// Package stats estimates the playing strength difference between two
// players from the results of the games between them.
package stats

import (
	"fmt"
	"math"
)

// Tally counts the results of the games of a player. Undecided games are
// scored as half a point, the same as a draw.
type Tally struct {
	Wins, Undecided, Losses int
}

// Games is the number of games in the tally.
func (tally Tally) Games() int {
	return tally.Wins + tally.Undecided + tally.Losses
}

// Score is the fraction of the available points which were won.
func (tally Tally) Score() float64 {
	n := tally.Games()
	if n == 0 {
		return 0
	}

	return (float64(tally.Wins) + float64(tally.Undecided)/2) / float64(n)
}

// Elo returns the likely elo difference of the player along with its
// p < 0.05 lower and upper bounds.
func (tally Tally) Elo() (muMin float64, mu float64, muMax float64) {
	N := float64(tally.Games())
	if N == 0 {
		return 0, 0, 0
	}

	w := float64(tally.Wins) / N      // measured win probability
	d := float64(tally.Undecided) / N // measured undecided probability
	l := float64(tally.Losses) / N    // measured loss probability

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	muMin = mu + phiInv(0.025)*sigma
	muMax = mu + phiInv(0.975)*sigma

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// String formats the tally's elo as "mu ± error".
func (tally Tally) String() string {
	lower, elo, upper := tally.Elo()
	return fmt.Sprintf("%.2f ± %.2f", elo, (upper-lower)/2)
}

// scoreToElo converts an expected score to an elo difference. Scores of
// zero or one have no finite elo and are reported as zero.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
