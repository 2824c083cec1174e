package rating

import (
	"errors"
	"math"
)

// ErrZeroTeamMinutes indicates a data-integrity violation: an entire team
// recorded no playing time, so team strength is undefined. Fatal for the
// match's rating update.
var ErrZeroTeamMinutes = errors.New("team recorded zero total minutes")

const (
	fullMatchMinutes = 90.0
	logisticScale    = 400.0
	// blendWeight mixes the full-match change with its minutes-share
	// version at a fixed 50/50.
	blendWeight = 0.5
)

// TeamStrength is the minutes-weighted average rating of a side, used as
// the opponent rating in the expected-score formula.
func TeamStrength(team []PlayerResult) (float64, error) {
	var weighted, minutes float64
	for _, p := range team {
		weighted += p.Rating * float64(p.Minutes)
		minutes += float64(p.Minutes)
	}
	if minutes == 0 {
		return 0, ErrZeroTeamMinutes
	}
	return weighted / minutes, nil
}

func expectedScore(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/logisticScale))
}

// UpdateTeam computes post-match profiles for one side against the other's
// aggregate strength. The two per-side calls are independent and
// order-insensitive: both read pre-match inputs only.
//
// GamesPlayed increments for every rated player, including those with zero
// minutes. That mirrors the historical behavior for squad members who
// dressed without entering; callers wanting them excluded must filter the
// roster beforehand.
func UpdateTeam(team, opponent []PlayerResult) ([]Profile, error) {
	opponentStrength, err := TeamStrength(opponent)
	if err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(team))
	for _, p := range team {
		expected := expectedScore(p.Rating, opponentStrength)
		diff := p.GoalsFor - p.GoalsAgainst

		score := 0.5
		if diff > 0 {
			score = 1
		} else if diff < 0 {
			score = 0
		}

		minutesShare := float64(p.Minutes) / fullMatchMinutes
		var change float64
		if diff != 0 {
			// Cube root keeps blowouts sub-linear.
			change = (score - expected) * math.Cbrt(math.Abs(float64(diff)))
		} else {
			change = (score - expected) * minutesShare
		}

		k := KFactor(p.Rating, p.GamesPlayed, p.Age)
		delta := float64(k) * (blendWeight*change + (1-blendWeight)*change*minutesShare)

		next := p.Profile
		next.Rating += delta
		next.KValue = k
		next.GamesPlayed++
		out = append(out, next)
	}
	return out, nil
}
