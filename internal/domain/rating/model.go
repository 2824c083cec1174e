package rating

// Profile is a player's persistent rating state. KValue is derived from
// the other fields at update time and stored for inspection only.
type Profile struct {
	PlayerID    string
	Name        string
	Rating      float64
	KValue      int
	GamesPlayed int
	Age         int
}

// PlayerResult joins a profile with the player's finalized figures for one
// match; it is the engine's unit of input.
type PlayerResult struct {
	Profile
	Minutes      int
	GoalsFor     int
	GoalsAgainst int
}

// KFactor tiers the update sensitivity on the player's pre-match state:
// inexperienced or young players below 2300 swing hardest, established
// players above 2400 barely move.
func KFactor(rating float64, gamesPlayed, age int) int {
	if (gamesPlayed < 30 || age < 18) && rating < 2300 {
		return 40
	}
	if rating < 2400 {
		return 20
	}
	return 10
}
