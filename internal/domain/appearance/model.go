package appearance

// Appearance is the finalized per-player output row for one match, the
// shape downstream ranking pipelines consume.
type Appearance struct {
	MatchID      string
	PlayerID     string
	Name         string
	Team         string
	Status       string
	Entered      int
	Exited       int
	Minutes      int
	GoalsFor     int
	GoalsAgainst int
}
