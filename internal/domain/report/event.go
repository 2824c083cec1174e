package report

// Half marks which period of the match a log line belongs to.
type Half string

const (
	HalfFirst  Half = "1T"
	HalfSecond Half = "2T"
	HalfInjury Half = "INT"
)

// TeamStatus identifies a side of the match.
type TeamStatus string

const (
	StatusHome TeamStatus = "Home"
	StatusAway TeamStatus = "Away"
)

// SubstitutionEvent is one parsed substitution log line. Minute is
// match-absolute (the second-half shift has already been applied).
type SubstitutionEvent struct {
	Minute    int
	Half      Half
	Team      string
	OutNumber string
	InNumber  string
}

// GoalEvent is one parsed goal log line. Minute is match-absolute.
type GoalEvent struct {
	Minute int
	Status TeamStatus
}

// SubstitutionParseResult reports parsed substitutions plus every line that
// failed to match the selected grammar. Dropped lines are recovered input,
// not errors: the caller decides whether to log or reject.
type SubstitutionParseResult struct {
	Events       []SubstitutionEvent
	DroppedLines []string
}

func (r SubstitutionParseResult) Dropped() int { return len(r.DroppedLines) }

// GoalParseResult mirrors SubstitutionParseResult for the goal log.
type GoalParseResult struct {
	Events       []GoalEvent
	DroppedLines []string
}

func (r GoalParseResult) Dropped() int { return len(r.DroppedLines) }

// shiftMinute converts a half-relative minute to a match-absolute one.
// The ==45 guard keeps the shift idempotent for sources that already encode
// second-half minutes absolutely at the boundary.
func shiftMinute(minute int, half Half) int {
	if half == HalfSecond && minute != 45 {
		minute += 45
	}
	return minute
}
