package report

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riskibarqy/match-ratings/internal/platform/textnorm"
)

// ownGoalMarker flips home/away attribution: the scorer's own side
// concedes, so the opponent is credited.
const ownGoalMarker = "CT"

var goalLinePattern = regexp.MustCompile(`(\+\d*|\d+)(?::00)? (INT|\d+T)([\p{L}\d]+)([\p{L} ]+?) ([\p{L}\d\s/]+)`)

// ParseGoals extracts goal events from raw log lines and resolves which
// side scored. The trailing free text is compared against the home team's
// name and its alias variants; a substring hit credits Home, anything else
// Away. A "+"-prefixed clock is extra time at the end of the first half and
// counts as minute 45. Unmatched lines are dropped and reported.
func ParseGoals(lines []string, homeTeam, awayTeam string, exceptions map[string]string) GoalParseResult {
	homeVariants := homeTeamVariants(homeTeam, exceptions)

	result := GoalParseResult{Events: make([]GoalEvent, 0, len(lines))}
	for _, line := range lines {
		groups := goalLinePattern.FindStringSubmatch(line)
		if groups == nil {
			result.DroppedLines = append(result.DroppedLines, line)
			continue
		}

		minute, ok := parseGoalMinute(groups[1])
		if !ok {
			result.DroppedLines = append(result.DroppedLines, line)
			continue
		}
		minute = shiftMinute(minute, Half(groups[2]))

		scorerInfo := groups[3]
		teamText := slashSpacing.ReplaceAllString(strings.TrimSpace(groups[5]), " / ")

		status := StatusAway
		if teamTextMentionsHome(teamText, homeVariants) {
			status = StatusHome
		}
		if strings.Contains(scorerInfo, ownGoalMarker) {
			status = invert(status)
		}

		result.Events = append(result.Events, GoalEvent{Minute: minute, Status: status})
	}
	return result
}

// parseGoalMinute handles both plain minutes and the "+N" extra-time
// notation, which pins the event to the half boundary.
func parseGoalMinute(raw string) (int, bool) {
	if strings.HasPrefix(raw, "+") {
		return 45, true
	}
	minute, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return minute, true
}

func homeTeamVariants(homeTeam string, exceptions map[string]string) []string {
	variants := []string{homeTeam}
	for raw, canonical := range exceptions {
		if canonical == homeTeam {
			variants = append(variants, raw)
		}
	}
	return variants
}

func teamTextMentionsHome(teamText string, homeVariants []string) bool {
	for _, variant := range homeVariants {
		if strings.TrimSpace(variant) == "" {
			continue
		}
		if textnorm.ContainsFold(teamText, foldTeamName(variant)) {
			return true
		}
	}
	return false
}

func invert(status TeamStatus) TeamStatus {
	if status == StatusHome {
		return StatusAway
	}
	return StatusHome
}
