package report

import (
	"regexp"
	"strconv"
	"strings"
)

// Grammar selects the regular grammar used for an entire substitution log.
// Mixed-grammar batches are not supported: the log source commits to one
// shape per match, so the choice is made once and passed in as
// configuration.
type Grammar int

const (
	// GrammarPlainTeam matches lines whose team fragment has no
	// federation suffix ("23:15 2T Flamengo 7 - name - 11 - name -").
	GrammarPlainTeam Grammar = iota
	// GrammarTeamSlash matches lines with a "/"-separated suffix
	// ("23:15 2T Atletico/MG 7 - name - 11 - name -").
	GrammarTeamSlash
)

var (
	slashLinePattern = regexp.MustCompile(`(\d{2}:\d{2}) (INT|\d+T)([\p{L}\d\s]+/\p{L}+) (\d+) - [^\d]+ (\d+) - [^\d]+`)
	plainLinePattern = regexp.MustCompile(`(\d{2}:\d{2}) (INT|\d+T)\s?([\p{L}\s]+?) (\d+) - [^\d]+ (\d+) - [^\d]+`)
)

// DetectSubstitutionGrammar picks the grammar for a batch: the slash
// grammar applies only when both the log lines and the roster team names
// carry the "/" suffix.
func DetectSubstitutionGrammar(lines []string, homeTeam, awayTeam string) Grammar {
	linesHaveSlash := false
	for _, line := range lines {
		if strings.Contains(line, "/") {
			linesHaveSlash = true
			break
		}
	}
	teamsHaveSlash := strings.Contains(homeTeam, "/") || strings.Contains(awayTeam, "/")
	if linesHaveSlash && teamsHaveSlash {
		return GrammarTeamSlash
	}
	return GrammarPlainTeam
}

// ParseSubstitutions extracts substitution events from raw log lines using
// the given grammar. Lines that do not match are dropped and reported in
// the result; the parser is lenient because partial data beats a hard
// failure.
func ParseSubstitutions(lines []string, grammar Grammar) SubstitutionParseResult {
	pattern := plainLinePattern
	if grammar == GrammarTeamSlash {
		pattern = slashLinePattern
	}

	result := SubstitutionParseResult{Events: make([]SubstitutionEvent, 0, len(lines))}
	for _, line := range lines {
		groups := pattern.FindStringSubmatch(line)
		if groups == nil {
			result.DroppedLines = append(result.DroppedLines, line)
			continue
		}

		clock, half := groups[1], Half(groups[2])
		rawMinute, err := strconv.Atoi(strings.SplitN(clock, ":", 2)[0])
		if err != nil {
			result.DroppedLines = append(result.DroppedLines, line)
			continue
		}

		result.Events = append(result.Events, SubstitutionEvent{
			Minute:    clampMinute(shiftMinute(rawMinute, half)),
			Half:      half,
			Team:      strings.TrimSpace(groups[3]),
			OutNumber: groups[4],
			InNumber:  groups[5],
		})
	}
	return result
}

// clampMinute keeps event minutes inside the 0-90 window the roster model
// guarantees; stoppage-time clocks land on the final minute.
func clampMinute(minute int) int {
	if minute < 0 {
		return 0
	}
	if minute > 90 {
		return 90
	}
	return minute
}
