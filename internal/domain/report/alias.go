package report

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/match-ratings/internal/platform/textnorm"
)

// Resolution is the outcome of a team-name lookup. Unresolved names carry
// the input unchanged so downstream matching degrades to a no-op instead of
// crashing on a missing key.
type Resolution struct {
	Canonical string
	Resolved  bool
}

// AliasResolver maps raw team-name fragments from log lines to the two
// canonical team names of a match. Exceptions is a curated table of known
// historical variants (raw -> canonical); it is consulted before any fuzzy
// matching and is injected per competition.
type AliasResolver struct {
	known      []string
	exceptions map[string]string
}

// NewAliasResolver builds a resolver for one match. Known teams are checked
// home first, away second; when a raw name could substring-match both sides
// the home team wins. That ordering is the documented tie-break.
func NewAliasResolver(homeTeam, awayTeam string, exceptions map[string]string) *AliasResolver {
	known := make([]string, 0, 2)
	for _, team := range []string{homeTeam, awayTeam} {
		if strings.TrimSpace(team) != "" {
			known = append(known, team)
		}
	}
	return &AliasResolver{known: known, exceptions: exceptions}
}

func (r *AliasResolver) Resolve(raw string) Resolution {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Resolution{Canonical: raw}
	}

	if canonical, ok := r.exceptions[name]; ok {
		return Resolution{Canonical: canonical, Resolved: true}
	}

	folded := foldTeamName(name)
	for _, candidate := range r.known {
		if tokensContained(folded, foldTeamName(candidate)) {
			return Resolution{Canonical: candidate, Resolved: true}
		}
	}

	return Resolution{Canonical: raw}
}

var slashSpacing = regexp.MustCompile(`\s*/\s*`)

// foldTeamName normalizes accents, case and the spacing around the
// state-federation suffix ("Atletico/MG" vs "Atletico / MG").
func foldTeamName(s string) string {
	return textnorm.Fold(slashSpacing.ReplaceAllString(s, " / "))
}

func tokensContained(raw, candidate string) bool {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if !strings.Contains(candidate, token) {
			return false
		}
	}
	return true
}
