package report

import "testing"

func TestDetectSubstitutionGrammar(t *testing.T) {
	slashLines := []string{"23:15 2T Atletico/MG 7 - fulano - 11 - beltrano -"}
	plainLines := []string{"23:15 2T Flamengo 7 - fulano - 11 - beltrano -"}

	if g := DetectSubstitutionGrammar(slashLines, "Atletico/MG", "Cruzeiro/MG"); g != GrammarTeamSlash {
		t.Fatalf("expected slash grammar, got %v", g)
	}
	if g := DetectSubstitutionGrammar(plainLines, "Flamengo", "Vasco"); g != GrammarPlainTeam {
		t.Fatalf("expected plain grammar, got %v", g)
	}
	// Slash in lines but plain roster names: the batch stays on the plain
	// grammar.
	if g := DetectSubstitutionGrammar(slashLines, "Atletico", "Cruzeiro"); g != GrammarPlainTeam {
		t.Fatalf("expected plain grammar without slashed roster names, got %v", g)
	}
}

func TestParseSubstitutions_SecondHalfShift(t *testing.T) {
	lines := []string{"23:15 2T TeamA/SP 7 - fulano - 11 - beltrano -"}

	result := ParseSubstitutions(lines, GrammarTeamSlash)
	if result.Dropped() != 0 {
		t.Fatalf("unexpected drops: %v", result.DroppedLines)
	}
	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}

	event := result.Events[0]
	if event.Minute != 68 {
		t.Fatalf("expected minute 68 (23+45), got %d", event.Minute)
	}
	if event.Team != "TeamA/SP" {
		t.Fatalf("unexpected team fragment: %q", event.Team)
	}
	if event.OutNumber != "7" || event.InNumber != "11" {
		t.Fatalf("unexpected shirt numbers: out=%s in=%s", event.OutNumber, event.InNumber)
	}
}

func TestParseSubstitutions_BoundaryMinuteNotDoubleShifted(t *testing.T) {
	lines := []string{"45:00 2T TeamA/SP 7 - fulano - 11 - beltrano -"}

	result := ParseSubstitutions(lines, GrammarTeamSlash)
	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	if result.Events[0].Minute != 45 {
		t.Fatalf("minute 45 in 2T must not shift, got %d", result.Events[0].Minute)
	}
}

func TestParseSubstitutions_PlainGrammar(t *testing.T) {
	lines := []string{"12:30 1T Flamengo 4 - fulano - 16 - beltrano -"}

	result := ParseSubstitutions(lines, GrammarPlainTeam)
	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d: dropped=%v", len(result.Events), result.DroppedLines)
	}
	event := result.Events[0]
	if event.Minute != 12 || event.Team != "Flamengo" || event.OutNumber != "4" || event.InNumber != "16" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestParseSubstitutions_DropsUnparseableLinesObservably(t *testing.T) {
	lines := []string{
		"23:15 2T TeamA/SP 7 - fulano - 11 - beltrano -",
		"garbage line",
	}

	result := ParseSubstitutions(lines, GrammarTeamSlash)
	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	if result.Dropped() != 1 || result.DroppedLines[0] != "garbage line" {
		t.Fatalf("expected the garbage line reported, got %v", result.DroppedLines)
	}
}

func TestParseSubstitutions_InjuryTimeMarkerKeepsRawMinute(t *testing.T) {
	lines := []string{"46:10 INT TeamA/SP 9 - fulano - 19 - beltrano -"}

	result := ParseSubstitutions(lines, GrammarTeamSlash)
	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	if result.Events[0].Minute != 46 {
		t.Fatalf("INT must not shift, got %d", result.Events[0].Minute)
	}
	if result.Events[0].Half != HalfInjury {
		t.Fatalf("unexpected half: %s", result.Events[0].Half)
	}
}
