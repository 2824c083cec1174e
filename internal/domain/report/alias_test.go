package report

import "testing"

func TestAliasResolver_ExceptionTableWins(t *testing.T) {
	resolver := NewAliasResolver("Red Bull Bragantino", "Gremio / RS", map[string]string{
		"Bragantino": "Red Bull Bragantino",
	})

	res := resolver.Resolve("Bragantino")
	if !res.Resolved {
		t.Fatal("expected exception-table hit to resolve")
	}
	if res.Canonical != "Red Bull Bragantino" {
		t.Fatalf("unexpected canonical name: %s", res.Canonical)
	}
}

func TestAliasResolver_AccentInsensitiveTokenMatch(t *testing.T) {
	resolver := NewAliasResolver("Atlético Mineiro / MG", "Fluminense / RJ", nil)

	res := resolver.Resolve("Atletico/MG")
	if !res.Resolved {
		t.Fatal("expected fuzzy match to resolve")
	}
	if res.Canonical != "Atlético Mineiro / MG" {
		t.Fatalf("unexpected canonical name: %s", res.Canonical)
	}
}

func TestAliasResolver_UnresolvedReturnsInputUnchanged(t *testing.T) {
	resolver := NewAliasResolver("Flamengo", "Fluminense", nil)

	res := resolver.Resolve("Botafogo")
	if res.Resolved {
		t.Fatal("expected no match")
	}
	if res.Canonical != "Botafogo" {
		t.Fatalf("unresolved name must pass through unchanged, got %s", res.Canonical)
	}
}

func TestAliasResolver_TieBreaksToHomeTeam(t *testing.T) {
	// "Atletico" substring-matches both sides; iteration order makes the
	// home team win.
	resolver := NewAliasResolver("Atlético / MG", "Atlético / GO", nil)

	res := resolver.Resolve("Atletico")
	if !res.Resolved {
		t.Fatal("expected a match")
	}
	if res.Canonical != "Atlético / MG" {
		t.Fatalf("tie must resolve to home team, got %s", res.Canonical)
	}
}
