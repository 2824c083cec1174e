package textnorm

import "testing"

func TestStrip_RemovesDiacritics(t *testing.T) {
	cases := map[string]string{
		"São Paulo":     "Sao Paulo",
		"Grêmio":        "Gremio",
		"Atlético/MG":   "Atletico/MG",
		"CORITIBA":      "CORITIBA",
		"Criciúma":      "Criciuma",
		"Avaí":          "Avai",
		"plain ascii 7": "plain ascii 7",
	}
	for in, want := range cases {
		if got := Strip(in); got != want {
			t.Fatalf("Strip(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{"São Paulo", "Grêmio", "", "Atlético-GO", "Vitória"}
	for _, in := range inputs {
		once := Strip(in)
		if twice := Strip(once); twice != once {
			t.Fatalf("Strip not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Atlético Mineiro / MG", "atletico") {
		t.Fatal("expected accent-insensitive substring match")
	}
	if ContainsFold("Flamengo", "Fluminense") {
		t.Fatal("unexpected match")
	}
}
