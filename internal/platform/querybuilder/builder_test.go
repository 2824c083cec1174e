package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id", "rating").
		From("rating_profiles").
		Where(Eq("player_id", "100001"), IsNull("deleted_at")).
		OrderBy("player_id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, rating FROM rating_profiles WHERE player_id = $1 AND deleted_at IS NULL ORDER BY player_id LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "100001" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InCondition(t *testing.T) {
	query, args, err := Select("player_id").
		From("rating_profiles").
		Where(In("player_id", []any{"100001", "200001"}), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id FROM rating_profiles WHERE player_id IN ($1, $2) AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("player_id").
		From("rating_profiles").
		Where(In("player_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id FROM rating_profiles WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("appearances").
		Columns("match_id", "player_id", "minutes").
		Values("2026-03-08-atletico-cruzeiro", "100001", 90).
		Suffix("ON CONFLICT (match_id, player_id) WHERE deleted_at IS NULL DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO appearances (match_id, player_id, minutes) VALUES ($1, $2, $3) ON CONFLICT (match_id, player_id) WHERE deleted_at IS NULL DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "2026-03-08-atletico-cruzeiro" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	model := struct {
		PlayerID string  `db:"player_id"`
		Rating   float64 `db:"rating"`
		Ignored  string  `db:"-"`
	}{PlayerID: "100001", Rating: 1632.4, Ignored: "x"}

	query, args, err := InsertModel("rating_profiles", model, "")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO rating_profiles (player_id, rating) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != 1632.4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
