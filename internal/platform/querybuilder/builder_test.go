package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team", "match_date").
		From("match_history").
		Where(Eq("team", "Arsenal"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(15).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team, match_date FROM match_history WHERE team = $1 AND deleted_at IS NULL ORDER BY id LIMIT 15"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Arsenal" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("match_history").
		Columns("team", "home_team").
		Values("Arsenal", "Arsenal").
		Values("Chelsea", "Arsenal").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO match_history (team, home_team) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "Chelsea" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsShortRow(t *testing.T) {
	_, _, err := InsertInto("match_history").Columns("team", "home_team").Values("Arsenal").ToSQL()
	if err == nil {
		t.Fatalf("expected error for mismatched row width")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("match_history").Where(Eq("team", "Arsenal")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM match_history WHERE team = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
