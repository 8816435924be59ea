package leagues

import (
	"context"
	"strings"
	"testing"

	"github.com/padelpointhq/padelpoint/internal/db"
	"github.com/padelpointhq/padelpoint/internal/testutil"
)

type standingsFixture struct {
	database   *db.DB
	leagueID   int64
	divisionID int64
	teamIDs    map[string]int64
}

func setupStandingsFixture(t *testing.T, teamNames []string) *standingsFixture {
	t.Helper()

	database := testutil.NewTestDB(t)
	ctx := context.Background()

	clubResult, err := database.ExecContext(ctx,
		"INSERT INTO clubs (name, slug, timezone) VALUES (?, ?, ?)",
		"Test Club", "test-club", "UTC",
	)
	if err != nil {
		t.Fatalf("insert club: %v", err)
	}
	clubID, _ := clubResult.LastInsertId()

	leagueResult, err := database.ExecContext(ctx,
		"INSERT INTO leagues (club_id, name, start_date, end_date) VALUES (?, ?, '2025-03-01', '2025-05-31')",
		clubID, "Spring League",
	)
	if err != nil {
		t.Fatalf("insert league: %v", err)
	}
	leagueID, _ := leagueResult.LastInsertId()

	divisionResult, err := database.ExecContext(ctx,
		"INSERT INTO divisions (league_id, name, level) VALUES (?, ?, 1)",
		leagueID, "Division 1",
	)
	if err != nil {
		t.Fatalf("insert division: %v", err)
	}
	divisionID, _ := divisionResult.LastInsertId()

	teamIDs := make(map[string]int64, len(teamNames))
	for i, name := range teamNames {
		p1, err := database.ExecContext(ctx,
			"INSERT INTO players (club_id, first_name, last_name, email) VALUES (?, ?, 'One', ?)",
			clubID, name, strings.ToLower(name)+"-one@club.test",
		)
		if err != nil {
			t.Fatalf("insert player: %v", err)
		}
		p1ID, _ := p1.LastInsertId()
		p2, err := database.ExecContext(ctx,
			"INSERT INTO players (club_id, first_name, last_name, email) VALUES (?, ?, 'Two', ?)",
			clubID, name, strings.ToLower(name)+"-two@club.test",
		)
		if err != nil {
			t.Fatalf("insert player: %v", err)
		}
		p2ID, _ := p2.LastInsertId()

		teamResult, err := database.ExecContext(ctx,
			"INSERT INTO teams (club_id, name, player1_id, player2_id) VALUES (?, ?, ?, ?)",
			clubID, name, p1ID, p2ID,
		)
		if err != nil {
			t.Fatalf("insert team %s: %v", name, err)
		}
		teamID, _ := teamResult.LastInsertId()
		teamIDs[name] = teamID

		if _, err := database.ExecContext(ctx,
			"INSERT INTO division_teams (division_id, team_id, seed) VALUES (?, ?, ?)",
			divisionID, teamID, i+1,
		); err != nil {
			t.Fatalf("insert division team %s: %v", name, err)
		}
	}

	fixture := &standingsFixture{database: database, divisionID: divisionID, teamIDs: teamIDs}
	fixture.leagueID = leagueID
	return fixture
}

func (f *standingsFixture) recordResult(t *testing.T, home, away string, homeSets, awaySets int64) {
	t.Helper()
	_, err := f.database.ExecContext(context.Background(),
		`INSERT INTO matches (league_id, division_id, round, home_team_id, away_team_id, status, home_sets, away_sets)
		 VALUES (?, ?, 1, ?, ?, 'completed', ?, ?)`,
		f.leagueID, f.divisionID, f.teamIDs[home], f.teamIDs[away], homeSets, awaySets,
	)
	if err != nil {
		t.Fatalf("insert match %s vs %s: %v", home, away, err)
	}
}

func (f *standingsFixture) recordDetailedResult(t *testing.T, home, away string, homeSets, awaySets int64, scoreDetail string) {
	t.Helper()
	_, err := f.database.ExecContext(context.Background(),
		`INSERT INTO matches (league_id, division_id, round, home_team_id, away_team_id, status, home_sets, away_sets, score_detail)
		 VALUES (?, ?, 1, ?, ?, 'completed', ?, ?, ?)`,
		f.leagueID, f.divisionID, f.teamIDs[home], f.teamIDs[away], homeSets, awaySets, scoreDetail,
	)
	if err != nil {
		t.Fatalf("insert match %s vs %s: %v", home, away, err)
	}
}

func TestCalculateStandingsOrdering(t *testing.T) {
	fixture := setupStandingsFixture(t, []string{"Aces", "Bandits", "Cobras", "Drifters"})

	fixture.recordResult(t, "Aces", "Bandits", 2, 0)
	fixture.recordResult(t, "Aces", "Cobras", 2, 1)
	fixture.recordResult(t, "Drifters", "Aces", 2, 1)
	fixture.recordResult(t, "Bandits", "Cobras", 2, 0)
	fixture.recordResult(t, "Drifters", "Bandits", 2, 0)
	fixture.recordResult(t, "Cobras", "Drifters", 2, 1)

	standings, err := CalculateStandings(context.Background(), fixture.database.Queries, fixture.divisionID)
	if err != nil {
		t.Fatalf("calculate standings: %v", err)
	}
	if len(standings) != 4 {
		t.Fatalf("expected 4 standings rows, got %d", len(standings))
	}

	// Aces and Drifters are tied at 2 wins; Drifters hold the head-to-head.
	// Bandits and Cobras are tied at 1 win; Bandits hold the head-to-head.
	wantOrder := []string{"Drifters", "Aces", "Bandits", "Cobras"}
	for i, want := range wantOrder {
		if standings[i].TeamName != want {
			t.Fatalf("position %d: expected %s, got %s", i+1, want, standings[i].TeamName)
		}
	}

	top := standings[0]
	if top.MatchesPlayed != 3 || top.Wins != 2 || top.Losses != 1 {
		t.Fatalf("unexpected record for %s: %+v", top.TeamName, top)
	}
	if top.SetsFor != 5 || top.SetsAgainst != 3 || top.SetDifferential != 2 {
		t.Fatalf("unexpected set totals for %s: %+v", top.TeamName, top)
	}
}

func TestCalculateStandingsNoMatches(t *testing.T) {
	fixture := setupStandingsFixture(t, []string{"Aces", "Bandits"})

	standings, err := CalculateStandings(context.Background(), fixture.database.Queries, fixture.divisionID)
	if err != nil {
		t.Fatalf("calculate standings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 standings rows, got %d", len(standings))
	}
	for _, row := range standings {
		if row.MatchesPlayed != 0 || row.Wins != 0 || row.Losses != 0 {
			t.Fatalf("expected zeroed record, got %+v", row)
		}
	}
}

func TestCalculateStandingsRejectsTiedMatch(t *testing.T) {
	fixture := setupStandingsFixture(t, []string{"Aces", "Bandits"})
	fixture.recordResult(t, "Aces", "Bandits", 1, 1)

	if _, err := CalculateStandings(context.Background(), fixture.database.Queries, fixture.divisionID); err == nil {
		t.Fatalf("expected error for tied match")
	}
}

func TestCalculateStandingsGameDifferentialTiebreak(t *testing.T) {
	fixture := setupStandingsFixture(t, []string{"Aces", "Bandits", "Cobras"})

	// A three-way cycle of 2-1 results: every team has one win, a set
	// differential of zero, and a head-to-head split against the group.
	// Only the games decide it: Aces +4, Cobras 0, Bandits -4.
	fixture.recordDetailedResult(t, "Aces", "Bandits", 2, 1, "6-0 0-6 6-0")
	fixture.recordDetailedResult(t, "Bandits", "Cobras", 2, 1, "6-4 4-6 6-4")
	fixture.recordDetailedResult(t, "Cobras", "Aces", 2, 1, "6-4 4-6 6-4")

	standings, err := CalculateStandings(context.Background(), fixture.database.Queries, fixture.divisionID)
	if err != nil {
		t.Fatalf("calculate standings: %v", err)
	}
	if len(standings) != 3 {
		t.Fatalf("expected 3 standings rows, got %d", len(standings))
	}

	wantOrder := []string{"Aces", "Cobras", "Bandits"}
	for i, want := range wantOrder {
		if standings[i].TeamName != want {
			t.Fatalf("position %d: expected %s, got %s", i+1, want, standings[i].TeamName)
		}
	}

	top := standings[0]
	if top.GamesFor != 26 || top.GamesAgainst != 22 || top.GameDifferential != 4 {
		t.Fatalf("unexpected game totals for %s: %+v", top.TeamName, top)
	}
	bottom := standings[2]
	if bottom.GameDifferential != -4 {
		t.Fatalf("unexpected game differential for %s: %+v", bottom.TeamName, bottom)
	}
}

func TestCalculateStandingsRejectsMalformedScoreDetail(t *testing.T) {
	fixture := setupStandingsFixture(t, []string{"Aces", "Bandits"})
	fixture.recordDetailedResult(t, "Aces", "Bandits", 2, 0, "six-four 3-6")

	if _, err := CalculateStandings(context.Background(), fixture.database.Queries, fixture.divisionID); err == nil {
		t.Fatalf("expected error for malformed score detail")
	}
}

func TestParseGameTotals(t *testing.T) {
	home, away, err := parseGameTotals("6-4 3-6 6-2")
	if err != nil {
		t.Fatalf("parse game totals: %v", err)
	}
	if home != 15 || away != 12 {
		t.Fatalf("expected 15-12, got %d-%d", home, away)
	}

	home, away, err = parseGameTotals("")
	if err != nil || home != 0 || away != 0 {
		t.Fatalf("expected empty detail to yield no games, got %d-%d err=%v", home, away, err)
	}

	if _, _, err := parseGameTotals("6"); err == nil {
		t.Fatalf("expected error for set score without separator")
	}
}
