package leagues

import (
	"errors"
	"strings"
	"testing"
	"time"

	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
)

func divisionTeams(n int) []dbgen.ListDivisionTeamsRow {
	teams := make([]dbgen.ListDivisionTeamsRow, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, dbgen.ListDivisionTeamsRow{
			ID:     int64(i + 1),
			ClubID: 1,
			Name:   string(rune('A' + i)),
			Status: "active",
			Seed:   int64(i + 1),
		})
	}
	return teams
}

func allWeekHours(opens, closes string) []dbgen.ClubHour {
	hours := make([]dbgen.ClubHour, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, dbgen.ClubHour{
			ClubID:    1,
			DayOfWeek: int64(day),
			OpensAt:   opens,
			ClosesAt:  closes,
		})
	}
	return hours
}

func TestGenerateScheduleFullRoundRobin(t *testing.T) {
	teams := divisionTeams(4)
	courts := []dbgen.Court{{ID: 1, ClubID: 1, Name: "Court 1", Status: "active"}}
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // Monday
	end := start

	schedule, err := GenerateSchedule(10, 20, teams, start, end, courts, allWeekHours("09:00", "21:00"), 90*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4 teams -> 3 rounds of 2 matches.
	if len(schedule) != 6 {
		t.Fatalf("expected 6 matches, got %d", len(schedule))
	}

	for idx, match := range schedule {
		if match.LeagueID != 10 || match.DivisionID != 20 {
			t.Fatalf("match %d has wrong league/division: %+v", idx, match)
		}
		if match.HomeTeam.ID == match.AwayTeam.ID {
			t.Fatalf("match %d pairs a team against itself", idx)
		}
		if match.Court.ID != 1 {
			t.Fatalf("match %d not assigned to the only court", idx)
		}
		if match.StartTime.Hour() < 9 {
			t.Fatalf("match %d starts before opening: %v", idx, match.StartTime)
		}
		if match.EndTime.Sub(match.StartTime) != 90*time.Minute {
			t.Fatalf("match %d has wrong duration", idx)
		}
	}

	// Slots are consumed in order, so rounds stay chronological.
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Round < schedule[i-1].Round {
			t.Fatalf("rounds out of order at index %d", i)
		}
		if schedule[i].StartTime.Before(schedule[i-1].StartTime) {
			t.Fatalf("start times out of order at index %d", i)
		}
	}
}

func TestGenerateScheduleRejectsOddTeamCount(t *testing.T) {
	teams := divisionTeams(5)
	courts := []dbgen.Court{{ID: 1, ClubID: 1, Name: "Court 1", Status: "active"}}
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	_, err := GenerateSchedule(10, 20, teams, start, start.AddDate(0, 0, 13), courts, allWeekHours("09:00", "21:00"), 90*time.Minute)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for odd team count, got %v", err)
	}
}

func TestGenerateScheduleInsufficientSlots(t *testing.T) {
	teams := divisionTeams(8) // 28 matches
	courts := []dbgen.Court{{ID: 1, ClubID: 1, Name: "Court 1", Status: "active"}}
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	// A single day with one court only fits 8 slots.
	_, err := GenerateSchedule(10, 20, teams, start, start, courts, allWeekHours("09:00", "21:00"), 90*time.Minute)
	if err == nil || !strings.Contains(err.Error(), "insufficient slots") {
		t.Fatalf("expected insufficient slots error, got %v", err)
	}
}

func TestGenerateScheduleInvalidHours(t *testing.T) {
	teams := divisionTeams(2)
	courts := []dbgen.Court{{ID: 1, ClubID: 1, Name: "Court 1", Status: "active"}}
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	hours := []dbgen.ClubHour{{ClubID: 1, DayOfWeek: 1, OpensAt: "not-a-time", ClosesAt: "21:00"}}

	if _, err := GenerateSchedule(10, 20, teams, start, start, courts, hours, time.Hour); err == nil {
		t.Fatalf("expected error for malformed operating hours")
	}
}

func TestParseTimeOfDayFormats(t *testing.T) {
	for raw, wantHour := range map[string]int{
		"09:00":   9,
		"9:00 PM": 21,
		"12:30":   12,
	} {
		parsed, err := parseTimeOfDay(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if parsed.Hour() != wantHour {
			t.Fatalf("parse %q: expected hour %d, got %d", raw, wantHour, parsed.Hour())
		}
	}
}
