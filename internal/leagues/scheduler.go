package leagues

import (
	"errors"
	"fmt"
	"strings"
	"time"

	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
)

type ScheduledMatch struct {
	LeagueID   int64
	DivisionID int64
	Round      int
	HomeTeam   dbgen.ListDivisionTeamsRow
	AwayTeam   dbgen.ListDivisionTeamsRow
	Court      dbgen.Court
	StartTime  time.Time
	EndTime    time.Time
}

type matchSlot struct {
	Start time.Time
	End   time.Time
	Court dbgen.Court
}

type dayHours struct {
	Opens  time.Time
	Closes time.Time
}

// GenerateSchedule turns a division's team list into a full single round
// robin placed on concrete court slots between startDate and endDate.
// Team order determines seeding. Odd team counts are rejected; divisions
// must be evened out before scheduling.
func GenerateSchedule(leagueID, divisionID int64, teams []dbgen.ListDivisionTeamsRow, startDate, endDate time.Time, courts []dbgen.Court, clubHours []dbgen.ClubHour, matchDuration time.Duration) ([]ScheduledMatch, error) {
	if leagueID <= 0 {
		return nil, errors.New("league ID is required")
	}
	if divisionID <= 0 {
		return nil, errors.New("division ID is required")
	}
	if len(teams) < 2 {
		return nil, errors.New("at least two teams are required")
	}
	if len(courts) == 0 {
		return nil, errors.New("at least one court is required")
	}
	if matchDuration <= 0 {
		return nil, errors.New("match duration must be positive")
	}
	startDate = truncateDate(startDate)
	endDate = truncateDate(endDate)
	if endDate.Before(startDate) {
		return nil, errors.New("start date must be on or before end date")
	}

	teamsByID := make(map[int64]dbgen.ListDivisionTeamsRow, len(teams))
	teamIDs := make([]int64, 0, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
		teamIDs = append(teamIDs, team.ID)
	}

	pairs, err := RoundRobinPairings(teamIDs)
	if err != nil {
		return nil, err
	}

	slots, err := buildMatchSlots(startDate, endDate, courts, clubHours, matchDuration)
	if err != nil {
		return nil, err
	}
	if len(slots) < len(pairs) {
		return nil, fmt.Errorf("insufficient slots: need %d matches but only %d available", len(pairs), len(slots))
	}

	schedule := make([]ScheduledMatch, 0, len(pairs))
	for idx, pairing := range pairs {
		slot := slots[idx]
		schedule = append(schedule, ScheduledMatch{
			LeagueID:   leagueID,
			DivisionID: divisionID,
			Round:      pairing.Round,
			HomeTeam:   teamsByID[pairing.Home],
			AwayTeam:   teamsByID[pairing.Away],
			Court:      slot.Court,
			StartTime:  slot.Start,
			EndTime:    slot.End,
		})
	}
	return schedule, nil
}

func buildMatchSlots(startDate, endDate time.Time, courts []dbgen.Court, clubHours []dbgen.ClubHour, matchDuration time.Duration) ([]matchSlot, error) {
	hoursByDay, err := buildHoursByDay(clubHours)
	if err != nil {
		return nil, err
	}
	if len(hoursByDay) == 0 {
		return nil, errors.New("club operating hours are required")
	}

	var slots []matchSlot
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		hours, ok := hoursByDay[int(date.Weekday())]
		if !ok {
			continue
		}
		dayOpen := time.Date(date.Year(), date.Month(), date.Day(), hours.Opens.Hour(), hours.Opens.Minute(), 0, 0, date.Location())
		dayClose := time.Date(date.Year(), date.Month(), date.Day(), hours.Closes.Hour(), hours.Closes.Minute(), 0, 0, date.Location())
		if !dayClose.After(dayOpen) {
			continue
		}
		for start := dayOpen; !start.Add(matchDuration).After(dayClose); start = start.Add(matchDuration) {
			end := start.Add(matchDuration)
			for _, court := range courts {
				slots = append(slots, matchSlot{Start: start, End: end, Court: court})
			}
		}
	}

	if len(slots) == 0 {
		return nil, errors.New("no available match slots in the league date range")
	}
	return slots, nil
}

func buildHoursByDay(clubHours []dbgen.ClubHour) (map[int]dayHours, error) {
	result := make(map[int]dayHours)
	for _, hour := range clubHours {
		if strings.TrimSpace(hour.OpensAt) == "" || strings.TrimSpace(hour.ClosesAt) == "" {
			continue
		}
		opens, err := parseTimeOfDay(hour.OpensAt)
		if err != nil {
			return nil, fmt.Errorf("invalid opens_at for day %d: %w", hour.DayOfWeek, err)
		}
		closes, err := parseTimeOfDay(hour.ClosesAt)
		if err != nil {
			return nil, fmt.Errorf("invalid closes_at for day %d: %w", hour.DayOfWeek, err)
		}
		result[int(hour.DayOfWeek)] = dayHours{Opens: opens, Closes: closes}
	}
	return result, nil
}

func parseTimeOfDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("time is required")
	}
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		formats := []string{"3:04 PM", "03:04 PM", "3:04PM", "03:04PM"}
		for _, format := range formats {
			if parsed, err = time.Parse(format, strings.ToUpper(raw)); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, errors.New("time must be in HH:MM or H:MM AM/PM format")
	}
	return parsed, nil
}

func truncateDate(value time.Time) time.Time {
	loc := value.Location()
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, loc)
}
