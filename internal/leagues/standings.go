package leagues

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
)

type TeamStanding struct {
	TeamID           int64  `json:"teamId"`
	TeamName         string `json:"teamName"`
	MatchesPlayed    int    `json:"matchesPlayed"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	SetsFor          int    `json:"setsFor"`
	SetsAgainst      int    `json:"setsAgainst"`
	SetDifferential  int    `json:"setDifferential"`
	GamesFor         int    `json:"gamesFor"`
	GamesAgainst     int    `json:"gamesAgainst"`
	GameDifferential int    `json:"gameDifferential"`
}

type teamStats struct {
	TeamStanding
	headToHeadWins    map[int64]int
	headToHeadSetDiff map[int64]int
}

// matchTotals is one team's side of a completed match.
type matchTotals struct {
	opponentID    int64
	sets          int
	opponentSets  int
	games         int
	opponentGames int
}

// CalculateStandings orders a division by wins, breaking ties within a
// wins group by head-to-head wins, set differential, head-to-head set
// differential, game differential, then team name. Game totals come
// from each match's set-by-set score; matches recorded without one
// contribute no games.
func CalculateStandings(ctx context.Context, q *dbgen.Queries, divisionID int64) ([]TeamStanding, error) {
	if q == nil {
		return nil, errors.New("queries are required")
	}
	if divisionID <= 0 {
		return nil, errors.New("division ID is required")
	}

	rows, err := q.GetDivisionStandingsData(ctx, divisionID)
	if err != nil {
		return nil, err
	}

	teams := make(map[int64]*teamStats)
	for _, row := range rows {
		entry, ok := teams[row.TeamID]
		if !ok {
			entry = &teamStats{
				TeamStanding: TeamStanding{
					TeamID:   row.TeamID,
					TeamName: row.TeamName,
				},
				headToHeadWins:    make(map[int64]int),
				headToHeadSetDiff: make(map[int64]int),
			}
			teams[row.TeamID] = entry
		}

		if !row.MatchID.Valid {
			continue
		}
		if !row.HomeTeamID.Valid || !row.AwayTeamID.Valid || !row.HomeSets.Valid || !row.AwaySets.Valid {
			return nil, fmt.Errorf("match %d is missing set scores", row.MatchID.Int64)
		}

		totals, err := resolveMatchTotals(row, entry.TeamID)
		if err != nil {
			return nil, err
		}

		entry.MatchesPlayed++
		entry.SetsFor += totals.sets
		entry.SetsAgainst += totals.opponentSets
		entry.SetDifferential = entry.SetsFor - entry.SetsAgainst
		entry.GamesFor += totals.games
		entry.GamesAgainst += totals.opponentGames
		entry.GameDifferential = entry.GamesFor - entry.GamesAgainst

		if totals.sets > totals.opponentSets {
			entry.Wins++
			entry.headToHeadWins[totals.opponentID]++
		} else if totals.sets < totals.opponentSets {
			entry.Losses++
		} else {
			return nil, fmt.Errorf("match %d is tied; padel matches cannot tie", row.MatchID.Int64)
		}
		entry.headToHeadSetDiff[totals.opponentID] += totals.sets - totals.opponentSets
	}

	ordered := make([]*teamStats, 0, len(teams))
	for _, team := range teams {
		ordered = append(ordered, team)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Wins != ordered[j].Wins {
			return ordered[i].Wins > ordered[j].Wins
		}
		return ordered[i].TeamName < ordered[j].TeamName
	})

	sortStandingsByTiebreakers(ordered)

	standings := make([]TeamStanding, 0, len(ordered))
	for _, team := range ordered {
		standings = append(standings, team.TeamStanding)
	}
	return standings, nil
}

func resolveMatchTotals(row dbgen.GetDivisionStandingsDataRow, teamID int64) (matchTotals, error) {
	homeID := row.HomeTeamID.Int64
	awayID := row.AwayTeamID.Int64

	homeGames, awayGames, err := parseGameTotals(row.ScoreDetail.String)
	if err != nil {
		return matchTotals{}, fmt.Errorf("match %d: %w", row.MatchID.Int64, err)
	}

	switch teamID {
	case homeID:
		return matchTotals{
			opponentID:    awayID,
			sets:          int(row.HomeSets.Int64),
			opponentSets:  int(row.AwaySets.Int64),
			games:         homeGames,
			opponentGames: awayGames,
		}, nil
	case awayID:
		return matchTotals{
			opponentID:    homeID,
			sets:          int(row.AwaySets.Int64),
			opponentSets:  int(row.HomeSets.Int64),
			games:         awayGames,
			opponentGames: homeGames,
		}, nil
	default:
		return matchTotals{}, fmt.Errorf("match %d does not include team %d", row.MatchID.Int64, teamID)
	}
}

// parseGameTotals sums home and away games from a set-by-set score like
// "6-4 3-6 6-2". An empty score contributes no games.
func parseGameTotals(detail string) (int, int, error) {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return 0, 0, nil
	}

	var home, away int
	for _, set := range strings.Fields(detail) {
		games := strings.SplitN(set, "-", 2)
		if len(games) != 2 {
			return 0, 0, fmt.Errorf("invalid set score %q", set)
		}
		homeGames, err := strconv.Atoi(games[0])
		if err != nil || homeGames < 0 {
			return 0, 0, fmt.Errorf("invalid set score %q", set)
		}
		awayGames, err := strconv.Atoi(games[1])
		if err != nil || awayGames < 0 {
			return 0, 0, fmt.Errorf("invalid set score %q", set)
		}
		home += homeGames
		away += awayGames
	}
	return home, away, nil
}

func sortStandingsByTiebreakers(ordered []*teamStats) {
	if len(ordered) < 2 {
		return
	}

	start := 0
	for start < len(ordered) {
		end := start + 1
		for end < len(ordered) && ordered[end].Wins == ordered[start].Wins {
			end++
		}

		if end-start > 1 {
			group := ordered[start:end]
			groupSet := make(map[int64]struct{}, len(group))
			for _, team := range group {
				groupSet[team.TeamID] = struct{}{}
			}

			sort.SliceStable(group, func(i, j int) bool {
				headToHeadWinsI := headToHeadWins(group[i], groupSet)
				headToHeadWinsJ := headToHeadWins(group[j], groupSet)
				if headToHeadWinsI != headToHeadWinsJ {
					return headToHeadWinsI > headToHeadWinsJ
				}
				if group[i].SetDifferential != group[j].SetDifferential {
					return group[i].SetDifferential > group[j].SetDifferential
				}
				headToHeadDiffI := headToHeadSetDiff(group[i], groupSet)
				headToHeadDiffJ := headToHeadSetDiff(group[j], groupSet)
				if headToHeadDiffI != headToHeadDiffJ {
					return headToHeadDiffI > headToHeadDiffJ
				}
				if group[i].GameDifferential != group[j].GameDifferential {
					return group[i].GameDifferential > group[j].GameDifferential
				}
				return group[i].TeamName < group[j].TeamName
			})
		}

		start = end
	}
}

func headToHeadWins(team *teamStats, group map[int64]struct{}) int {
	total := 0
	for opponentID, wins := range team.headToHeadWins {
		if _, ok := group[opponentID]; ok {
			total += wins
		}
	}
	return total
}

func headToHeadSetDiff(team *teamStats, group map[int64]struct{}) int {
	total := 0
	for opponentID, diff := range team.headToHeadSetDiff {
		if _, ok := group[opponentID]; ok {
			total += diff
		}
	}
	return total
}
