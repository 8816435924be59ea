// internal/api/leagues/schedule.go
package leagues

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/api/apiutil"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
	"github.com/padelpointhq/padelpoint/internal/email"
	leaguecore "github.com/padelpointhq/padelpoint/internal/leagues"
)

const notifyTimeout = 30 * time.Second

type scheduledMatchView struct {
	ID          int64  `json:"id"`
	DivisionID  int64  `json:"divisionId"`
	Round       int64  `json:"round"`
	HomeTeamID  int64  `json:"homeTeamId"`
	AwayTeamID  int64  `json:"awayTeamId"`
	CourtID     int64  `json:"courtId,omitempty"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
	EndsAt      string `json:"endsAt,omitempty"`
	Status      string `json:"status"`
}

// POST /api/v1/divisions/{id}/schedule/generate
func HandleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	handleScheduleGeneration(w, r, false)
}

// POST /api/v1/divisions/{id}/schedule/regenerate
func HandleRegenerateSchedule(w http.ResponseWriter, r *http.Request) {
	handleScheduleGeneration(w, r, true)
}

func handleScheduleGeneration(w http.ResponseWriter, r *http.Request, regenerate bool) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	db := loadDB()
	if q == nil || db == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	divisionID, err := apiutil.PathID(r, idPathKey)
	if err != nil {
		http.Error(w, "Invalid division ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	division, league, ok := loadDivisionWithLeague(ctx, w, logger, q, divisionID)
	if !ok {
		return
	}

	if !apiutil.RequireClubAccess(w, r, league.ClubID) {
		return
	}

	// Completed results are never discarded; a division with played
	// matches cannot be rescheduled.
	completed, err := q.CountDivisionMatchesByStatus(ctx, dbgen.CountDivisionMatchesByStatusParams{
		DivisionID: divisionID,
		Status:     "completed",
	})
	if err != nil {
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to check completed matches")
		http.Error(w, "Failed to check existing schedule", http.StatusInternalServerError)
		return
	}
	if completed > 0 {
		http.Error(w, "Division has completed matches and cannot be rescheduled", http.StatusConflict)
		return
	}

	if !regenerate {
		scheduled, err := q.CountDivisionMatchesByStatus(ctx, dbgen.CountDivisionMatchesByStatusParams{
			DivisionID: divisionID,
			Status:     "scheduled",
		})
		if err != nil {
			logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to check existing schedule")
			http.Error(w, "Failed to check existing schedule", http.StatusInternalServerError)
			return
		}
		if scheduled > 0 {
			http.Error(w, "Schedule already exists for this division", http.StatusConflict)
			return
		}
	}

	teams, err := q.ListDivisionTeams(ctx, divisionID)
	if err != nil {
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to load division teams")
		http.Error(w, "Failed to load division teams", http.StatusInternalServerError)
		return
	}
	teams = filterActiveTeams(teams)
	if len(teams) < 2 {
		http.Error(w, "At least two active teams are required", http.StatusBadRequest)
		return
	}

	courts, err := q.ListCourts(ctx, league.ClubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", league.ClubID).Msg("Failed to load courts")
		http.Error(w, "Failed to load courts", http.StatusInternalServerError)
		return
	}
	courts = filterActiveCourts(courts)
	if len(courts) == 0 {
		http.Error(w, "No active courts available for scheduling", http.StatusBadRequest)
		return
	}

	hours, err := q.ListClubHours(ctx, league.ClubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", league.ClubID).Msg("Failed to load club hours")
		http.Error(w, "Failed to load club hours", http.StatusInternalServerError)
		return
	}

	matchDuration := time.Duration(league.MatchDurationMinutes) * time.Minute

	schedule, err := leaguecore.GenerateSchedule(league.ID, divisionID, teams, league.StartDate, league.EndDate, courts, hours, matchDuration)
	if err != nil {
		if errors.Is(err, leaguecore.ErrInvalidInput) {
			http.Error(w, "Division needs an even number of teams to schedule a round robin", http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to generate schedule")
		http.Error(w, "Unable to generate schedule with the current league settings", http.StatusBadRequest)
		return
	}

	createdMatches := make([]dbgen.Match, 0, len(schedule))
	err = db.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries

		if regenerate {
			if _, err := qtx.DeleteScheduledDivisionMatches(ctx, divisionID); err != nil {
				return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to delete existing schedule", Err: err}
			}
		}

		for _, match := range schedule {
			courtID := match.Court.ID
			created, err := qtx.CreateMatch(ctx, dbgen.CreateMatchParams{
				LeagueID:    league.ID,
				DivisionID:  divisionID,
				Round:       int64(match.Round),
				HomeTeamID:  match.HomeTeam.ID,
				AwayTeamID:  match.AwayTeam.ID,
				CourtID:     apiutil.ToNullInt64(&courtID),
				ScheduledAt: apiutil.ToNullTime(match.StartTime),
				EndsAt:      apiutil.ToNullTime(match.EndTime),
				Status:      "scheduled",
			})
			if err != nil {
				return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to create match", Err: err}
			}
			createdMatches = append(createdMatches, created)
		}
		return nil
	})
	if err != nil {
		var herr apiutil.HandlerError
		if errors.As(err, &herr) {
			logger.Error().Err(herr.Err).Int64("division_id", divisionID).Msg(herr.Message)
			http.Error(w, herr.Message, herr.Status)
			return
		}
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to save schedule")
		http.Error(w, "Failed to save schedule", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Int64("division_id", divisionID).
		Int("matches", len(createdMatches)).
		Bool("regenerate", regenerate).
		Msg("Schedule generated")

	notifySchedulePublished(r.Context(), q, league, division, teams, createdMatches, logger)

	views := make([]scheduledMatchView, len(createdMatches))
	for i, match := range createdMatches {
		views[i] = toScheduledMatchView(match)
	}
	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{"matches": views}); err != nil {
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to write schedule response")
	}
}

// notifySchedulePublished mails every player in the division in the
// background. Delivery failures are logged and never fail the request.
func notifySchedulePublished(ctx context.Context, q *dbgen.Queries, league dbgen.League, division dbgen.Division, teams []dbgen.ListDivisionTeamsRow, matches []dbgen.Match, logger *zerolog.Logger) {
	if emailSender == nil || len(matches) == 0 {
		return
	}

	firstMatch := ""
	for _, match := range matches {
		if match.ScheduledAt.Valid {
			date, _ := email.FormatDateTimeRange(match.ScheduledAt.Time, match.ScheduledAt.Time)
			firstMatch = date
			break
		}
	}

	playerIDs := make(map[int64]struct{}, len(teams)*2)
	for _, team := range teams {
		playerIDs[team.Player1ID] = struct{}{}
		playerIDs[team.Player2ID] = struct{}{}
	}

	message := email.BuildSchedulePublished(email.SchedulePublishedDetails{
		LeagueName:   league.Name,
		DivisionName: division.Name,
		MatchCount:   len(matches),
		FirstMatch:   firstMatch,
	})

	notifyLogger := logger.With().Int64("division_id", division.ID).Logger()
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		club, err := q.GetClub(notifyCtx, league.ClubID)
		if err != nil {
			notifyLogger.Error().Err(err).Msg("Failed to load club for schedule notification")
			return
		}
		clubMessage := message
		clubMessage.Body = "Club: " + club.Name + "\n" + clubMessage.Body

		for playerID := range playerIDs {
			player, err := q.GetPlayer(notifyCtx, playerID)
			if err != nil {
				notifyLogger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to load player for schedule notification")
				continue
			}
			if err := emailSender.Send(notifyCtx, player.Email, clubMessage.Subject, clubMessage.Body); err != nil {
				notifyLogger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to send schedule notification")
			}
		}
	}()
}

func filterActiveTeams(teams []dbgen.ListDivisionTeamsRow) []dbgen.ListDivisionTeamsRow {
	active := teams[:0]
	for _, team := range teams {
		if team.Status == "active" {
			active = append(active, team)
		}
	}
	return active
}

func filterActiveCourts(courts []dbgen.Court) []dbgen.Court {
	active := courts[:0]
	for _, court := range courts {
		if court.Status == "active" {
			active = append(active, court)
		}
	}
	return active
}

func toScheduledMatchView(match dbgen.Match) scheduledMatchView {
	view := scheduledMatchView{
		ID:         match.ID,
		DivisionID: match.DivisionID,
		Round:      match.Round,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		Status:     match.Status,
	}
	if match.CourtID.Valid {
		view.CourtID = match.CourtID.Int64
	}
	if match.ScheduledAt.Valid {
		view.ScheduledAt = match.ScheduledAt.Time.UTC().Format(time.RFC3339)
	}
	if match.EndsAt.Valid {
		view.EndsAt = match.EndsAt.Time.UTC().Format(time.RFC3339)
	}
	return view
}
