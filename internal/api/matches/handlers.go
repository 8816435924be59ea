// internal/api/matches/handlers.go
package matches

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/api/apiutil"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
)

const (
	matchQueryTimeout = 5 * time.Second
	idPathKey         = "id"
)

var queries *dbgen.Queries

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	if db == nil {
		return
	}
	queries = db.Queries
}

type resultRequest struct {
	HomeSets    int64  `json:"homeSets"`
	AwaySets    int64  `json:"awaySets"`
	ScoreDetail string `json:"scoreDetail"`
}

type matchView struct {
	ID          int64  `json:"id"`
	LeagueID    int64  `json:"leagueId"`
	DivisionID  int64  `json:"divisionId"`
	Round       int64  `json:"round"`
	HomeTeamID  int64  `json:"homeTeamId"`
	AwayTeamID  int64  `json:"awayTeamId"`
	CourtID     int64  `json:"courtId,omitempty"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
	EndsAt      string `json:"endsAt,omitempty"`
	Status      string `json:"status"`
	HomeSets    *int64 `json:"homeSets,omitempty"`
	AwaySets    *int64 `json:"awaySets,omitempty"`
	ScoreDetail string `json:"scoreDetail,omitempty"`
}

// GET /api/v1/leagues/{id}/matches
func HandleListLeagueMatches(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	leagueID, err := apiutil.PathID(r, idPathKey)
	if err != nil {
		http.Error(w, "Invalid league ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	matches, err := q.ListLeagueMatches(ctx, leagueID)
	if err != nil {
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to list matches")
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	writeMatchList(w, logger, matches)
}

// GET /api/v1/divisions/{id}/matches
func HandleListDivisionMatches(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	divisionID, err := apiutil.PathID(r, idPathKey)
	if err != nil {
		http.Error(w, "Invalid division ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	matches, err := q.ListDivisionMatches(ctx, divisionID)
	if err != nil {
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to list matches")
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	writeMatchList(w, logger, matches)
}

// GET /api/v1/matches/{id}
func HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, idPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	match, err := q.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to fetch match")
		http.Error(w, "Failed to fetch match", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toMatchView(match)); err != nil {
		logger.Error().Err(err).Msg("Failed to write match response")
	}
}

// PUT /api/v1/matches/{id}/result
func HandleRecordResult(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, idPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	var req resultRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.HomeSets < 0 || req.AwaySets < 0 {
		http.Error(w, "Set counts must be 0 or greater", http.StatusBadRequest)
		return
	}
	if req.HomeSets == 0 && req.AwaySets == 0 {
		http.Error(w, "A result needs at least one set", http.StatusBadRequest)
		return
	}
	// Padel matches cannot tie.
	if req.HomeSets == req.AwaySets {
		http.Error(w, "Set counts cannot be equal", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	match, err := q.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to fetch match")
		http.Error(w, "Failed to record result", http.StatusInternalServerError)
		return
	}

	league, err := q.GetLeague(ctx, match.LeagueID)
	if err != nil {
		logger.Error().Err(err).Int64("league_id", match.LeagueID).Msg("Failed to fetch league")
		http.Error(w, "Failed to record result", http.StatusInternalServerError)
		return
	}

	if !apiutil.RequireClubAccess(w, r, league.ClubID) {
		return
	}

	// A completed match's result is final.
	if match.Status == "completed" {
		http.Error(w, "Match already has a recorded result", http.StatusConflict)
		return
	}

	homeSets := req.HomeSets
	awaySets := req.AwaySets
	updated, err := q.UpdateMatchResult(ctx, dbgen.UpdateMatchResultParams{
		HomeSets:    apiutil.ToNullInt64(&homeSets),
		AwaySets:    apiutil.ToNullInt64(&awaySets),
		ScoreDetail: apiutil.ToNullString(strings.TrimSpace(req.ScoreDetail)),
		ID:          matchID,
	})
	if err != nil {
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to record result")
		http.Error(w, "Failed to record result", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Int64("match_id", matchID).
		Int64("home_sets", homeSets).
		Int64("away_sets", awaySets).
		Msg("Match result recorded")
	if err := apiutil.WriteJSON(w, http.StatusOK, toMatchView(updated)); err != nil {
		logger.Error().Err(err).Msg("Failed to write match response")
	}
}

func writeMatchList(w http.ResponseWriter, logger *zerolog.Logger, matches []dbgen.Match) {
	views := make([]matchView, len(matches))
	for i, match := range matches {
		views[i] = toMatchView(match)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"matches": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write matches response")
	}
}

func toMatchView(match dbgen.Match) matchView {
	view := matchView{
		ID:         match.ID,
		LeagueID:   match.LeagueID,
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
	if match.HomeSets.Valid {
		homeSets := match.HomeSets.Int64
		view.HomeSets = &homeSets
	}
	if match.AwaySets.Valid {
		awaySets := match.AwaySets.Int64
		view.AwaySets = &awaySets
	}
	if match.ScoreDetail.Valid {
		view.ScoreDetail = match.ScoreDetail.String
	}
	return view
}

func loadQueries() *dbgen.Queries {
	return queries
}
