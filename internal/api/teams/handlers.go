// internal/api/teams/handlers.go
package teams

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/api/apiutil"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
)

const (
	teamQueryTimeout  = 5 * time.Second
	teamIDPathKey     = "id"
	defaultTeamStatus = "active"
)

var queries *dbgen.Queries

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	if db == nil {
		return
	}
	queries = db.Queries
}

type teamRequest struct {
	ClubID    *int64 `json:"clubId"`
	Name      string `json:"name"`
	Player1ID int64  `json:"player1Id"`
	Player2ID int64  `json:"player2Id"`
}

type teamView struct {
	ID        int64  `json:"id"`
	ClubID    int64  `json:"clubId"`
	Name      string `json:"name"`
	Player1ID int64  `json:"player1Id"`
	Player2ID int64  `json:"player2Id"`
	Status    string `json:"status"`
}

// POST /api/v1/teams
func HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req teamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	clubID, err := apiutil.ClubIDFromRequest(r, req.ClubID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !apiutil.RequireClubAccess(w, r, clubID) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "Team name is required", http.StatusBadRequest)
		return
	}
	if req.Player1ID <= 0 || req.Player2ID <= 0 {
		http.Error(w, "Both player IDs are required", http.StatusBadRequest)
		return
	}
	// Padel teams are pairs; a player cannot partner themselves.
	if req.Player1ID == req.Player2ID {
		http.Error(w, "A team needs two distinct players", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	for _, playerID := range []int64{req.Player1ID, req.Player2ID} {
		player, err := q.GetPlayer(ctx, playerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to fetch player")
			http.Error(w, "Failed to create team", http.StatusInternalServerError)
			return
		}
		if player.ClubID != clubID {
			http.Error(w, "Players must belong to the team's club", http.StatusBadRequest)
			return
		}
		if player.Status != "active" {
			http.Error(w, "Players must be active to join a team", http.StatusBadRequest)
			return
		}
	}

	team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{
		ClubID:    clubID,
		Name:      name,
		Player1ID: req.Player1ID,
		Player2ID: req.Player2ID,
		Status:    defaultTeamStatus,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			http.Error(w, "A team with this name already exists", http.StatusConflict)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to create team")
		http.Error(w, "Failed to create team", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("club_id", clubID).Int64("team_id", team.ID).Msg("Team created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, toTeamView(team)); err != nil {
		logger.Error().Err(err).Msg("Failed to write team response")
	}
}

// GET /api/v1/teams?club_id=
func HandleListTeams(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := apiutil.ClubIDFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	teams, err := q.ListTeamsByClub(ctx, clubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to list teams")
		http.Error(w, "Failed to list teams", http.StatusInternalServerError)
		return
	}

	views := make([]teamView, len(teams))
	for i, team := range teams {
		views[i] = toTeamView(team)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write teams response")
	}
}

// GET /api/v1/teams/{id}
func HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := q.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to fetch team")
		http.Error(w, "Failed to fetch team", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toTeamView(team)); err != nil {
		logger.Error().Err(err).Msg("Failed to write team response")
	}
}

func toTeamView(team dbgen.Team) teamView {
	return teamView{
		ID:        team.ID,
		ClubID:    team.ClubID,
		Name:      team.Name,
		Player1ID: team.Player1ID,
		Player2ID: team.Player2ID,
		Status:    team.Status,
	}
}

func loadQueries() *dbgen.Queries {
	return queries
}
