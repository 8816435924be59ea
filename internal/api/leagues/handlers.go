// internal/api/leagues/handlers.go
package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/api/apiutil"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
	"github.com/padelpointhq/padelpoint/internal/email"
	leaguecore "github.com/padelpointhq/padelpoint/internal/leagues"
)

const (
	leagueQueryTimeout   = 5 * time.Second
	idPathKey            = "id"
	leagueDateLayout     = "2006-01-02"
	defaultLeagueStatus  = "draft"
	defaultDivisionLevel = 1
	defaultTeamSeed      = 0
	defaultMatchMinutes  = 90
)

var leagueStatuses = map[string]struct{}{
	"draft":     {},
	"active":    {},
	"completed": {},
}

var (
	queries     *dbgen.Queries
	database    *appdb.DB
	emailSender email.EmailSender
)

// InitHandlers must be called during server startup before handling requests.
// The sender may be nil; schedule publication emails are then skipped.
func InitHandlers(db *appdb.DB, sender email.EmailSender) {
	if db == nil {
		return
	}
	database = db
	queries = db.Queries
	emailSender = sender
}

type leagueRequest struct {
	ClubID               *int64 `json:"clubId"`
	Name                 string `json:"name"`
	Season               string `json:"season"`
	StartDate            string `json:"startDate"`
	EndDate              string `json:"endDate"`
	MatchDurationMinutes int64  `json:"matchDurationMinutes"`
}

type leagueStatusRequest struct {
	Status string `json:"status"`
}

type divisionRequest struct {
	Name  string `json:"name"`
	Level int64  `json:"level"`
}

type divisionTeamRequest struct {
	TeamID int64 `json:"teamId"`
	Seed   int64 `json:"seed"`
}

type leagueView struct {
	ID                   int64  `json:"id"`
	ClubID               int64  `json:"clubId"`
	Name                 string `json:"name"`
	Season               string `json:"season"`
	StartDate            string `json:"startDate"`
	EndDate              string `json:"endDate"`
	MatchDurationMinutes int64  `json:"matchDurationMinutes"`
	Status               string `json:"status"`
}

type divisionView struct {
	ID       int64  `json:"id"`
	LeagueID int64  `json:"leagueId"`
	Name     string `json:"name"`
	Level    int64  `json:"level"`
}

type divisionTeamView struct {
	TeamID    int64  `json:"teamId"`
	Name      string `json:"name"`
	Player1ID int64  `json:"player1Id"`
	Player2ID int64  `json:"player2Id"`
	Status    string `json:"status"`
	Seed      int64  `json:"seed"`
}

// POST /api/v1/leagues
func HandleCreateLeague(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req leagueRequest
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

	input, err := validateLeagueInput(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	if _, err := q.GetClub(ctx, clubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Club not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to fetch club")
		http.Error(w, "Failed to create league", http.StatusInternalServerError)
		return
	}

	league, err := q.CreateLeague(ctx, dbgen.CreateLeagueParams{
		ClubID:               clubID,
		Name:                 input.name,
		Season:               input.season,
		StartDate:            input.startDate,
		EndDate:              input.endDate,
		MatchDurationMinutes: input.matchDurationMinutes,
		Status:               defaultLeagueStatus,
	})
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to create league")
		http.Error(w, "Failed to create league", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("club_id", clubID).Int64("league_id", league.ID).Msg("League created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, toLeagueView(league)); err != nil {
		logger.Error().Err(err).Msg("Failed to write league response")
	}
}

// GET /api/v1/leagues?club_id=
func HandleListLeagues(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	leagues, err := q.ListLeaguesByClub(ctx, clubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to list leagues")
		http.Error(w, "Failed to list leagues", http.StatusInternalServerError)
		return
	}

	views := make([]leagueView, len(leagues))
	for i, league := range leagues {
		views[i] = toLeagueView(league)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"leagues": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write leagues response")
	}
}

// GET /api/v1/leagues/{id}
func HandleGetLeague(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	league, err := q.GetLeague(ctx, leagueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "League not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to fetch league")
		http.Error(w, "Failed to fetch league", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toLeagueView(league)); err != nil {
		logger.Error().Err(err).Msg("Failed to write league response")
	}
}

// PUT /api/v1/leagues/{id}/status
func HandleUpdateLeagueStatus(w http.ResponseWriter, r *http.Request) {
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

	var req leagueStatusRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if _, ok := leagueStatuses[status]; !ok {
		http.Error(w, "Status must be draft, active, or completed", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	league, err := q.GetLeague(ctx, leagueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "League not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to fetch league")
		http.Error(w, "Failed to update league", http.StatusInternalServerError)
		return
	}

	if !apiutil.RequireClubAccess(w, r, league.ClubID) {
		return
	}

	updated, err := q.UpdateLeagueStatus(ctx, dbgen.UpdateLeagueStatusParams{
		Status: status,
		ID:     leagueID,
	})
	if err != nil {
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to update league status")
		http.Error(w, "Failed to update league", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("league_id", leagueID).Str("status", status).Msg("League status updated")
	if err := apiutil.WriteJSON(w, http.StatusOK, toLeagueView(updated)); err != nil {
		logger.Error().Err(err).Msg("Failed to write league response")
	}
}

// POST /api/v1/leagues/{id}/divisions
func HandleCreateDivision(w http.ResponseWriter, r *http.Request) {
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

	var req divisionRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "Division name is required", http.StatusBadRequest)
		return
	}
	level := req.Level
	if level <= 0 {
		level = defaultDivisionLevel
	}

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	league, err := q.GetLeague(ctx, leagueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "League not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to fetch league")
		http.Error(w, "Failed to create division", http.StatusInternalServerError)
		return
	}

	if !apiutil.RequireClubAccess(w, r, league.ClubID) {
		return
	}

	division, err := q.CreateDivision(ctx, dbgen.CreateDivisionParams{
		LeagueID: leagueID,
		Name:     name,
		Level:    level,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			http.Error(w, "A division with this name already exists", http.StatusConflict)
			return
		}
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to create division")
		http.Error(w, "Failed to create division", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("league_id", leagueID).Int64("division_id", division.ID).Msg("Division created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, toDivisionView(division)); err != nil {
		logger.Error().Err(err).Msg("Failed to write division response")
	}
}

// GET /api/v1/leagues/{id}/divisions
func HandleListDivisions(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	divisions, err := q.ListDivisions(ctx, leagueID)
	if err != nil {
		logger.Error().Err(err).Int64("league_id", leagueID).Msg("Failed to list divisions")
		http.Error(w, "Failed to list divisions", http.StatusInternalServerError)
		return
	}

	views := make([]divisionView, len(divisions))
	for i, division := range divisions {
		views[i] = toDivisionView(division)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"divisions": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write divisions response")
	}
}

// POST /api/v1/divisions/{id}/teams
func HandleAddDivisionTeam(w http.ResponseWriter, r *http.Request) {
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

	var req divisionTeamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TeamID <= 0 {
		http.Error(w, "teamId is required", http.StatusBadRequest)
		return
	}
	seed := req.Seed
	if seed < 0 {
		seed = defaultTeamSeed
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

	team, err := q.GetTeam(ctx, req.TeamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("team_id", req.TeamID).Msg("Failed to fetch team")
		http.Error(w, "Failed to add team", http.StatusInternalServerError)
		return
	}
	if team.ClubID != league.ClubID {
		http.Error(w, "Team must belong to the league's club", http.StatusBadRequest)
		return
	}
	if team.Status != "active" {
		http.Error(w, "Team must be active to join a division", http.StatusBadRequest)
		return
	}

	entry, err := q.AddDivisionTeam(ctx, dbgen.AddDivisionTeamParams{
		DivisionID: division.ID,
		TeamID:     team.ID,
		Seed:       seed,
		Status:     "active",
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") || strings.Contains(err.Error(), "PRIMARY KEY") {
			http.Error(w, "Team is already in this division", http.StatusConflict)
			return
		}
		logger.Error().Err(err).Int64("division_id", divisionID).Int64("team_id", team.ID).Msg("Failed to add division team")
		http.Error(w, "Failed to add team", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("division_id", divisionID).Int64("team_id", team.ID).Msg("Team added to division")
	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{
		"divisionId": entry.DivisionID,
		"teamId":     entry.TeamID,
		"seed":       entry.Seed,
		"status":     entry.Status,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write division team response")
	}
}

// GET /api/v1/divisions/{id}/teams
func HandleListDivisionTeams(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	teams, err := q.ListDivisionTeams(ctx, divisionID)
	if err != nil {
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to list division teams")
		http.Error(w, "Failed to list division teams", http.StatusInternalServerError)
		return
	}

	views := make([]divisionTeamView, len(teams))
	for i, team := range teams {
		views[i] = divisionTeamView{
			TeamID:    team.ID,
			Name:      team.Name,
			Player1ID: team.Player1ID,
			Player2ID: team.Player2ID,
			Status:    team.Status,
			Seed:      team.Seed,
		}
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write division teams response")
	}
}

// GET /api/v1/divisions/{id}/standings
func HandleGetStandings(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	if _, err := q.GetDivision(ctx, divisionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Division not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to fetch division")
		http.Error(w, "Failed to load standings", http.StatusInternalServerError)
		return
	}

	standings, err := leaguecore.CalculateStandings(ctx, q, divisionID)
	if err != nil {
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to calculate standings")
		http.Error(w, "Failed to load standings", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"standings": standings}); err != nil {
		logger.Error().Err(err).Msg("Failed to write standings response")
	}
}

type leagueInput struct {
	name                 string
	season               string
	startDate            time.Time
	endDate              time.Time
	matchDurationMinutes int64
}

func validateLeagueInput(req leagueRequest) (leagueInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return leagueInput{}, fmt.Errorf("league name is required")
	}
	season := strings.TrimSpace(req.Season)
	if season == "" {
		return leagueInput{}, fmt.Errorf("season is required")
	}

	startDate, err := time.Parse(leagueDateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return leagueInput{}, fmt.Errorf("startDate must use the YYYY-MM-DD format")
	}
	endDate, err := time.Parse(leagueDateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		return leagueInput{}, fmt.Errorf("endDate must use the YYYY-MM-DD format")
	}
	if endDate.Before(startDate) {
		return leagueInput{}, fmt.Errorf("endDate must be on or after startDate")
	}

	matchDurationMinutes := req.MatchDurationMinutes
	if matchDurationMinutes == 0 {
		matchDurationMinutes = defaultMatchMinutes
	}
	if matchDurationMinutes < 0 {
		return leagueInput{}, fmt.Errorf("matchDurationMinutes must be positive")
	}

	return leagueInput{
		name:                 name,
		season:               season,
		startDate:            startDate,
		endDate:              endDate,
		matchDurationMinutes: matchDurationMinutes,
	}, nil
}

func loadDivisionWithLeague(ctx context.Context, w http.ResponseWriter, logger *zerolog.Logger, q *dbgen.Queries, divisionID int64) (dbgen.Division, dbgen.League, bool) {
	division, err := q.GetDivision(ctx, divisionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Division not found", http.StatusNotFound)
			return dbgen.Division{}, dbgen.League{}, false
		}
		logger.Error().Err(err).Int64("division_id", divisionID).Msg("Failed to fetch division")
		http.Error(w, "Failed to fetch division", http.StatusInternalServerError)
		return dbgen.Division{}, dbgen.League{}, false
	}

	league, err := q.GetLeague(ctx, division.LeagueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "League not found", http.StatusNotFound)
			return dbgen.Division{}, dbgen.League{}, false
		}
		logger.Error().Err(err).Int64("league_id", division.LeagueID).Msg("Failed to fetch league")
		http.Error(w, "Failed to fetch league", http.StatusInternalServerError)
		return dbgen.Division{}, dbgen.League{}, false
	}

	return division, league, true
}

func toLeagueView(league dbgen.League) leagueView {
	return leagueView{
		ID:                   league.ID,
		ClubID:               league.ClubID,
		Name:                 league.Name,
		Season:               league.Season,
		StartDate:            league.StartDate.Format(leagueDateLayout),
		EndDate:              league.EndDate.Format(leagueDateLayout),
		MatchDurationMinutes: league.MatchDurationMinutes,
		Status:               league.Status,
	}
}

func toDivisionView(division dbgen.Division) divisionView {
	return divisionView{
		ID:       division.ID,
		LeagueID: division.LeagueID,
		Name:     division.Name,
		Level:    division.Level,
	}
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDB() *appdb.DB {
	return database
}
