// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/padelpointhq/padelpoint/internal/api"
	"github.com/padelpointhq/padelpoint/internal/api/clubs"
	apileagues "github.com/padelpointhq/padelpoint/internal/api/leagues"
	"github.com/padelpointhq/padelpoint/internal/api/matches"
	"github.com/padelpointhq/padelpoint/internal/api/players"
	"github.com/padelpointhq/padelpoint/internal/api/teams"
	"github.com/padelpointhq/padelpoint/internal/config"
	"github.com/padelpointhq/padelpoint/internal/db"
	"github.com/padelpointhq/padelpoint/internal/email"
	"github.com/padelpointhq/padelpoint/internal/ratelimit"
)

func initHandlers(cfg *config.Config, database *db.DB, registerLimiter *ratelimit.Limiter, emailSender email.EmailSender) {
	clubs.InitHandlers(database)
	players.InitHandlers(database, registerLimiter, emailSender, cfg.App.TrustProxy)
	teams.InitHandlers(database)
	apileagues.InitHandlers(database, emailSender)
	matches.InitHandlers(database)
}

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithAdminKey(cfg.App.AdminKey),
		api.WithRequestID,
		api.WithContentType,
	)

	// Register routes
	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Club routes
	mux.HandleFunc("POST /api/v1/clubs", clubs.HandleCreateClub)
	mux.HandleFunc("GET /api/v1/clubs", clubs.HandleListClubs)
	mux.HandleFunc("GET /api/v1/clubs/{id}", clubs.HandleGetClub)
	mux.HandleFunc("PUT /api/v1/clubs/{id}/hours", clubs.HandleSetClubHours)
	mux.HandleFunc("GET /api/v1/clubs/{id}/hours", clubs.HandleListClubHours)
	mux.HandleFunc("POST /api/v1/clubs/{id}/courts", clubs.HandleCreateCourt)
	mux.HandleFunc("GET /api/v1/clubs/{id}/courts", clubs.HandleListCourts)

	// Player routes
	mux.HandleFunc("POST /api/v1/players", players.HandleRegisterPlayer)
	mux.HandleFunc("GET /api/v1/players", players.HandleListPlayers)
	mux.HandleFunc("GET /api/v1/players/{id}", players.HandleGetPlayer)
	mux.HandleFunc("PUT /api/v1/players/{id}/status", players.HandleUpdatePlayerStatus)

	// Team routes
	mux.HandleFunc("POST /api/v1/teams", teams.HandleCreateTeam)
	mux.HandleFunc("GET /api/v1/teams", teams.HandleListTeams)
	mux.HandleFunc("GET /api/v1/teams/{id}", teams.HandleGetTeam)

	// League routes
	mux.HandleFunc("POST /api/v1/leagues", apileagues.HandleCreateLeague)
	mux.HandleFunc("GET /api/v1/leagues", apileagues.HandleListLeagues)
	mux.HandleFunc("GET /api/v1/leagues/{id}", apileagues.HandleGetLeague)
	mux.HandleFunc("PUT /api/v1/leagues/{id}/status", apileagues.HandleUpdateLeagueStatus)
	mux.HandleFunc("POST /api/v1/leagues/{id}/divisions", apileagues.HandleCreateDivision)
	mux.HandleFunc("GET /api/v1/leagues/{id}/divisions", apileagues.HandleListDivisions)
	mux.HandleFunc("GET /api/v1/leagues/{id}/matches", matches.HandleListLeagueMatches)

	// Division routes
	mux.HandleFunc("POST /api/v1/divisions/{id}/teams", apileagues.HandleAddDivisionTeam)
	mux.HandleFunc("GET /api/v1/divisions/{id}/teams", apileagues.HandleListDivisionTeams)
	mux.HandleFunc("GET /api/v1/divisions/{id}/standings", apileagues.HandleGetStandings)
	mux.HandleFunc("POST /api/v1/divisions/{id}/schedule/generate", apileagues.HandleGenerateSchedule)
	mux.HandleFunc("POST /api/v1/divisions/{id}/schedule/regenerate", apileagues.HandleRegenerateSchedule)
	mux.HandleFunc("GET /api/v1/divisions/{id}/matches", matches.HandleListDivisionMatches)

	// Match routes
	mux.HandleFunc("GET /api/v1/matches/{id}", matches.HandleGetMatch)
	mux.HandleFunc("PUT /api/v1/matches/{id}/result", matches.HandleRecordResult)
}
