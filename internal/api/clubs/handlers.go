// internal/api/clubs/handlers.go
package clubs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/api/apiutil"
	"github.com/padelpointhq/padelpoint/internal/api/authz"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
)

const (
	clubQueryTimeout  = 5 * time.Second
	clubIDPathKey     = "id"
	hoursTimeLayout   = "15:04"
	defaultClubStatus = "active"
	defaultCourtState = "active"
)

var queries *dbgen.Queries
var database *appdb.DB

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	if db == nil {
		return
	}
	database = db
	queries = db.Queries
}

type clubRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
}

type clubView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
	Status   string `json:"status"`
}

type hoursEntry struct {
	DayOfWeek int64  `json:"dayOfWeek"`
	OpensAt   string `json:"opensAt"`
	ClosesAt  string `json:"closesAt"`
}

type hoursRequest struct {
	Hours []hoursEntry `json:"hours"`
}

type courtRequest struct {
	Name string `json:"name"`
}

type courtView struct {
	ID     int64  `json:"id"`
	ClubID int64  `json:"clubId"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// POST /api/v1/clubs
func HandleCreateClub(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	// Creating a tenant is reserved for unscoped admins.
	if !authz.IsAdmin(user) || user.HomeClubID != nil {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req clubRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "Club name is required", http.StatusBadRequest)
		return
	}
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		http.Error(w, "Slug must be lowercase letters, digits, and hyphens", http.StatusBadRequest)
		return
	}
	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		http.Error(w, "Timezone is required", http.StatusBadRequest)
		return
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		http.Error(w, "Unknown timezone", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	if _, err := q.GetClubBySlug(ctx, slug); err == nil {
		http.Error(w, "A club with this slug already exists", http.StatusConflict)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Str("slug", slug).Msg("Failed to check club slug")
		http.Error(w, "Failed to create club", http.StatusInternalServerError)
		return
	}

	club, err := q.CreateClub(ctx, dbgen.CreateClubParams{
		Name:     name,
		Slug:     slug,
		Timezone: timezone,
		Status:   defaultClubStatus,
	})
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Failed to create club")
		http.Error(w, "Failed to create club", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("club_id", club.ID).Str("slug", club.Slug).Msg("Club created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, toClubView(club)); err != nil {
		logger.Error().Err(err).Msg("Failed to write club response")
	}
}

// GET /api/v1/clubs
func HandleListClubs(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	clubs, err := q.ListClubs(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list clubs")
		http.Error(w, "Failed to list clubs", http.StatusInternalServerError)
		return
	}

	views := make([]clubView, len(clubs))
	for i, club := range clubs {
		views[i] = toClubView(club)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"clubs": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write clubs response")
	}
}

// GET /api/v1/clubs/{id}
func HandleGetClub(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := apiutil.PathID(r, clubIDPathKey)
	if err != nil {
		http.Error(w, "Invalid club ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	club, err := q.GetClub(ctx, clubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Club not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to fetch club")
		http.Error(w, "Failed to fetch club", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toClubView(club)); err != nil {
		logger.Error().Err(err).Msg("Failed to write club response")
	}
}

// PUT /api/v1/clubs/{id}/hours
func HandleSetClubHours(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	db := loadDB()
	if q == nil || db == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := apiutil.PathID(r, clubIDPathKey)
	if err != nil {
		http.Error(w, "Invalid club ID", http.StatusBadRequest)
		return
	}

	if !apiutil.RequireClubAccess(w, r, clubID) {
		return
	}

	var req hoursRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Hours) == 0 {
		http.Error(w, "At least one hours entry is required", http.StatusBadRequest)
		return
	}
	if err := validateHours(req.Hours); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	if _, err := q.GetClub(ctx, clubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Club not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to fetch club")
		http.Error(w, "Failed to fetch club", http.StatusInternalServerError)
		return
	}

	var saved []dbgen.ClubHour
	err = db.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries
		for _, entry := range req.Hours {
			hour, err := qtx.UpsertClubHour(ctx, dbgen.UpsertClubHourParams{
				ClubID:    clubID,
				DayOfWeek: entry.DayOfWeek,
				OpensAt:   strings.TrimSpace(entry.OpensAt),
				ClosesAt:  strings.TrimSpace(entry.ClosesAt),
			})
			if err != nil {
				return err
			}
			saved = append(saved, hour)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to save club hours")
		http.Error(w, "Failed to save club hours", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"hours": toHoursEntries(saved)}); err != nil {
		logger.Error().Err(err).Msg("Failed to write hours response")
	}
}

// GET /api/v1/clubs/{id}/hours
func HandleListClubHours(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := apiutil.PathID(r, clubIDPathKey)
	if err != nil {
		http.Error(w, "Invalid club ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	hours, err := q.ListClubHours(ctx, clubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to list club hours")
		http.Error(w, "Failed to list club hours", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"hours": toHoursEntries(hours)}); err != nil {
		logger.Error().Err(err).Msg("Failed to write hours response")
	}
}

// POST /api/v1/clubs/{id}/courts
func HandleCreateCourt(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := apiutil.PathID(r, clubIDPathKey)
	if err != nil {
		http.Error(w, "Invalid club ID", http.StatusBadRequest)
		return
	}

	if !apiutil.RequireClubAccess(w, r, clubID) {
		return
	}

	var req courtRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "Court name is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	if _, err := q.GetClub(ctx, clubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Club not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to fetch club")
		http.Error(w, "Failed to fetch club", http.StatusInternalServerError)
		return
	}

	court, err := q.CreateCourt(ctx, dbgen.CreateCourtParams{
		ClubID: clubID,
		Name:   name,
		Status: defaultCourtState,
	})
	if err != nil {
		if isUniqueConstraintErr(err) {
			http.Error(w, "A court with this name already exists", http.StatusConflict)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to create court")
		http.Error(w, "Failed to create court", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("club_id", clubID).Int64("court_id", court.ID).Msg("Court created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, toCourtView(court)); err != nil {
		logger.Error().Err(err).Msg("Failed to write court response")
	}
}

// GET /api/v1/clubs/{id}/courts
func HandleListCourts(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := apiutil.PathID(r, clubIDPathKey)
	if err != nil {
		http.Error(w, "Invalid club ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), clubQueryTimeout)
	defer cancel()

	courts, err := q.ListCourts(ctx, clubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to list courts")
		http.Error(w, "Failed to list courts", http.StatusInternalServerError)
		return
	}

	views := make([]courtView, len(courts))
	for i, court := range courts {
		views[i] = toCourtView(court)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"courts": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write courts response")
	}
}

func validateHours(entries []hoursEntry) error {
	seen := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
			return fmt.Errorf("dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
		}
		if _, dup := seen[entry.DayOfWeek]; dup {
			return fmt.Errorf("duplicate entry for day %d", entry.DayOfWeek)
		}
		seen[entry.DayOfWeek] = struct{}{}

		opens, err := time.Parse(hoursTimeLayout, strings.TrimSpace(entry.OpensAt))
		if err != nil {
			return fmt.Errorf("opensAt must use the HH:MM 24-hour format")
		}
		closes, err := time.Parse(hoursTimeLayout, strings.TrimSpace(entry.ClosesAt))
		if err != nil {
			return fmt.Errorf("closesAt must use the HH:MM 24-hour format")
		}
		if !opens.Before(closes) {
			return fmt.Errorf("opensAt must be before closesAt")
		}
	}
	return nil
}

func isUniqueConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toClubView(club dbgen.Club) clubView {
	return clubView{
		ID:       club.ID,
		Name:     club.Name,
		Slug:     club.Slug,
		Timezone: club.Timezone,
		Status:   club.Status,
	}
}

func toHoursEntries(hours []dbgen.ClubHour) []hoursEntry {
	entries := make([]hoursEntry, len(hours))
	for i, hour := range hours {
		entries[i] = hoursEntry{
			DayOfWeek: hour.DayOfWeek,
			OpensAt:   hour.OpensAt,
			ClosesAt:  hour.ClosesAt,
		}
	}
	return entries
}

func toCourtView(court dbgen.Court) courtView {
	return courtView{
		ID:     court.ID,
		ClubID: court.ClubID,
		Name:   court.Name,
		Status: court.Status,
	}
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDB() *appdb.DB {
	return database
}
