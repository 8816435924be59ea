// internal/api/players/handlers.go
package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/api/apiutil"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
	"github.com/padelpointhq/padelpoint/internal/email"
	"github.com/padelpointhq/padelpoint/internal/ratelimit"
)

const (
	playerQueryTimeout  = 5 * time.Second
	playerIDPathKey     = "id"
	defaultPlayerStatus = "active"
	// Used when the submitted phone number carries no country prefix.
	defaultPhoneRegion = "ES"
)

var playerStatuses = map[string]struct{}{
	"active":   {},
	"inactive": {},
}

var (
	queries     *dbgen.Queries
	limiter     *ratelimit.Limiter
	emailSender email.EmailSender
	trustProxy  bool
)

// InitHandlers must be called during server startup before handling requests.
// The limiter and sender may be nil; registration then runs unthrottled and
// without welcome emails.
func InitHandlers(db *appdb.DB, registerLimiter *ratelimit.Limiter, sender email.EmailSender, proxyTrusted bool) {
	if db == nil {
		return
	}
	queries = db.Queries
	limiter = registerLimiter
	emailSender = sender
	trustProxy = proxyTrusted
}

type registerRequest struct {
	ClubID    *int64 `json:"clubId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type playerView struct {
	ID        int64  `json:"id"`
	ClubID    int64  `json:"clubId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status"`
}

// POST /api/v1/players
func HandleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req registerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	clubID, err := apiutil.ClubIDFromRequest(r, req.ClubID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		http.Error(w, "First and last name are required", http.StatusBadRequest)
		return
	}

	emailAddr, err := normalizeEmail(req.Email)
	if err != nil {
		http.Error(w, "A valid email address is required", http.StatusBadRequest)
		return
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clientIP := ratelimit.GetClientIP(r, trustProxy)
	if limiter != nil {
		result := limiter.CheckRegister(emailAddr, clientIP)
		if !result.Allowed {
			ratelimit.LogRateLimitExceeded(emailAddr, clientIP, result.Reason)
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			http.Error(w, "Too many registration attempts, try again later", http.StatusTooManyRequests)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	club, err := q.GetClub(ctx, clubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Club not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to fetch club")
		http.Error(w, "Failed to register player", http.StatusInternalServerError)
		return
	}

	if limiter != nil {
		limiter.RecordRegister(emailAddr, clientIP)
	}

	if _, err := q.GetPlayerByEmail(ctx, dbgen.GetPlayerByEmailParams{ClubID: clubID, Email: emailAddr}); err == nil {
		http.Error(w, "A player with this email is already registered", http.StatusConflict)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to check existing registration")
		http.Error(w, "Failed to register player", http.StatusInternalServerError)
		return
	}

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{
		ClubID:    clubID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     emailAddr,
		Phone:     apiutil.ToNullString(phone),
		Status:    defaultPlayerStatus,
	})
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to create player")
		http.Error(w, "Failed to register player", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Int64("club_id", clubID).
		Int64("player_id", player.ID).
		Str("email", ratelimit.SanitizeEmail(player.Email)).
		Msg("Player registered")

	message := email.BuildRegistrationWelcome(email.WelcomeDetails{
		ClubName:  club.Name,
		FirstName: player.FirstName,
	})
	email.SendAsync(r.Context(), emailSender, player.Email, message, logger)

	if err := apiutil.WriteJSON(w, http.StatusCreated, toPlayerView(player)); err != nil {
		logger.Error().Err(err).Msg("Failed to write player response")
	}
}

// GET /api/v1/players?club_id=
func HandleListPlayers(w http.ResponseWriter, r *http.Request) {
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

	if !apiutil.RequireClubAccess(w, r, clubID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	players, err := q.ListPlayersByClub(ctx, clubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", clubID).Msg("Failed to list players")
		http.Error(w, "Failed to list players", http.StatusInternalServerError)
		return
	}

	views := make([]playerView, len(players))
	for i, player := range players {
		views[i] = toPlayerView(player)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"players": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write players response")
	}
}

// GET /api/v1/players/{id}
func HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := apiutil.PathID(r, playerIDPathKey)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	player, err := q.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to fetch player")
		http.Error(w, "Failed to fetch player", http.StatusInternalServerError)
		return
	}

	if !apiutil.RequireClubAccess(w, r, player.ClubID) {
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toPlayerView(player)); err != nil {
		logger.Error().Err(err).Msg("Failed to write player response")
	}
}

// PUT /api/v1/players/{id}/status
func HandleUpdatePlayerStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := apiutil.PathID(r, playerIDPathKey)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if _, ok := playerStatuses[status]; !ok {
		http.Error(w, "Status must be active or inactive", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), playerQueryTimeout)
	defer cancel()

	player, err := q.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to fetch player")
		http.Error(w, "Failed to update player", http.StatusInternalServerError)
		return
	}

	if !apiutil.RequireClubAccess(w, r, player.ClubID) {
		return
	}

	updated, err := q.UpdatePlayerStatus(ctx, dbgen.UpdatePlayerStatusParams{
		Status: status,
		ID:     playerID,
	})
	if err != nil {
		logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to update player status")
		http.Error(w, "Failed to update player", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("player_id", playerID).Str("status", status).Msg("Player status updated")
	if err := apiutil.WriteJSON(w, http.StatusOK, toPlayerView(updated)); err != nil {
		logger.Error().Err(err).Msg("Failed to write player response")
	}
}

func normalizeEmail(raw string) (string, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", fmt.Errorf("email is required")
	}
	parsed, err := mail.ParseAddress(raw)
	if err != nil {
		return "", err
	}
	// Reject display-name forms like "Alice <alice@example.com>"
	if parsed.Address != raw {
		return "", fmt.Errorf("email must be a bare address")
	}
	return parsed.Address, nil
}

// normalizePhone validates an optional phone number and stores it in
// E.164 form. Numbers without a country prefix are interpreted in the
// default region.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("phone number could not be parsed")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("phone number is not valid")
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func toPlayerView(player dbgen.Player) playerView {
	return playerView{
		ID:        player.ID,
		ClubID:    player.ClubID,
		FirstName: player.FirstName,
		LastName:  player.LastName,
		Email:     player.Email,
		Phone:     player.Phone.String,
		Status:    player.Status,
	}
}

func loadQueries() *dbgen.Queries {
	return queries
}
