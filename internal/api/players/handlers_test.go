package players

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/padelpointhq/padelpoint/internal/api/authz"
	appdb "github.com/padelpointhq/padelpoint/internal/db"
	"github.com/padelpointhq/padelpoint/internal/ratelimit"
	"github.com/padelpointhq/padelpoint/internal/testutil"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setupPlayersTest(t *testing.T, registerLimiter *ratelimit.Limiter) (*appdb.DB, int64) {
	t.Helper()

	database := testutil.NewTestDB(t)

	result, err := database.ExecContext(context.Background(),
		"INSERT INTO clubs (name, slug, timezone, status) VALUES (?, ?, ?, ?)",
		"Padel Nord", "padel-nord", "Europe/Madrid", "active",
	)
	if err != nil {
		t.Fatalf("insert club: %v", err)
	}
	clubID, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("club id: %v", err)
	}

	InitHandlers(database, registerLimiter, nil, false)

	t.Cleanup(func() {
		queries = nil
		limiter = nil
		emailSender = nil
	})

	return database, clubID
}

func registerPayload(clubID int64, email string) string {
	return fmt.Sprintf(`{"clubId":%d,"firstName":"Ines","lastName":"Vidal","email":%q,"phone":"+34612345678"}`, clubID, email)
}

func postRegistration(payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.10:54321"
	recorder := httptest.NewRecorder()

	HandleRegisterPlayer(recorder, req)
	return recorder
}

func TestHandleRegisterPlayer(t *testing.T) {
	_, clubID := setupPlayersTest(t, nil)

	recorder := postRegistration(registerPayload(clubID, "ines@example.com"))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
	}

	var created playerView
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if created.ClubID != clubID {
		t.Fatalf("club id: %d", created.ClubID)
	}
	if created.Status != "active" {
		t.Fatalf("status: %q", created.Status)
	}
	if created.Phone != "+34612345678" {
		t.Fatalf("phone not normalized: %q", created.Phone)
	}
}

func TestHandleRegisterPlayer_DuplicateEmail(t *testing.T) {
	_, clubID := setupPlayersTest(t, nil)

	if code := postRegistration(registerPayload(clubID, "dup@example.com")).Code; code != http.StatusCreated {
		t.Fatalf("first registration status: %d", code)
	}
	if code := postRegistration(registerPayload(clubID, "dup@example.com")).Code; code != http.StatusConflict {
		t.Fatalf("second registration status: %d", code)
	}
	// Email matching is case-insensitive
	if code := postRegistration(registerPayload(clubID, "DUP@example.com")).Code; code != http.StatusConflict {
		t.Fatalf("case variant registration status: %d", code)
	}
}

func TestHandleRegisterPlayer_Validation(t *testing.T) {
	_, clubID := setupPlayersTest(t, nil)

	tests := []struct {
		name    string
		payload string
		status  int
	}{
		{
			"invalid email",
			fmt.Sprintf(`{"clubId":%d,"firstName":"A","lastName":"B","email":"not-an-email"}`, clubID),
			http.StatusBadRequest,
		},
		{
			"invalid phone",
			fmt.Sprintf(`{"clubId":%d,"firstName":"A","lastName":"B","email":"a@example.com","phone":"12"}`, clubID),
			http.StatusBadRequest,
		},
		{
			"missing name",
			fmt.Sprintf(`{"clubId":%d,"lastName":"B","email":"a@example.com"}`, clubID),
			http.StatusBadRequest,
		},
		{
			"unknown club",
			`{"clubId":999,"firstName":"A","lastName":"B","email":"a@example.com"}`,
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if recorder := postRegistration(tt.payload); recorder.Code != tt.status {
				t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestHandleRegisterPlayer_RateLimited(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	registerLimiter := ratelimit.New(&ratelimit.Config{
		RegisterCooldown:     60 * time.Second,
		RegisterMaxPerHour:   5,
		RegisterMaxIPPerHour: 20,
		Clock:                clock,
	})
	t.Cleanup(registerLimiter.Close)

	_, clubID := setupPlayersTest(t, registerLimiter)

	if code := postRegistration(registerPayload(clubID, "limited@example.com")).Code; code != http.StatusCreated {
		t.Fatalf("first registration status: %d", code)
	}

	clock.Advance(10 * time.Second)
	recorder := postRegistration(registerPayload(clubID, "limited@example.com"))
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("throttled registration status: %d", recorder.Code)
	}
	if recorder.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	// A different email on the same IP is unaffected by the cooldown
	clock.Advance(1 * time.Second)
	if code := postRegistration(registerPayload(clubID, "other@example.com")).Code; code != http.StatusCreated {
		t.Fatalf("unrelated registration status: %d", code)
	}
}

func TestHandleListPlayers_RequiresAdmin(t *testing.T) {
	_, clubID := setupPlayersTest(t, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/players?club_id=%d", clubID), nil)
	recorder := httptest.NewRecorder()

	HandleListPlayers(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d", recorder.Code)
	}
}

func TestHandleListPlayers(t *testing.T) {
	_, clubID := setupPlayersTest(t, nil)

	if code := postRegistration(registerPayload(clubID, "list@example.com")).Code; code != http.StatusCreated {
		t.Fatalf("registration status: %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/players?club_id=%d", clubID), nil)
	req = req.WithContext(authz.ContextWithUser(req.Context(), &authz.AuthUser{ID: 1, IsAdmin: true}))
	recorder := httptest.NewRecorder()

	HandleListPlayers(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		Players []playerView `json:"players"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode players: %v", err)
	}
	if len(body.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(body.Players))
	}
}

func TestHandleUpdatePlayerStatus(t *testing.T) {
	_, clubID := setupPlayersTest(t, nil)

	recorder := postRegistration(registerPayload(clubID, "status@example.com"))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("registration status: %d", recorder.Code)
	}
	var created playerView
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode player: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/players/%d/status", created.ID), strings.NewReader(`{"status":"inactive"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprintf("%d", created.ID))
	req = req.WithContext(authz.ContextWithUser(req.Context(), &authz.AuthUser{ID: 1, IsAdmin: true}))
	updateRecorder := httptest.NewRecorder()

	HandleUpdatePlayerStatus(updateRecorder, req)
	if updateRecorder.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", updateRecorder.Code, updateRecorder.Body.String())
	}

	var updated playerView
	if err := json.Unmarshal(updateRecorder.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if updated.Status != "inactive" {
		t.Fatalf("expected inactive, got %q", updated.Status)
	}

	// Invalid status values are rejected
	badReq := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/players/%d/status", created.ID), strings.NewReader(`{"status":"banned"}`))
	badReq.Header.Set("Content-Type", "application/json")
	badReq.SetPathValue("id", fmt.Sprintf("%d", created.ID))
	badReq = badReq.WithContext(authz.ContextWithUser(badReq.Context(), &authz.AuthUser{ID: 1, IsAdmin: true}))
	badRecorder := httptest.NewRecorder()

	HandleUpdatePlayerStatus(badRecorder, badReq)
	if badRecorder.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", badRecorder.Code)
	}
}
