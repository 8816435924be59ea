package clubs

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/padelpointhq/padelpoint/internal/api/authz"
	"github.com/padelpointhq/padelpoint/internal/testutil"
)

func setupClubsTest(t *testing.T) {
	t.Helper()

	db := testutil.NewTestDB(t)
	InitHandlers(db)

	t.Cleanup(func() {
		queries = nil
		database = nil
	})
}

func withAdmin(req *http.Request) *http.Request {
	user := &authz.AuthUser{ID: 1, IsAdmin: true}
	return req.WithContext(authz.ContextWithUser(req.Context(), user))
}

func createTestClub(t *testing.T, slug string) int64 {
	t.Helper()

	payload := fmt.Sprintf(`{"name":"Club %s","slug":%q,"timezone":"Europe/Madrid"}`, slug, slug)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = withAdmin(req)
	recorder := httptest.NewRecorder()

	HandleCreateClub(recorder, req)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create club status: %d body: %s", recorder.Code, recorder.Body.String())
	}

	var created clubView
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode club: %v", err)
	}
	return created.ID
}

func TestHandleCreateClub(t *testing.T) {
	setupClubsTest(t)

	clubID := createTestClub(t, "padel-nord")
	if clubID <= 0 {
		t.Fatalf("expected positive club id, got %d", clubID)
	}

	// Duplicate slug is rejected
	payload := `{"name":"Another","slug":"padel-nord","timezone":"Europe/Madrid"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = withAdmin(req)
	recorder := httptest.NewRecorder()

	HandleCreateClub(recorder, req)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("duplicate slug status: %d", recorder.Code)
	}
}

func TestHandleCreateClub_Unauthorized(t *testing.T) {
	setupClubsTest(t)

	payload := `{"name":"Club","slug":"club","timezone":"UTC"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	HandleCreateClub(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d", recorder.Code)
	}
}

func TestHandleCreateClub_ScopedAdminForbidden(t *testing.T) {
	setupClubsTest(t)

	home := int64(1)
	payload := `{"name":"Club","slug":"club","timezone":"UTC"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(authz.ContextWithUser(req.Context(), &authz.AuthUser{ID: 1, IsAdmin: true, HomeClubID: &home}))
	recorder := httptest.NewRecorder()

	HandleCreateClub(recorder, req)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status: %d", recorder.Code)
	}
}

func TestHandleCreateClub_Validation(t *testing.T) {
	setupClubsTest(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"missing name", `{"slug":"club","timezone":"UTC"}`},
		{"bad slug", `{"name":"Club","slug":"Not A Slug","timezone":"UTC"}`},
		{"bad timezone", `{"name":"Club","slug":"club","timezone":"Mars/Olympus"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			req = withAdmin(req)
			recorder := httptest.NewRecorder()

			HandleCreateClub(recorder, req)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestHandleSetClubHours(t *testing.T) {
	setupClubsTest(t)
	clubID := createTestClub(t, "hours-club")

	payload := `{"hours":[{"dayOfWeek":1,"opensAt":"09:00","closesAt":"21:00"},{"dayOfWeek":2,"opensAt":"10:00","closesAt":"22:00"}]}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/clubs/%d/hours", clubID), strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprintf("%d", clubID))
	req = withAdmin(req)
	recorder := httptest.NewRecorder()

	HandleSetClubHours(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("set hours status: %d body: %s", recorder.Code, recorder.Body.String())
	}

	// Upsert replaces rather than duplicates
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/clubs/%d/hours", clubID), strings.NewReader(`{"hours":[{"dayOfWeek":1,"opensAt":"08:00","closesAt":"20:00"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprintf("%d", clubID))
	req = withAdmin(req)
	recorder = httptest.NewRecorder()

	HandleSetClubHours(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("second set hours status: %d", recorder.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/clubs/%d/hours", clubID), nil)
	listReq.SetPathValue("id", fmt.Sprintf("%d", clubID))
	listRecorder := httptest.NewRecorder()

	HandleListClubHours(listRecorder, listReq)
	if listRecorder.Code != http.StatusOK {
		t.Fatalf("list hours status: %d", listRecorder.Code)
	}

	var body struct {
		Hours []hoursEntry `json:"hours"`
	}
	if err := json.Unmarshal(listRecorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode hours: %v", err)
	}
	if len(body.Hours) != 2 {
		t.Fatalf("expected 2 hour entries, got %d", len(body.Hours))
	}
	for _, entry := range body.Hours {
		if entry.DayOfWeek == 1 && entry.OpensAt != "08:00" {
			t.Fatalf("expected Monday hours updated, got opensAt %q", entry.OpensAt)
		}
	}
}

func TestHandleSetClubHours_Validation(t *testing.T) {
	setupClubsTest(t)
	clubID := createTestClub(t, "bad-hours-club")

	tests := []struct {
		name    string
		payload string
	}{
		{"day out of range", `{"hours":[{"dayOfWeek":7,"opensAt":"09:00","closesAt":"21:00"}]}`},
		{"bad time format", `{"hours":[{"dayOfWeek":1,"opensAt":"9am","closesAt":"21:00"}]}`},
		{"closes before opens", `{"hours":[{"dayOfWeek":1,"opensAt":"21:00","closesAt":"09:00"}]}`},
		{"duplicate day", `{"hours":[{"dayOfWeek":1,"opensAt":"09:00","closesAt":"12:00"},{"dayOfWeek":1,"opensAt":"13:00","closesAt":"21:00"}]}`},
		{"empty list", `{"hours":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/clubs/%d/hours", clubID), strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", fmt.Sprintf("%d", clubID))
			req = withAdmin(req)
			recorder := httptest.NewRecorder()

			HandleSetClubHours(recorder, req)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestHandleCreateCourt(t *testing.T) {
	setupClubsTest(t)
	clubID := createTestClub(t, "court-club")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/clubs/%d/courts", clubID), strings.NewReader(`{"name":"Court 1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprintf("%d", clubID))
	req = withAdmin(req)
	recorder := httptest.NewRecorder()

	HandleCreateCourt(recorder, req)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create court status: %d body: %s", recorder.Code, recorder.Body.String())
	}

	// Same name in the same club is rejected
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/clubs/%d/courts", clubID), strings.NewReader(`{"name":"Court 1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprintf("%d", clubID))
	req = withAdmin(req)
	recorder = httptest.NewRecorder()

	HandleCreateCourt(recorder, req)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("duplicate court status: %d", recorder.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/clubs/%d/courts", clubID), nil)
	listReq.SetPathValue("id", fmt.Sprintf("%d", clubID))
	listRecorder := httptest.NewRecorder()

	HandleListCourts(listRecorder, listReq)
	if listRecorder.Code != http.StatusOK {
		t.Fatalf("list courts status: %d", listRecorder.Code)
	}

	var body struct {
		Courts []courtView `json:"courts"`
	}
	if err := json.Unmarshal(listRecorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode courts: %v", err)
	}
	if len(body.Courts) != 1 {
		t.Fatalf("expected 1 court, got %d", len(body.Courts))
	}
}

func TestHandleGetClub_NotFound(t *testing.T) {
	setupClubsTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clubs/999", nil)
	req.SetPathValue("id", "999")
	recorder := httptest.NewRecorder()

	HandleGetClub(recorder, req)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: %d", recorder.Code)
	}
}
