package email

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDateTimeRange(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	start := time.Date(2025, 3, 3, 18, 30, 0, 0, loc)
	end := start.Add(90 * time.Minute)

	date, timeRange := FormatDateTimeRange(start, end)
	if date != "Monday, Mar 3, 2025" {
		t.Errorf("unexpected date: %q", date)
	}
	if timeRange != "6:30 PM - 8:00 PM CET" {
		t.Errorf("unexpected time range: %q", timeRange)
	}
}

func TestBuildRegistrationWelcome(t *testing.T) {
	msg := BuildRegistrationWelcome(WelcomeDetails{ClubName: "Padel Nord", FirstName: "Ines"})
	if msg.Subject != "Welcome to Padel Nord" {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Hi Ines,") {
		t.Errorf("body missing greeting: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "Padel Nord") {
		t.Errorf("body missing club name: %q", msg.Body)
	}
}

func TestBuildRegistrationWelcomeDefaults(t *testing.T) {
	msg := BuildRegistrationWelcome(WelcomeDetails{})
	if msg.Subject != "Welcome to your club" {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Hi,") {
		t.Errorf("body missing fallback greeting: %q", msg.Body)
	}
}

func TestBuildMatchReminder(t *testing.T) {
	msg := BuildMatchReminder(MatchReminderDetails{
		ClubName:  "Padel Nord",
		FirstName: "Marco",
		HomeTeam:  "Aces",
		AwayTeam:  "Bandits",
		Court:     "Court 2",
		Date:      "Monday, Mar 3, 2025",
		TimeRange: "6:30 PM - 8:00 PM CET",
	})
	if msg.Subject != "Upcoming Match Reminder - Padel Nord" {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	for _, want := range []string{"Aces vs Bandits", "Court 2", "Monday, Mar 3, 2025"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q: %q", want, msg.Body)
		}
	}
}

func TestBuildMatchReminderDefaults(t *testing.T) {
	msg := BuildMatchReminder(MatchReminderDetails{HomeTeam: "Aces", AwayTeam: "Bandits"})
	for _, want := range []string{"Court: TBD", "Date: TBD", "Time: TBD"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q: %q", want, msg.Body)
		}
	}
}

func TestBuildSchedulePublished(t *testing.T) {
	msg := BuildSchedulePublished(SchedulePublishedDetails{
		ClubName:     "Padel Nord",
		LeagueName:   "Spring League",
		DivisionName: "Division A",
		MatchCount:   6,
		FirstMatch:   "Monday, Mar 3, 2025",
	})
	if msg.Subject != "Schedule Published - Spring League" {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	for _, want := range []string{"Division: Division A", "Matches: 6", "First match: Monday, Mar 3, 2025"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q: %q", want, msg.Body)
		}
	}
}
