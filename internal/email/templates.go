package email

import (
	"fmt"
	"strings"
	"time"
)

type Message struct {
	Subject string
	Body    string
}

type WelcomeDetails struct {
	ClubName  string
	FirstName string
}

type SchedulePublishedDetails struct {
	ClubName     string
	LeagueName   string
	DivisionName string
	MatchCount   int
	FirstMatch   string
}

type MatchReminderDetails struct {
	ClubName  string
	FirstName string
	HomeTeam  string
	AwayTeam  string
	Court     string
	Date      string
	TimeRange string
}

func FormatDateTimeRange(start, end time.Time) (string, string) {
	date := start.Format("Monday, Jan 2, 2006")
	timeRange := fmt.Sprintf("%s - %s %s", start.Format("3:04 PM"), end.Format("3:04 PM"), start.Format("MST"))
	return date, timeRange
}

func BuildRegistrationWelcome(details WelcomeDetails) Message {
	clubName := strings.TrimSpace(details.ClubName)
	if clubName == "" {
		clubName = "your club"
	}
	firstName := strings.TrimSpace(details.FirstName)
	greeting := "Hi,"
	if firstName != "" {
		greeting = fmt.Sprintf("Hi %s,", firstName)
	}

	lines := []string{
		greeting,
		"",
		fmt.Sprintf("Your player registration at %s is confirmed.", clubName),
		"You can now be added to a team and join league play.",
		"",
		"See you on court!",
	}

	return Message{
		Subject: fmt.Sprintf("Welcome to %s", clubName),
		Body:    strings.Join(lines, "\n"),
	}
}

func BuildSchedulePublished(details SchedulePublishedDetails) Message {
	clubName := strings.TrimSpace(details.ClubName)
	if clubName == "" {
		clubName = "your club"
	}
	leagueName := strings.TrimSpace(details.LeagueName)
	if leagueName == "" {
		leagueName = "your league"
	}
	divisionName := strings.TrimSpace(details.DivisionName)
	firstMatch := strings.TrimSpace(details.FirstMatch)
	if firstMatch == "" {
		firstMatch = "TBD"
	}

	subject := fmt.Sprintf("Schedule Published - %s", leagueName)

	lines := []string{
		fmt.Sprintf("The schedule for %s is out.", leagueName),
		"",
		fmt.Sprintf("Club: %s", clubName),
	}
	if divisionName != "" {
		lines = append(lines, fmt.Sprintf("Division: %s", divisionName))
	}
	lines = append(lines,
		fmt.Sprintf("Matches: %d", details.MatchCount),
		fmt.Sprintf("First match: %s", firstMatch),
	)

	return Message{
		Subject: subject,
		Body:    strings.Join(lines, "\n"),
	}
}

func BuildMatchReminder(details MatchReminderDetails) Message {
	clubName := strings.TrimSpace(details.ClubName)
	if clubName == "" {
		clubName = "your club"
	}
	court := strings.TrimSpace(details.Court)
	if court == "" {
		court = "TBD"
	}
	date := strings.TrimSpace(details.Date)
	if date == "" {
		date = "TBD"
	}
	timeRange := strings.TrimSpace(details.TimeRange)
	if timeRange == "" {
		timeRange = "TBD"
	}
	firstName := strings.TrimSpace(details.FirstName)
	greeting := "Hi,"
	if firstName != "" {
		greeting = fmt.Sprintf("Hi %s,", firstName)
	}

	lines := []string{
		greeting,
		"",
		"Reminder: your league match is coming up.",
		"",
		fmt.Sprintf("Club: %s", clubName),
		fmt.Sprintf("Match: %s vs %s", strings.TrimSpace(details.HomeTeam), strings.TrimSpace(details.AwayTeam)),
		fmt.Sprintf("Court: %s", court),
		fmt.Sprintf("Date: %s", date),
		fmt.Sprintf("Time: %s", timeRange),
	}

	return Message{
		Subject: fmt.Sprintf("Upcoming Match Reminder - %s", clubName),
		Body:    strings.Join(lines, "\n"),
	}
}
