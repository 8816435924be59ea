package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/padelpointhq/padelpoint/internal/db"
	dbgen "github.com/padelpointhq/padelpoint/internal/db/generated"
	"github.com/padelpointhq/padelpoint/internal/email"
)

const (
	defaultReminderHoursBefore = 24
	reminderJobWindow          = 15 * time.Minute
)

// RegisterReminderJobs registers the scheduled match reminder task. The
// job runs every 15 minutes and mails every player whose match starts
// hoursBefore from now, give or take one job window.
func RegisterReminderJobs(database *db.DB, sender email.EmailSender, hoursBefore int) error {
	if database == nil {
		return fmt.Errorf("reminder jobs require database")
	}
	if hoursBefore <= 0 {
		hoursBefore = defaultReminderHoursBefore
	}

	jobName := "match_reminders"
	cronExpr := "*/15 * * * *"
	jobLogger := log.With().
		Str("component", "match_reminders_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if sender == nil {
			jobLogger.Debug().Msg("Reminder job skipped: email sender not configured")
			return
		}

		now := time.Now().UTC()
		windowStart := now.Add(time.Duration(hoursBefore) * time.Hour)
		windowEnd := windowStart.Add(reminderJobWindow)

		recipients, err := database.Queries.ListMatchReminderRecipients(ctx, dbgen.ListMatchReminderRecipientsParams{
			StartTime: windowStart,
			EndTime:   windowEnd,
		})
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load reminder recipients")
			return
		}
		if len(recipients) == 0 {
			return
		}

		for _, recipient := range recipients {
			if err := sendMatchReminder(ctx, sender, recipient, &jobLogger); err != nil {
				jobLogger.Error().Err(err).Int64("match_id", recipient.MatchID).Msg("Failed to send match reminder")
			}
		}
	})
	if err != nil {
		return fmt.Errorf("add match reminder job: %w", err)
	}

	jobLogger.Info().Msg("Match reminder job registered")
	return nil
}

func sendMatchReminder(ctx context.Context, sender email.EmailSender, recipient dbgen.ListMatchReminderRecipientsRow, logger *zerolog.Logger) error {
	if !recipient.ScheduledAt.Valid {
		return nil
	}

	clubLoc := time.Local
	if recipient.ClubTimezone != "" {
		loadedLoc, err := time.LoadLocation(recipient.ClubTimezone)
		if err != nil {
			logger.Error().Err(err).Str("timezone", recipient.ClubTimezone).Msg("Failed to load club timezone for reminders")
		} else {
			clubLoc = loadedLoc
		}
	}

	start := recipient.ScheduledAt.Time.In(clubLoc)
	end := start
	if recipient.EndsAt.Valid {
		end = recipient.EndsAt.Time.In(clubLoc)
	}
	date, timeRange := email.FormatDateTimeRange(start, end)

	message := email.BuildMatchReminder(email.MatchReminderDetails{
		ClubName:  recipient.ClubName,
		FirstName: recipient.PlayerFirstName,
		HomeTeam:  recipient.HomeTeamName,
		AwayTeam:  recipient.AwayTeamName,
		Court:     recipient.CourtName.String,
		Date:      date,
		TimeRange: timeRange,
	})

	if err := sender.Send(ctx, recipient.PlayerEmail, message.Subject, message.Body); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	logger.Info().Int64("match_id", recipient.MatchID).Msg("Match reminder sent")
	return nil
}
