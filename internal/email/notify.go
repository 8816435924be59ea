package email

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const sendTimeout = 5 * time.Second

// detachedContext drops the parent's cancellation so an early HTTP
// response doesn't abort an in-flight send, while keeping its values
// for request-scoped logging.
func detachedContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}

// SendAsync delivers a message in the background. The handler-scoped
// context is detached so an early response doesn't abort the send.
func SendAsync(ctx context.Context, sender EmailSender, recipient string, message Message, logger *zerolog.Logger) {
	if sender == nil {
		return
	}
	if message.Subject == "" || message.Body == "" {
		return
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return
	}

	go func() {
		sendCtx, cancel := detachedContext(ctx, sendTimeout)
		defer cancel()
		if err := sender.Send(sendCtx, recipient, message.Subject, message.Body); err != nil {
			if logger != nil {
				logger.Error().Err(err).Str("subject", message.Subject).Msg("Failed to send email")
			}
			return
		}
		if logger != nil {
			logger.Info().Str("subject", message.Subject).Msg("Email sent")
		}
	}()
}
