package email

import "context"

// EmailSender delivers one league notification (registration welcome,
// schedule publication, match reminder) to a single player address.
// Implementations must be safe for concurrent use: SendAsync and the
// reminder job both call Send from their own goroutines.
type EmailSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
