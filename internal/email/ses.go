package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"
)

const (
	awsConfigTimeout = 10 * time.Second

	// Bare sender addresses are wrapped so player inboxes show the
	// league name instead of a raw address.
	senderDisplayName = "PadelPoint Leagues"
)

// SESClient delivers league notifications through AWS SESv2.
type SESClient struct {
	client *sesv2.Client
	from   string
}

// NewSESClient builds an SESv2-backed sender from static credentials.
// sender may be a bare address or an RFC 5322 "Name <address>" form;
// bare addresses get the league display name.
func NewSESClient(accessKeyID, secretAccessKey, region, sender string) (*SESClient, error) {
	if accessKeyID == "" || secretAccessKey == "" || region == "" {
		return nil, fmt.Errorf("ses credentials and region are required")
	}
	sender = strings.TrimSpace(sender)
	if sender == "" {
		return nil, fmt.Errorf("ses sender is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), awsConfigTimeout)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SESClient{
		client: sesv2.NewFromConfig(awsCfg),
		from:   formatSender(sender),
	}, nil
}

func formatSender(sender string) string {
	if strings.Contains(sender, "<") {
		return sender
	}
	return fmt.Sprintf("%s <%s>", senderDisplayName, sender)
}

// Send delivers one plain-text notification to a single player.
func (c *SESClient) Send(ctx context.Context, recipient, subject, body string) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("ses client is not initialized")
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return fmt.Errorf("recipient is required")
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
		FromEmailAddress: aws.String(c.from),
	}

	if _, err := c.client.SendEmail(ctx, input); err != nil {
		log.Error().
			Err(err).
			Str("recipient", recipient).
			Str("subject", subject).
			Msg("Failed to send league email")
		return fmt.Errorf("send league email: %w", err)
	}

	return nil
}
