package channel

import (
	"context"

	"go.uber.org/zap"

	"classnotify/internal/event"
)

// AddressSource resolves a user id to an email address.
type AddressSource interface {
	GetUserEmail(ctx context.Context, userID string) (string, error)
}

// EmailSender is the outbound email transport.
type EmailSender interface {
	Send(to, subject, body string) error
}

// EmailChannel delivers the event's rendered email to one recipient.
type EmailChannel struct {
	addrs  AddressSource
	sender EmailSender
	logger *zap.Logger
}

func NewEmailChannel(addrs AddressSource, sender EmailSender, logger *zap.Logger) *EmailChannel {
	return &EmailChannel{
		addrs:  addrs,
		sender: sender,
		logger: logger,
	}
}

func (c *EmailChannel) Deliver(ctx context.Context, userID string, ev event.Event) Outcome {
	address, err := c.addrs.GetUserEmail(ctx, userID)
	if err != nil {
		c.logger.Warn("Could not resolve user email",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return OutcomeSkipped
	}
	if address == "" {
		c.logger.Info("User has no email address, skipping email",
			zap.String("user_id", userID),
		)
		return OutcomeSkipped
	}

	subject, body := ev.EmailContent()
	if err := c.sender.Send(address, subject, body); err != nil {
		c.logger.Error("Failed to send email",
			zap.String("user_id", userID),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return OutcomeFailed
	}

	c.logger.Info("Email sent",
		zap.String("user_id", userID),
		zap.String("subject", subject),
	)
	return OutcomeSent
}
