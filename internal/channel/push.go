package channel

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"classnotify/internal/event"
)

// TokenSource lists and revokes a user's device tokens.
type TokenSource interface {
	GetUserTokens(ctx context.Context, userID string) ([]string, error)
	DeleteToken(ctx context.Context, token string) error
}

// PushSender is the outbound push transport. It reports ErrInvalidToken
// distinctly from transient failures.
type PushSender interface {
	Send(ctx context.Context, token, title, body string) error
}

// PushChannel delivers the event's push rendering to every device of one
// recipient. Tokens are attempted independently; a dead token is revoked
// and never aborts the remaining ones.
type PushChannel struct {
	tokens TokenSource
	sender PushSender
	logger *zap.Logger
}

func NewPushChannel(tokens TokenSource, sender PushSender, logger *zap.Logger) *PushChannel {
	return &PushChannel{
		tokens: tokens,
		sender: sender,
		logger: logger,
	}
}

func (c *PushChannel) Deliver(ctx context.Context, userID string, ev event.Event) Outcome {
	tokens, err := c.tokens.GetUserTokens(ctx, userID)
	if err != nil {
		c.logger.Warn("Could not list user tokens",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return OutcomeSkipped
	}
	if len(tokens) == 0 {
		c.logger.Info("No FCM tokens found for user, skipping push",
			zap.String("user_id", userID),
		)
		return OutcomeSkipped
	}

	title, body := ev.PushContent()

	sent := 0
	for _, token := range tokens {
		err := c.sender.Send(ctx, token, title, body)
		if err == nil {
			sent++
			continue
		}

		if errors.Is(err, ErrInvalidToken) {
			c.logger.Warn("Invalid or expired token, revoking",
				zap.String("user_id", userID),
			)
			if delErr := c.tokens.DeleteToken(ctx, token); delErr != nil {
				c.logger.Error("Failed to delete invalid token", zap.Error(delErr))
			}
			continue
		}

		c.logger.Error("Failed to send push notification",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	if sent == 0 {
		return OutcomeFailed
	}

	c.logger.Info("Push notifications sent",
		zap.String("user_id", userID),
		zap.Int("devices", sent),
	)
	return OutcomeSent
}
