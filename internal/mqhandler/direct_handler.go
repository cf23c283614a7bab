package mqhandler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"classnotify/internal/event"
	"classnotify/internal/service"
)

// DirectHandler dispatches events whose single recipient is embedded in
// the payload (enrollment changes, feedback, corrections, aux teacher
// role changes). No remote audience resolution is involved.
type DirectHandler struct {
	dispatcher dispatcher
	logger     *zap.Logger
}

func NewDirectHandler(d dispatcher, logger *zap.Logger) *DirectHandler {
	return &DirectHandler{
		dispatcher: d,
		logger:     logger,
	}
}

func (h *DirectHandler) Handle(ctx context.Context, ev event.Event) error {
	direct, ok := ev.(event.DirectEvent)
	if !ok {
		return fmt.Errorf("event %s has no fixed recipient", ev.Type())
	}

	log := h.logger.With(
		zap.String("dispatch_id", uuid.NewString()),
		zap.String("event_type", ev.Type()),
		zap.String("recipient", direct.Recipient()),
	)

	report := h.dispatcher.Dispatch(ctx, service.Request{
		Event:      ev,
		Recipients: []string{direct.Recipient()},
	})
	logReport(log, report)
	return nil
}
