package mqhandler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"classnotify/internal/event"
	"classnotify/internal/service"
)

// ForumHandler fans forum activity out to the forum participants of the
// course.
type ForumHandler struct {
	audience   audienceResolver
	dispatcher dispatcher
	logger     *zap.Logger
}

func NewForumHandler(audience audienceResolver, d dispatcher, logger *zap.Logger) *ForumHandler {
	return &ForumHandler{
		audience:   audience,
		dispatcher: d,
		logger:     logger,
	}
}

func (h *ForumHandler) Handle(ctx context.Context, ev event.Event) error {
	forum, ok := ev.(*event.ForumActivity)
	if !ok {
		return fmt.Errorf("unexpected event for forum handler: %s", ev.Type())
	}

	log := h.logger.With(
		zap.String("dispatch_id", uuid.NewString()),
		zap.String("event_type", ev.Type()),
		zap.String("course_id", forum.CourseID),
	)

	participants := h.audience.ForumParticipants(ctx, forum.CourseID)
	if len(participants) == 0 {
		log.Warn("No forum participants found for course")
		return nil
	}

	report := h.dispatcher.Dispatch(ctx, service.Request{
		Event:      ev,
		Recipients: participants,
	})
	logReport(log, report)
	return nil
}
