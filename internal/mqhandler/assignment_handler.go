package mqhandler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"classnotify/internal/event"
	"classnotify/internal/service"
)

type audienceResolver interface {
	CourseRoster(ctx context.Context, courseID string) []string
	ForumParticipants(ctx context.Context, courseID string) []string
	HasSubmitted(ctx context.Context, assignmentID, studentID string) bool
}

type dispatcher interface {
	Dispatch(ctx context.Context, req service.Request) service.Report
}

// AssignmentHandler fans assignment events out to the course roster.
// Reminders additionally suppress students that already submitted.
type AssignmentHandler struct {
	audience   audienceResolver
	dispatcher dispatcher
	logger     *zap.Logger
}

func NewAssignmentHandler(audience audienceResolver, d dispatcher, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		audience:   audience,
		dispatcher: d,
		logger:     logger,
	}
}

func (h *AssignmentHandler) Handle(ctx context.Context, ev event.Event) error {
	var (
		courseID     string
		assignmentID string
		reminder     bool
	)
	switch e := ev.(type) {
	case *event.AssignmentCreated:
		courseID = e.CourseID
	case *event.AssignmentReminder:
		courseID = e.CourseID
		assignmentID = e.AssignmentID
		reminder = true
	default:
		return fmt.Errorf("unexpected event for assignment handler: %s", ev.Type())
	}

	log := h.logger.With(
		zap.String("dispatch_id", uuid.NewString()),
		zap.String("event_type", ev.Type()),
		zap.String("course_id", courseID),
	)

	recipients := h.audience.CourseRoster(ctx, courseID)
	if len(recipients) == 0 {
		log.Warn("No enrollments found for course")
		return nil
	}

	req := service.Request{
		Event:      ev,
		Recipients: recipients,
	}
	if reminder {
		req.Suppress = func(ctx context.Context, studentID string) bool {
			return h.audience.HasSubmitted(ctx, assignmentID, studentID)
		}
	}

	report := h.dispatcher.Dispatch(ctx, req)
	logReport(log, report)
	return nil
}

func logReport(log *zap.Logger, report service.Report) {
	log.Info("Dispatch complete",
		zap.Int("recipients", report.Recipients),
		zap.Int("suppressed", report.Suppressed),
		zap.Int("no_preference", report.NoPreference),
		zap.Int("email_sent", report.Email.Sent),
		zap.Int("email_failed", report.Email.Failed),
		zap.Int("push_sent", report.Push.Sent),
		zap.Int("push_failed", report.Push.Failed),
	)
}
