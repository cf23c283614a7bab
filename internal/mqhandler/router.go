package mqhandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"classnotify/internal/event"
	"classnotify/pkg/metrics"
)

var (
	// ErrMalformedEvent marks a payload that could not be decoded, either
	// at the envelope pre-parse or at the full variant decode.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrUnknownEventType marks a type tag with no routing entry.
	ErrUnknownEventType = errors.New("unknown event type")
)

type handlerFunc func(ctx context.Context, ev event.Event) error

type route struct {
	decode func(raw []byte) (event.Event, error)
	handle handlerFunc
}

// EventRouter selects the variant decoder and handler for each inbound
// payload. The routing table is built once at startup and never mutated.
type EventRouter struct {
	routes map[string]route
	logger *zap.Logger
}

func NewEventRouter(
	assignment *AssignmentHandler,
	forum *ForumHandler,
	direct *DirectHandler,
	logger *zap.Logger,
) *EventRouter {
	r := &EventRouter{
		routes: make(map[string]route),
		logger: logger,
	}

	r.register(event.TypeAssignmentCreated, assignment.Handle)
	r.register(event.TypeAssignmentReminder, assignment.Handle)
	r.register(event.TypeForumActivity, forum.Handle)
	r.register(event.TypeStudentEnrolled, direct.Handle)
	r.register(event.TypeStudentUnenrolled, direct.Handle)
	r.register(event.TypeFeedbackCreated, direct.Handle)
	r.register(event.TypeSubmissionCorrected, direct.Handle)
	r.register(event.TypeAuxTeacherAdded, direct.Handle)
	r.register(event.TypeAuxTeacherRemoved, direct.Handle)

	return r
}

func (r *EventRouter) register(eventType string, h handlerFunc) {
	decode, ok := event.Decoders[eventType]
	if !ok {
		panic(fmt.Sprintf("no decoder for event type %q", eventType))
	}
	r.routes[eventType] = route{decode: decode, handle: h}
}

// Route decodes the payload and invokes the matching handler. Undecodable
// and unrecognized events are reported through the returned error and
// dropped by the caller; they never stop the consumer.
func (r *EventRouter) Route(ctx context.Context, raw json.RawMessage) error {
	eventType, err := event.ParseEnvelope(raw)
	if err != nil {
		metrics.IncrementEventConsumed("unknown", "dropped")
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	rt, ok := r.routes[eventType]
	if !ok {
		r.logger.Warn("Event type not recognized", zap.String("event_type", eventType))
		metrics.IncrementEventConsumed(eventType, "dropped")
		return fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}

	ev, err := rt.decode(raw)
	if err != nil {
		metrics.IncrementEventConsumed(eventType, "dropped")
		return fmt.Errorf("%w: decoding %s: %v", ErrMalformedEvent, eventType, err)
	}

	r.logger.Info("Event received", zap.String("event_type", eventType))
	metrics.IncrementEventConsumed(eventType, "handled")

	return rt.handle(ctx, ev)
}
