package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"classnotify/internal/channel"
	"classnotify/internal/event"
	"classnotify/internal/model"
	"classnotify/pkg/metrics"
)

// PreferenceSource gates channels per (user, event type). A nil preference
// means no row exists and every channel stays closed for that recipient.
type PreferenceSource interface {
	ChannelFlags(ctx context.Context, userID, eventType string) (*model.Preference, error)
}

// Deliverer is one delivery channel's per-recipient entry point.
type Deliverer interface {
	Deliver(ctx context.Context, userID string, ev event.Event) channel.Outcome
}

// Request is one dispatch: an event plus its resolved audience. Suppress,
// when set, drops a recipient before the preference check (assignment
// reminders use it to skip students that already submitted).
type Request struct {
	Event      event.Event
	Recipients []string
	Suppress   func(ctx context.Context, userID string) bool
}

// ChannelStats tallies one channel across a dispatch.
type ChannelStats struct {
	Attempted int
	Sent      int
	Skipped   int
	Failed    int
}

func (s *ChannelStats) record(o channel.Outcome) {
	switch o {
	case channel.OutcomeSent:
		s.Sent++
	case channel.OutcomeSkipped:
		s.Skipped++
	case channel.OutcomeFailed:
		s.Failed++
	}
}

// Report aggregates the outcome of one dispatch for logging and metrics.
type Report struct {
	Recipients   int
	Suppressed   int
	NoPreference int
	Email        ChannelStats
	Push         ChannelStats
}

// Dispatcher fans an event out to its recipients. Recipients are processed
// independently on a bounded worker pool; any failure is contained to its
// recipient and the rest of the dispatch continues.
type Dispatcher struct {
	prefs            PreferenceSource
	email            Deliverer
	push             Deliverer
	workerLimit      int
	recipientTimeout time.Duration
	logger           *zap.Logger
}

func NewDispatcher(
	prefs PreferenceSource,
	email Deliverer,
	push Deliverer,
	workerLimit int,
	recipientTimeout time.Duration,
	logger *zap.Logger,
) *Dispatcher {
	if workerLimit <= 0 {
		workerLimit = 1
	}
	return &Dispatcher{
		prefs:            prefs,
		email:            email,
		push:             push,
		workerLimit:      workerLimit,
		recipientTimeout: recipientTimeout,
		logger:           logger,
	}
}

// Dispatch processes every recipient of the request and returns the tally.
// It never returns an error: delivery is best effort and failures surface
// through the report, the logs and the counters.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Report {
	report := Report{Recipients: len(req.Recipients)}
	if req.Event == nil || len(req.Recipients) == 0 {
		return report
	}

	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(d.workerLimit)

	for _, userID := range req.Recipients {
		userID := userID
		g.Go(func() error {
			d.processRecipient(ctx, req, userID, &mu, &report)
			return nil
		})
	}
	_ = g.Wait()

	metrics.RecordDispatch(req.Event.Type(), report.Email.Sent+report.Push.Sent)
	return report
}

func (d *Dispatcher) processRecipient(ctx context.Context, req Request, userID string, mu *sync.Mutex, report *Report) {
	// A recipient that panics must not take the rest of the dispatch down.
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Recipient processing panic recovered",
				zap.String("user_id", userID),
				zap.String("event_type", req.Event.Type()),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.recipientTimeout)
	defer cancel()

	if req.Suppress != nil && req.Suppress(ctx, userID) {
		d.logger.Info("Recipient suppressed",
			zap.String("user_id", userID),
			zap.String("event_type", req.Event.Type()),
		)
		mu.Lock()
		report.Suppressed++
		mu.Unlock()
		return
	}

	pref, err := d.prefs.ChannelFlags(ctx, userID, req.Event.Type())
	if err != nil {
		d.logger.Error("Preference lookup failed, skipping recipient",
			zap.String("user_id", userID),
			zap.String("event_type", req.Event.Type()),
			zap.Error(err),
		)
		return
	}
	if pref == nil {
		// No row is not "use defaults": no channel opens.
		d.logger.Info("No matching preference found, skipping recipient",
			zap.String("user_id", userID),
			zap.String("event_type", req.Event.Type()),
		)
		mu.Lock()
		report.NoPreference++
		mu.Unlock()
		return
	}

	if pref.EmailEnabled {
		outcome := d.email.Deliver(ctx, userID, req.Event)
		metrics.IncrementNotification("email", outcome.String())
		mu.Lock()
		report.Email.Attempted++
		report.Email.record(outcome)
		mu.Unlock()
	}

	if pref.PushEnabled {
		outcome := d.push.Deliver(ctx, userID, req.Event)
		metrics.IncrementNotification("push", outcome.String())
		mu.Lock()
		report.Push.Attempted++
		report.Push.record(outcome)
		mu.Unlock()
	}
}
