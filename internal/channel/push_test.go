package channel

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"classnotify/internal/event"
)

type fakeTokens struct {
	tokens    []string
	listErr   error
	deleteErr error
	deleted   []string
}

func (f *fakeTokens) GetUserTokens(ctx context.Context, userID string) ([]string, error) {
	return f.tokens, f.listErr
}

func (f *fakeTokens) DeleteToken(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.deleteErr
}

type fakePushSender struct {
	errs map[string]error // per token
	sent []string
}

func (f *fakePushSender) Send(ctx context.Context, token, title, body string) error {
	f.sent = append(f.sent, token)
	return f.errs[token]
}

func testPushEvent() event.Event {
	return &event.AssignmentCreated{AssignmentTitle: "HW1"}
}

func TestPushDeliver_AllTokens(t *testing.T) {
	tokens := &fakeTokens{tokens: []string{"t1", "t2"}}
	sender := &fakePushSender{}
	c := NewPushChannel(tokens, sender, zap.NewNop())

	outcome := c.Deliver(context.Background(), "S1", testPushEvent())

	assert.Equal(t, OutcomeSent, outcome)
	assert.Equal(t, []string{"t1", "t2"}, sender.sent)
	assert.Empty(t, tokens.deleted)
}

func TestPushDeliver_InvalidTokenIsRevokedAndIsolated(t *testing.T) {
	tokens := &fakeTokens{tokens: []string{"dead", "t2"}}
	sender := &fakePushSender{errs: map[string]error{
		"dead": fmt.Errorf("%w: NotRegistered", ErrInvalidToken),
	}}
	c := NewPushChannel(tokens, sender, zap.NewNop())

	outcome := c.Deliver(context.Background(), "S1", testPushEvent())

	assert.Equal(t, OutcomeSent, outcome, "other device still reached")
	assert.Equal(t, []string{"dead", "t2"}, sender.sent)
	assert.Equal(t, []string{"dead"}, tokens.deleted, "exactly one deletion for the dead token")
}

func TestPushDeliver_DeleteFailureIsLoggedOnly(t *testing.T) {
	tokens := &fakeTokens{
		tokens:    []string{"dead"},
		deleteErr: errors.New("store down"),
	}
	sender := &fakePushSender{errs: map[string]error{
		"dead": ErrInvalidToken,
	}}
	c := NewPushChannel(tokens, sender, zap.NewNop())

	outcome := c.Deliver(context.Background(), "S1", testPushEvent())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, []string{"dead"}, tokens.deleted)
}

func TestPushDeliver_NoTokensSkips(t *testing.T) {
	c := NewPushChannel(&fakeTokens{}, &fakePushSender{}, zap.NewNop())

	outcome := c.Deliver(context.Background(), "S1", testPushEvent())

	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestPushDeliver_TokenListErrorSkips(t *testing.T) {
	tokens := &fakeTokens{listErr: errors.New("timeout")}
	sender := &fakePushSender{}
	c := NewPushChannel(tokens, sender, zap.NewNop())

	outcome := c.Deliver(context.Background(), "S1", testPushEvent())

	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Empty(t, sender.sent)
}

func TestPushDeliver_TransientErrorsFail(t *testing.T) {
	tokens := &fakeTokens{tokens: []string{"t1", "t2"}}
	sender := &fakePushSender{errs: map[string]error{
		"t1": errors.New("fcm 5xx: 503"),
		"t2": errors.New("fcm 5xx: 503"),
	}}
	c := NewPushChannel(tokens, sender, zap.NewNop())

	outcome := c.Deliver(context.Background(), "S1", testPushEvent())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Empty(t, tokens.deleted, "transient errors never revoke tokens")
}
