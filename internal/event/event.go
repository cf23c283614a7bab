package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Known event type tags carried in the envelope.
const (
	TypeAssignmentCreated   = "assignment.created"
	TypeAssignmentReminder  = "assignment.reminder"
	TypeStudentEnrolled     = "student.enrolled"
	TypeStudentUnenrolled   = "student.unenrolled"
	TypeFeedbackCreated     = "feedback.created"
	TypeForumActivity       = "forum.activity"
	TypeSubmissionCorrected = "submission.corrected"
	TypeAuxTeacherAdded     = "aux_teacher.added"
	TypeAuxTeacherRemoved   = "aux_teacher.removed"
)

// Event is one decoded platform event. Every variant renders its own
// notification content; the text is product copy and not localized at runtime.
type Event interface {
	Type() string
	EmailContent() (subject, body string)
	PushContent() (title, body string)
}

// DirectEvent is an event whose audience is the single user embedded in
// the payload (no remote audience resolution).
type DirectEvent interface {
	Event
	Recipient() string
}

// envelope is the minimal shape used only to read the type tag before the
// full variant decode.
type envelope struct {
	EventType string `json:"event_type"`
}

// ParseEnvelope extracts the event type tag from a raw payload.
func ParseEnvelope(raw []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("failed to parse event envelope: %w", err)
	}
	if env.EventType == "" {
		return "", fmt.Errorf("event envelope has no event_type")
	}
	return env.EventType, nil
}

// Decoders maps every known type tag to its variant decoder.
var Decoders = map[string]func(raw []byte) (Event, error){
	TypeAssignmentCreated:   func(raw []byte) (Event, error) { return unmarshal(raw, &AssignmentCreated{}) },
	TypeAssignmentReminder:  func(raw []byte) (Event, error) { return unmarshal(raw, &AssignmentReminder{}) },
	TypeStudentEnrolled:     func(raw []byte) (Event, error) { return unmarshal(raw, &StudentEnrolled{}) },
	TypeStudentUnenrolled:   func(raw []byte) (Event, error) { return unmarshal(raw, &StudentUnenrolled{}) },
	TypeFeedbackCreated:     func(raw []byte) (Event, error) { return unmarshal(raw, &FeedbackCreated{}) },
	TypeForumActivity:       func(raw []byte) (Event, error) { return unmarshal(raw, &ForumActivity{}) },
	TypeSubmissionCorrected: func(raw []byte) (Event, error) { return unmarshal(raw, &SubmissionCorrected{}) },
	TypeAuxTeacherAdded:     func(raw []byte) (Event, error) { return unmarshal(raw, &AuxTeacherAdded{}) },
	TypeAuxTeacherRemoved:   func(raw []byte) (Event, error) { return unmarshal(raw, &AuxTeacherRemoved{}) },
}

func unmarshal(raw []byte, ev Event) (Event, error) {
	if err := json.Unmarshal(raw, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
