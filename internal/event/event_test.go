package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	eventType, err := ParseEnvelope([]byte(`{"event_type":"assignment.created","course_id":"C1"}`))
	require.NoError(t, err)
	assert.Equal(t, "assignment.created", eventType)
}

func TestParseEnvelope_Malformed(t *testing.T) {
	_, err := ParseEnvelope([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseEnvelope_MissingType(t *testing.T) {
	_, err := ParseEnvelope([]byte(`{"course_id":"C1"}`))
	assert.Error(t, err)
}

func TestDecoders_CoverAllKnownTypes(t *testing.T) {
	known := []string{
		TypeAssignmentCreated,
		TypeAssignmentReminder,
		TypeStudentEnrolled,
		TypeStudentUnenrolled,
		TypeFeedbackCreated,
		TypeForumActivity,
		TypeSubmissionCorrected,
		TypeAuxTeacherAdded,
		TypeAuxTeacherRemoved,
	}
	assert.Len(t, Decoders, len(known))
	for _, eventType := range known {
		decode, ok := Decoders[eventType]
		require.True(t, ok, "no decoder for %s", eventType)

		ev, err := decode([]byte(`{"event_type":"` + eventType + `"}`))
		require.NoError(t, err)
		assert.Equal(t, eventType, ev.Type())
	}
}

func TestAssignmentCreated_Decode(t *testing.T) {
	raw := []byte(`{
		"event_type": "assignment.created",
		"course_id": "C1",
		"assignment_id": "A1",
		"assignment_title": "HW1",
		"assignment_due_date": "2024-01-01T00:00:00Z"
	}`)

	ev, err := Decoders[TypeAssignmentCreated](raw)
	require.NoError(t, err)

	created, ok := ev.(*AssignmentCreated)
	require.True(t, ok)
	assert.Equal(t, "C1", created.CourseID)
	assert.Equal(t, "A1", created.AssignmentID)

	subject, body := created.EmailContent()
	assert.Contains(t, subject, "HW1")
	assert.Contains(t, body, "01/01/2024")

	title, pushBody := created.PushContent()
	assert.Equal(t, "New Assignment", title)
	assert.Contains(t, pushBody, "HW1")
}

func TestAssignmentReminder_Content(t *testing.T) {
	reminder := &AssignmentReminder{
		AssignmentTitle:   "HW2",
		AssignmentDueDate: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
	}

	subject, _ := reminder.EmailContent()
	assert.Contains(t, subject, "Recordatorio")
	assert.Contains(t, subject, "HW2")

	title, body := reminder.PushContent()
	assert.Equal(t, "Assignment Reminder", title)
	assert.Contains(t, body, "15/03/2024 18:30")
}

func TestForumActivity_TruncatesLongPosts(t *testing.T) {
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'x'
	}

	forum := &ForumActivity{PostText: string(long)}
	_, body := forum.EmailContent()
	assert.Contains(t, body, string(long[:100])+"...")
	assert.NotContains(t, body, string(long[:101]))

	short := &ForumActivity{PostText: "hola"}
	_, body = short.EmailContent()
	assert.Contains(t, body, "hola")
	assert.NotContains(t, body, "hola...")
}

func TestSubmissionCorrected_ScoreRendering(t *testing.T) {
	score := 8.5
	graded := &SubmissionCorrected{Score: &score}
	_, body := graded.EmailContent()
	assert.Contains(t, body, "Puntuación: 8.5")

	ungraded := &SubmissionCorrected{NeedsManualReview: true}
	_, body = ungraded.EmailContent()
	assert.Contains(t, body, "Sin puntuación")
	assert.Contains(t, body, "Necesita revisión manual")
}

func TestDirectEvents_Recipient(t *testing.T) {
	cases := []struct {
		ev   DirectEvent
		want string
	}{
		{&StudentEnrolled{StudentID: "S1"}, "S1"},
		{&StudentUnenrolled{StudentID: "S2"}, "S2"},
		{&FeedbackCreated{StudentID: "S3"}, "S3"},
		{&SubmissionCorrected{StudentID: "S4"}, "S4"},
		{&AuxTeacherAdded{TeacherID: "T1"}, "T1"},
		{&AuxTeacherRemoved{TeacherID: "T2"}, "T2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ev.Recipient(), "event %s", tc.ev.Type())
	}
}
