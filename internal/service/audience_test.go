package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"classnotify/internal/client"
)

type fakeCourses struct {
	enrollments  []client.Enrollment
	participants []string
	submissions  []client.Submission
	err          error
}

func (f *fakeCourses) GetEnrollments(ctx context.Context, courseID string) ([]client.Enrollment, error) {
	return f.enrollments, f.err
}

func (f *fakeCourses) GetForumParticipants(ctx context.Context, courseID string) ([]string, error) {
	return f.participants, f.err
}

func (f *fakeCourses) GetSubmissions(ctx context.Context, studentID string) ([]client.Submission, error) {
	return f.submissions, f.err
}

func TestCourseRoster(t *testing.T) {
	r := NewAudienceResolver(&fakeCourses{enrollments: []client.Enrollment{
		{StudentID: "S1"},
		{StudentID: "S2"},
		{StudentID: ""},
	}}, zap.NewNop())

	roster := r.CourseRoster(context.Background(), "C1")
	assert.Equal(t, []string{"S1", "S2"}, roster)
}

func TestCourseRoster_UpstreamErrorIsSoft(t *testing.T) {
	r := NewAudienceResolver(&fakeCourses{err: errors.New("courses service down")}, zap.NewNop())

	roster := r.CourseRoster(context.Background(), "C1")
	assert.Empty(t, roster)
}

func TestForumParticipants(t *testing.T) {
	r := NewAudienceResolver(&fakeCourses{participants: []string{"U1", "U2"}}, zap.NewNop())

	assert.Equal(t, []string{"U1", "U2"}, r.ForumParticipants(context.Background(), "C2"))
}

func TestForumParticipants_UpstreamErrorIsSoft(t *testing.T) {
	r := NewAudienceResolver(&fakeCourses{err: errors.New("boom")}, zap.NewNop())

	assert.Empty(t, r.ForumParticipants(context.Background(), "C2"))
}

func TestHasSubmitted(t *testing.T) {
	cases := []struct {
		name        string
		submissions []client.Submission
		err         error
		want        bool
	}{
		{
			name:        "submitted",
			submissions: []client.Submission{{AssignmentID: "A1", Status: "submitted"}},
			want:        true,
		},
		{
			name:        "late counts as submitted",
			submissions: []client.Submission{{AssignmentID: "A1", Status: "late"}},
			want:        true,
		},
		{
			name:        "pending",
			submissions: []client.Submission{{AssignmentID: "A1", Status: "pending"}},
			want:        false,
		},
		{
			name:        "other assignment only",
			submissions: []client.Submission{{AssignmentID: "A2", Status: "submitted"}},
			want:        false,
		},
		{
			name: "no submissions",
			want: false,
		},
		{
			name: "lookup error means not submitted",
			err:  errors.New("timeout"),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewAudienceResolver(&fakeCourses{submissions: tc.submissions, err: tc.err}, zap.NewNop())
			assert.Equal(t, tc.want, r.HasSubmitted(context.Background(), "A1", "S1"))
		})
	}
}
