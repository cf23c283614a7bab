package service

import (
	"context"

	"go.uber.org/zap"

	"classnotify/internal/client"
)

// CourseReader is the slice of the courses service the resolver needs.
type CourseReader interface {
	GetEnrollments(ctx context.Context, courseID string) ([]client.Enrollment, error)
	GetForumParticipants(ctx context.Context, courseID string) ([]string, error)
	GetSubmissions(ctx context.Context, studentID string) ([]client.Submission, error)
}

// AudienceResolver maps an event to its candidate recipients. Upstream
// failures are soft: a course that cannot be read yields an empty audience
// and a warning, never an error that would stop the consumer.
type AudienceResolver struct {
	courses CourseReader
	logger  *zap.Logger
}

func NewAudienceResolver(courses CourseReader, logger *zap.Logger) *AudienceResolver {
	return &AudienceResolver{
		courses: courses,
		logger:  logger,
	}
}

// CourseRoster returns the student ids enrolled in a course.
func (r *AudienceResolver) CourseRoster(ctx context.Context, courseID string) []string {
	enrollments, err := r.courses.GetEnrollments(ctx, courseID)
	if err != nil {
		r.logger.Warn("Could not get enrollments for course",
			zap.String("course_id", courseID),
			zap.Error(err),
		)
		return nil
	}

	roster := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if e.StudentID != "" {
			roster = append(roster, e.StudentID)
		}
	}
	return roster
}

// ForumParticipants returns the user ids that have posted in the course
// forum.
func (r *AudienceResolver) ForumParticipants(ctx context.Context, courseID string) []string {
	participants, err := r.courses.GetForumParticipants(ctx, courseID)
	if err != nil {
		r.logger.Warn("Could not get forum participants for course",
			zap.String("course_id", courseID),
			zap.Error(err),
		)
		return nil
	}
	return participants
}

// HasSubmitted reports whether the student already handed in the
// assignment (status submitted or late). Errors count as "not submitted"
// so a flaky courses service never swallows a reminder.
func (r *AudienceResolver) HasSubmitted(ctx context.Context, assignmentID, studentID string) bool {
	submissions, err := r.courses.GetSubmissions(ctx, studentID)
	if err != nil {
		r.logger.Warn("Could not check submission status",
			zap.String("assignment_id", assignmentID),
			zap.String("student_id", studentID),
			zap.Error(err),
		)
		return false
	}

	for _, sub := range submissions {
		if sub.AssignmentID != assignmentID {
			continue
		}
		return sub.Status == "submitted" || sub.Status == "late"
	}
	return false
}
