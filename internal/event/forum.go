package event

import (
	"fmt"
	"time"
)

// ForumActivity notifies every forum participant of the course.
type ForumActivity struct {
	EventType     string    `json:"event_type"`
	CourseID      string    `json:"course_id"`
	StudentID     string    `json:"student_id"`
	PostID        string    `json:"post_id"`
	PostText      string    `json:"post_text"`
	PostCreatedAt time.Time `json:"post_created_at"`
}

func (e *ForumActivity) Type() string { return TypeForumActivity }

func (e *ForumActivity) EmailContent() (string, string) {
	subject := "Nueva actividad en el foro"
	body := fmt.Sprintf(
		"Hay nueva actividad en el foro de tu curso.\n\n"+
			"Curso ID: %s\n"+
			"Post: %s\n"+
			"Fecha: %s\n\n"+
			"¡Participa en la discusión!",
		e.CourseID, truncate(e.PostText, 100), formatDate(e.PostCreatedAt),
	)
	return subject, body
}

func (e *ForumActivity) PushContent() (string, string) {
	return "Nueva actividad en el foro", truncate(e.PostText, 100)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
