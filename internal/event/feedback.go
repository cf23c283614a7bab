package event

import (
	"fmt"
	"time"
)

// FeedbackCreated notifies the student that received teacher feedback.
type FeedbackCreated struct {
	EventType         string    `json:"event_type"`
	CourseID          string    `json:"course_id"`
	StudentID         string    `json:"student_id"`
	FeedbackID        string    `json:"feedback_id"`
	FeedbackText      string    `json:"feedback_text"`
	FeedbackRating    int       `json:"feedback_rating"`
	FeedbackCreatedAt time.Time `json:"feedback_created_at"`
}

func (e *FeedbackCreated) Type() string      { return TypeFeedbackCreated }
func (e *FeedbackCreated) Recipient() string { return e.StudentID }

func (e *FeedbackCreated) EmailContent() (string, string) {
	subject := "Nuevo feedback recibido"
	body := fmt.Sprintf(
		"Has recibido nuevo feedback de tu profesor.\n\n"+
			"Curso ID: %s\n"+
			"Calificación: %d/5\n"+
			"Comentario: %s\n"+
			"Fecha: %s\n\n"+
			"¡Revisa el feedback para mejorar tu desempeño!",
		e.CourseID, e.FeedbackRating, e.FeedbackText, formatDate(e.FeedbackCreatedAt),
	)
	return subject, body
}

func (e *FeedbackCreated) PushContent() (string, string) {
	return "Nuevo feedback recibido", fmt.Sprintf("Calificación %d/5 en el curso %s", e.FeedbackRating, e.CourseID)
}
