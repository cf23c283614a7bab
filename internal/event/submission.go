package event

import (
	"fmt"
	"time"
)

// SubmissionCorrected notifies the student whose submission was graded.
type SubmissionCorrected struct {
	EventType         string    `json:"event_type"`
	CourseID          string    `json:"course_id"`
	AssignmentID      string    `json:"assignment_id"`
	SubmissionID      string    `json:"submission_id"`
	StudentID         string    `json:"student_id"`
	Score             *float64  `json:"score"`
	Feedback          string    `json:"feedback"`
	CorrectionType    string    `json:"correction_type"`
	NeedsManualReview bool      `json:"needs_manual_review"`
	CorrectedAt       time.Time `json:"corrected_at"`
}

func (e *SubmissionCorrected) Type() string      { return TypeSubmissionCorrected }
func (e *SubmissionCorrected) Recipient() string { return e.StudentID }

func (e *SubmissionCorrected) scoreText() string {
	if e.Score == nil {
		return "Sin puntuación"
	}
	return fmt.Sprintf("Puntuación: %v", *e.Score)
}

func (e *SubmissionCorrected) EmailContent() (string, string) {
	reviewText := "Corrección automática"
	if e.NeedsManualReview {
		reviewText = "Necesita revisión manual"
	}

	subject := "Tu entrega ha sido corregida"
	body := fmt.Sprintf(
		"Tu entrega ha sido corregida.\n\n"+
			"Curso ID: %s\n"+
			"Asignación ID: %s\n"+
			"%s\n"+
			"Tipo de corrección: %s\n"+
			"Feedback: %s\n"+
			"Fecha de corrección: %s\n\n"+
			"¡Revisa los resultados!",
		e.CourseID, e.AssignmentID, e.scoreText(), reviewText, e.Feedback, formatDate(e.CorrectedAt),
	)
	return subject, body
}

func (e *SubmissionCorrected) PushContent() (string, string) {
	return "Tu entrega ha sido corregida", e.scoreText()
}
