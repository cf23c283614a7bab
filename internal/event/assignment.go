package event

import (
	"fmt"
	"time"
)

// AssignmentCreated announces a new assignment to every course enrollee.
type AssignmentCreated struct {
	EventType         string    `json:"event_type"`
	CourseID          string    `json:"course_id"`
	AssignmentID      string    `json:"assignment_id"`
	AssignmentTitle   string    `json:"assignment_title"`
	AssignmentDueDate time.Time `json:"assignment_due_date"`
}

func (e *AssignmentCreated) Type() string { return TypeAssignmentCreated }

func (e *AssignmentCreated) EmailContent() (string, string) {
	subject := fmt.Sprintf("Nueva asignación: %s", e.AssignmentTitle)
	body := fmt.Sprintf(
		"Se ha creado una nueva asignación en tu curso.\n\n"+
			"Título: %s\n"+
			"Fecha de entrega: %s\n\n"+
			"¡No olvides completarla a tiempo!",
		e.AssignmentTitle, formatDate(e.AssignmentDueDate),
	)
	return subject, body
}

func (e *AssignmentCreated) PushContent() (string, string) {
	return "New Assignment", fmt.Sprintf("New assignment available: %s", e.AssignmentTitle)
}

// AssignmentReminder nudges enrollees that have not yet submitted. Recipients
// with a submitted or late submission are suppressed by the reminder handler.
type AssignmentReminder struct {
	EventType         string    `json:"event_type"`
	CourseID          string    `json:"course_id"`
	AssignmentID      string    `json:"assignment_id"`
	AssignmentTitle   string    `json:"assignment_title"`
	AssignmentDueDate time.Time `json:"assignment_due_date"`
}

func (e *AssignmentReminder) Type() string { return TypeAssignmentReminder }

func (e *AssignmentReminder) EmailContent() (string, string) {
	subject := fmt.Sprintf("Recordatorio de asignación: %s", e.AssignmentTitle)
	body := fmt.Sprintf(
		"Recordatorio: Tienes una asignación próxima a vencer.\n\n"+
			"Título: %s\n"+
			"Fecha de entrega: %s\n\n"+
			"¡Asegúrate de completarla antes de la fecha límite!",
		e.AssignmentTitle, formatDate(e.AssignmentDueDate),
	)
	return subject, body
}

func (e *AssignmentReminder) PushContent() (string, string) {
	return "Assignment Reminder", fmt.Sprintf("Reminder: %s is due on %s", e.AssignmentTitle, formatDate(e.AssignmentDueDate))
}
