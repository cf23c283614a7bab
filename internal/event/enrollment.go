package event

import "fmt"

// StudentEnrolled notifies the enrolled student directly.
type StudentEnrolled struct {
	EventType string `json:"event_type"`
	CourseID  string `json:"course_id"`
	StudentID string `json:"student_id"`
}

func (e *StudentEnrolled) Type() string      { return TypeStudentEnrolled }
func (e *StudentEnrolled) Recipient() string { return e.StudentID }

func (e *StudentEnrolled) EmailContent() (string, string) {
	subject := "Inscripción exitosa"
	body := fmt.Sprintf(
		"¡Te has inscrito exitosamente en el curso!\n\n"+
			"Curso ID: %s\n\n"+
			"Ya puedes acceder al contenido del curso y comenzar tu aprendizaje.",
		e.CourseID,
	)
	return subject, body
}

func (e *StudentEnrolled) PushContent() (string, string) {
	return "Inscripción exitosa", fmt.Sprintf("Te has inscrito en el curso %s", e.CourseID)
}

// StudentUnenrolled notifies the removed student directly.
type StudentUnenrolled struct {
	EventType string `json:"event_type"`
	CourseID  string `json:"course_id"`
	StudentID string `json:"student_id"`
}

func (e *StudentUnenrolled) Type() string      { return TypeStudentUnenrolled }
func (e *StudentUnenrolled) Recipient() string { return e.StudentID }

func (e *StudentUnenrolled) EmailContent() (string, string) {
	subject := "Has sido desinscrito del curso"
	body := fmt.Sprintf(
		"Has sido desinscrito del curso.\n\n"+
			"Curso ID: %s\n\n"+
			"Ya no tienes acceso al contenido del curso.",
		e.CourseID,
	)
	return subject, body
}

func (e *StudentUnenrolled) PushContent() (string, string) {
	return "Has sido desinscrito del curso", fmt.Sprintf("Ya no tienes acceso al curso %s", e.CourseID)
}
