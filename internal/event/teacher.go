package event

import "fmt"

// AuxTeacherAdded notifies the teacher that was granted the auxiliary role.
type AuxTeacherAdded struct {
	EventType  string `json:"event_type"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	TeacherID  string `json:"teacher_id"`
}

func (e *AuxTeacherAdded) Type() string      { return TypeAuxTeacherAdded }
func (e *AuxTeacherAdded) Recipient() string { return e.TeacherID }

func (e *AuxTeacherAdded) EmailContent() (string, string) {
	subject := "Has sido agregado como profesor auxiliar"
	body := fmt.Sprintf(
		"Has sido agregado como profesor auxiliar en el curso.\n\n"+
			"Curso: %s\n"+
			"ID del curso: %s\n\n"+
			"Ya puedes acceder al contenido y gestionar el curso.",
		e.CourseName, e.CourseID,
	)
	return subject, body
}

func (e *AuxTeacherAdded) PushContent() (string, string) {
	return "Has sido agregado como profesor auxiliar", fmt.Sprintf("Curso: %s", e.CourseName)
}

// AuxTeacherRemoved notifies the teacher whose auxiliary role was revoked.
type AuxTeacherRemoved struct {
	EventType  string `json:"event_type"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	TeacherID  string `json:"teacher_id"`
}

func (e *AuxTeacherRemoved) Type() string      { return TypeAuxTeacherRemoved }
func (e *AuxTeacherRemoved) Recipient() string { return e.TeacherID }

func (e *AuxTeacherRemoved) EmailContent() (string, string) {
	subject := "Has sido removido como profesor auxiliar"
	body := fmt.Sprintf(
		"Has sido removido como profesor auxiliar del curso.\n\n"+
			"Curso: %s\n"+
			"ID del curso: %s\n\n"+
			"Ya no tienes acceso al contenido del curso.",
		e.CourseName, e.CourseID,
	)
	return subject, body
}

func (e *AuxTeacherRemoved) PushContent() (string, string) {
	return "Has sido removido como profesor auxiliar", fmt.Sprintf("Curso: %s", e.CourseName)
}
