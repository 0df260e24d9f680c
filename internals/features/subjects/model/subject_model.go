// file: internals/features/subjects/model/subject_model.go
package model

type SubjectStatus string

const (
	SubjectActive   SubjectStatus = "Active"
	SubjectInactive SubjectStatus = "Inactive"
)

type SubjectModel struct {
	SubjectID string `json:"subject_id"`

	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`

	// Tarif per jam (mata uang) dan durasi default (menit).
	Rate     float64 `json:"rate"`
	Duration int     `json:"duration"`

	Status SubjectStatus `json:"status"`

	// Counter ad hoc, lihat catatan di StudentModel.
	TotalStudents int `json:"total_students"`
	TotalLessons  int `json:"total_lessons"`
}
