// file: internals/features/teachers/model/teacher_model.go
package model

/* =======================================================
   Profil guru + kualifikasi (dipakai layar TeacherProfile
   yang me-mirror schedule lewat observer).
   ======================================================= */

type TeacherStatus string

const (
	TeacherActive   TeacherStatus = "Active"
	TeacherInactive TeacherStatus = "Inactive"
)

type TeacherModel struct {
	TeacherID string `json:"teacher_id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Status    TeacherStatus `json:"status"`
	BirthDate string        `json:"birth_date"` // YYYY-MM-DD
	Avatar    string        `json:"avatar,omitempty"`
}

type QualificationType string

const (
	QualificationPrivate QualificationType = "Private"
	QualificationGroup   QualificationType = "Group"
)

type QualificationModel struct {
	QualificationID string `json:"qualification_id"`

	Name string            `json:"name"`
	Rate float64           `json:"rate"`
	Type QualificationType `json:"type"`
}
