// file: internals/features/students/model/student_model.go
package model

/* =======================================================
   Enum status murid
   ======================================================= */

type StudentStatus string

const (
	StudentActive   StudentStatus = "Active"
	StudentInactive StudentStatus = "Inactive"
)

/* =======================================================
   StudentModel

   Counter (TotalLessons dst.) dirawat inkremental oleh lifecycle
   lesson, bukan dihitung ulang dari koleksi slot/payment. Angka
   turunan yang selalu konsisten tersedia lewat query derived di
   store; counter di sini dipertahankan demi kompatibilitas layar.
   ======================================================= */

type StudentModel struct {
	StudentID string `json:"student_id"`

	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ParentName  string `json:"parent_name"`
	ParentPhone string `json:"parent_phone"`
	Grade       string `json:"grade"`

	// Kumpulan id subject (urutan tidak bermakna).
	Subjects []string `json:"subjects"`

	Status   StudentStatus `json:"status"`
	JoinDate string        `json:"join_date"` // YYYY-MM-DD

	TotalLessons     int     `json:"total_lessons"`
	CompletedLessons int     `json:"completed_lessons"`
	TotalPaid        float64 `json:"total_paid"`
	PendingAmount    float64 `json:"pending_amount"`
}
