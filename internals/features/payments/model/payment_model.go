// file: internals/features/payments/model/payment_model.go
package model

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCard         PaymentMethod = "Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodOnline       PaymentMethod = "Online"
)

// PaymentModel. StudentName/SubjectName denormalisasi saat tulis,
// diisi resolver — bukan join saat baca.
type PaymentModel struct {
	PaymentID string `json:"payment_id"`

	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`

	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // YYYY-MM-DD

	Status PaymentStatus `json:"status"`
	Method PaymentMethod `json:"method"`

	Description string `json:"description"`
	LessonDate  string `json:"lesson_date,omitempty"`
}
