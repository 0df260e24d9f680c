// file: internals/features/payments/dto/payment_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "tutorku_backend/internals/features/payments/model"
)

/* =======================================================
   Request DTOs

   StudentName/SubjectName sengaja tidak ada di request —
   keduanya diisi resolver saat tulis (enrich-on-write),
   bukan oleh pengirim form.
   ======================================================= */

type CreatePaymentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`

	Amount float64 `json:"amount"`
	Date   string  `json:"date" validate:"required"`

	Status *m.PaymentStatus `json:"status,omitempty" validate:"omitempty,oneof=Paid Pending Overdue"`
	Method *m.PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=Cash Card 'Bank Transfer' Online"`

	Description string `json:"description" validate:"required"`
	LessonDate  string `json:"lesson_date,omitempty"`
}

type PatchPaymentRequest struct {
	StudentID *string `json:"student_id,omitempty"`
	SubjectID *string `json:"subject_id,omitempty"`

	Amount *float64 `json:"amount,omitempty"`
	Date   *string  `json:"date,omitempty"`

	Status *m.PaymentStatus `json:"status,omitempty" validate:"omitempty,oneof=Paid Pending Overdue"`
	Method *m.PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=Cash Card 'Bank Transfer' Online"`

	Description *string `json:"description,omitempty"`
	LessonDate  *string `json:"lesson_date,omitempty"`
}

func (r *CreatePaymentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchPaymentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *CreatePaymentRequest) ApplyToModel(dst *m.PaymentModel) {
	dst.StudentID = strings.TrimSpace(r.StudentID)
	dst.SubjectID = strings.TrimSpace(r.SubjectID)
	dst.Amount = r.Amount
	dst.Date = strings.TrimSpace(r.Date)

	if r.Status != nil {
		dst.Status = *r.Status
	} else {
		dst.Status = m.PaymentPending
	}
	if r.Method != nil {
		dst.Method = *r.Method
	} else {
		dst.Method = m.MethodCash
	}

	dst.Description = strings.TrimSpace(r.Description)
	dst.LessonDate = strings.TrimSpace(r.LessonDate)
}

func (p *PatchPaymentRequest) ApplyPatch(dst *m.PaymentModel) {
	if p.StudentID != nil {
		dst.StudentID = strings.TrimSpace(*p.StudentID)
	}
	if p.SubjectID != nil {
		dst.SubjectID = strings.TrimSpace(*p.SubjectID)
	}
	if p.Amount != nil {
		dst.Amount = *p.Amount
	}
	if p.Date != nil {
		dst.Date = strings.TrimSpace(*p.Date)
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Method != nil {
		dst.Method = *p.Method
	}
	if p.Description != nil {
		dst.Description = strings.TrimSpace(*p.Description)
	}
	if p.LessonDate != nil {
		dst.LessonDate = strings.TrimSpace(*p.LessonDate)
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type PaymentResponse struct {
	PaymentID   string          `json:"payment_id"`
	StudentID   string          `json:"student_id"`
	StudentName string          `json:"student_name"`
	SubjectID   string          `json:"subject_id"`
	SubjectName string          `json:"subject_name"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Status      m.PaymentStatus `json:"status"`
	Method      m.PaymentMethod `json:"method"`
	Description string          `json:"description"`
	LessonDate  string          `json:"lesson_date,omitempty"`
}

func NewPaymentResponse(src *m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:   src.PaymentID,
		StudentID:   src.StudentID,
		StudentName: src.StudentName,
		SubjectID:   src.SubjectID,
		SubjectName: src.SubjectName,
		Amount:      src.Amount,
		Date:        src.Date,
		Status:      src.Status,
		Method:      src.Method,
		Description: src.Description,
		LessonDate:  src.LessonDate,
	}
}
