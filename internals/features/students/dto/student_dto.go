// file: internals/features/students/dto/student_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "tutorku_backend/internals/features/students/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateStudentRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required"`
	Address     string `json:"address"      validate:"required"`
	ParentName  string `json:"parent_name"  validate:"required"`
	ParentPhone string `json:"parent_phone" validate:"required"`
	Grade       string `json:"grade"        validate:"required"`

	Subjects []string `json:"subjects" validate:"required"`

	Status   *m.StudentStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
	JoinDate string           `json:"join_date,omitempty"`
}

type PatchStudentRequest struct {
	// Semua optional — hanya field non-nil yang di-apply.
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	ParentName  *string `json:"parent_name,omitempty"`
	ParentPhone *string `json:"parent_phone,omitempty"`
	Grade       *string `json:"grade,omitempty"`

	Subjects *[]string `json:"subjects,omitempty"`

	Status   *m.StudentStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
	JoinDate *string          `json:"join_date,omitempty"`

	// Koreksi administratif counter (jalur generic, tanpa guard).
	TotalLessons     *int     `json:"total_lessons,omitempty"`
	CompletedLessons *int     `json:"completed_lessons,omitempty"`
	TotalPaid        *float64 `json:"total_paid,omitempty"`
	PendingAmount    *float64 `json:"pending_amount,omitempty"`
}

func (r *CreateStudentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchStudentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Convert & Apply
   ======================================================= */

// ApplyToModel mengisi model baru; counter selalu mulai dari nol.
func (r *CreateStudentRequest) ApplyToModel(dst *m.StudentModel) {
	dst.Name = strings.TrimSpace(r.Name)
	dst.Email = strings.TrimSpace(r.Email)
	dst.Phone = strings.TrimSpace(r.Phone)
	dst.Address = strings.TrimSpace(r.Address)
	dst.ParentName = strings.TrimSpace(r.ParentName)
	dst.ParentPhone = strings.TrimSpace(r.ParentPhone)
	dst.Grade = strings.TrimSpace(r.Grade)
	dst.Subjects = append([]string(nil), r.Subjects...)

	if r.Status != nil {
		dst.Status = *r.Status
	} else {
		dst.Status = m.StudentActive
	}
	dst.JoinDate = strings.TrimSpace(r.JoinDate)

	dst.TotalLessons = 0
	dst.CompletedLessons = 0
	dst.TotalPaid = 0
	dst.PendingAmount = 0
}

func (p *PatchStudentRequest) ApplyPatch(dst *m.StudentModel) {
	if p.Name != nil {
		dst.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		dst.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		dst.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Address != nil {
		dst.Address = strings.TrimSpace(*p.Address)
	}
	if p.ParentName != nil {
		dst.ParentName = strings.TrimSpace(*p.ParentName)
	}
	if p.ParentPhone != nil {
		dst.ParentPhone = strings.TrimSpace(*p.ParentPhone)
	}
	if p.Grade != nil {
		dst.Grade = strings.TrimSpace(*p.Grade)
	}
	if p.Subjects != nil {
		dst.Subjects = append([]string(nil), (*p.Subjects)...)
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.JoinDate != nil {
		dst.JoinDate = strings.TrimSpace(*p.JoinDate)
	}
	if p.TotalLessons != nil {
		dst.TotalLessons = *p.TotalLessons
	}
	if p.CompletedLessons != nil {
		dst.CompletedLessons = *p.CompletedLessons
	}
	if p.TotalPaid != nil {
		dst.TotalPaid = *p.TotalPaid
	}
	if p.PendingAmount != nil {
		dst.PendingAmount = *p.PendingAmount
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type StudentResponse struct {
	StudentID        string          `json:"student_id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	ParentName       string          `json:"parent_name"`
	ParentPhone      string          `json:"parent_phone"`
	Grade            string          `json:"grade"`
	Subjects         []string        `json:"subjects"`
	Status           m.StudentStatus `json:"status"`
	JoinDate         string          `json:"join_date"`
	TotalLessons     int             `json:"total_lessons"`
	CompletedLessons int             `json:"completed_lessons"`
	TotalPaid        float64         `json:"total_paid"`
	PendingAmount    float64         `json:"pending_amount"`
}

func NewStudentResponse(src *m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        src.StudentID,
		Name:             src.Name,
		Email:            src.Email,
		Phone:            src.Phone,
		Address:          src.Address,
		ParentName:       src.ParentName,
		ParentPhone:      src.ParentPhone,
		Grade:            src.Grade,
		Subjects:         append([]string(nil), src.Subjects...),
		Status:           src.Status,
		JoinDate:         src.JoinDate,
		TotalLessons:     src.TotalLessons,
		CompletedLessons: src.CompletedLessons,
		TotalPaid:        src.TotalPaid,
		PendingAmount:    src.PendingAmount,
	}
}
