// file: internals/features/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "tutorku_backend/internals/features/subjects/model"
	helper "tutorku_backend/internals/helpers"
)

/* =======================================================
   Request DTOs

   Catatan: Rate/Duration datang dari form sebagai float hasil
   coercion. Input angka yang rusak jadi NaN dan tetap diteruskan
   (kelonggaran lama yang dipertahankan); NaN lolos tag required.
   ======================================================= */

type CreateSubjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Description string `json:"description" validate:"required"`

	Rate     float64 `json:"rate"`
	Duration float64 `json:"duration"`

	Status *m.SubjectStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

type PatchSubjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`

	Rate     *float64 `json:"rate,omitempty"`
	Duration *float64 `json:"duration,omitempty"`

	Status *m.SubjectStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`

	TotalStudents *int `json:"total_students,omitempty"`
	TotalLessons  *int `json:"total_lessons,omitempty"`
}

func (r *CreateSubjectRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchSubjectRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *CreateSubjectRequest) ApplyToModel(dst *m.SubjectModel) {
	dst.Name = strings.TrimSpace(r.Name)
	dst.Category = strings.TrimSpace(r.Category)
	dst.Description = strings.TrimSpace(r.Description)
	dst.Rate = r.Rate
	dst.Duration = helper.IntFromFloat(r.Duration)

	if r.Status != nil {
		dst.Status = *r.Status
	} else {
		dst.Status = m.SubjectActive
	}

	dst.TotalStudents = 0
	dst.TotalLessons = 0
}

func (p *PatchSubjectRequest) ApplyPatch(dst *m.SubjectModel) {
	if p.Name != nil {
		dst.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		dst.Category = strings.TrimSpace(*p.Category)
	}
	if p.Description != nil {
		dst.Description = strings.TrimSpace(*p.Description)
	}
	if p.Rate != nil {
		dst.Rate = *p.Rate
	}
	if p.Duration != nil {
		dst.Duration = helper.IntFromFloat(*p.Duration)
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.TotalStudents != nil {
		dst.TotalStudents = *p.TotalStudents
	}
	if p.TotalLessons != nil {
		dst.TotalLessons = *p.TotalLessons
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type SubjectResponse struct {
	SubjectID     string          `json:"subject_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Rate          float64         `json:"rate"`
	Duration      int             `json:"duration"`
	Status        m.SubjectStatus `json:"status"`
	TotalStudents int             `json:"total_students"`
	TotalLessons  int             `json:"total_lessons"`
}

func NewSubjectResponse(src *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:     src.SubjectID,
		Name:          src.Name,
		Category:      src.Category,
		Description:   src.Description,
		Rate:          src.Rate,
		Duration:      src.Duration,
		Status:        src.Status,
		TotalStudents: src.TotalStudents,
		TotalLessons:  src.TotalLessons,
	}
}
