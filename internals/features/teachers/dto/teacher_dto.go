// file: internals/features/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "tutorku_backend/internals/features/teachers/model"
)

/* =======================================================
   Request DTOs — form profil guru + tabel kualifikasi
   ======================================================= */

type CreateTeacherRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"required"`

	Status    *m.TeacherStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
	BirthDate string           `json:"birth_date,omitempty"`
	Avatar    string           `json:"avatar,omitempty"`
}

type PatchTeacherRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`

	Status    *m.TeacherStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
	BirthDate *string          `json:"birth_date,omitempty"`
	Avatar    *string          `json:"avatar,omitempty"`
}

func (r *CreateTeacherRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchTeacherRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *CreateTeacherRequest) ApplyToModel(dst *m.TeacherModel) {
	dst.Name = strings.TrimSpace(r.Name)
	dst.Email = strings.TrimSpace(r.Email)
	dst.Phone = strings.TrimSpace(r.Phone)
	dst.Address = strings.TrimSpace(r.Address)

	if r.Status != nil {
		dst.Status = *r.Status
	} else {
		dst.Status = m.TeacherActive
	}
	dst.BirthDate = strings.TrimSpace(r.BirthDate)
	dst.Avatar = strings.TrimSpace(r.Avatar)
}

func (p *PatchTeacherRequest) ApplyPatch(dst *m.TeacherModel) {
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
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.BirthDate != nil {
		dst.BirthDate = strings.TrimSpace(*p.BirthDate)
	}
	if p.Avatar != nil {
		dst.Avatar = strings.TrimSpace(*p.Avatar)
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type TeacherResponse struct {
	TeacherID string          `json:"teacher_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Status    m.TeacherStatus `json:"status"`
	BirthDate string          `json:"birth_date,omitempty"`
	Avatar    string          `json:"avatar,omitempty"`
}

func NewTeacherResponse(src *m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID: src.TeacherID,
		Name:      src.Name,
		Email:     src.Email,
		Phone:     src.Phone,
		Address:   src.Address,
		Status:    src.Status,
		BirthDate: src.BirthDate,
		Avatar:    src.Avatar,
	}
}
