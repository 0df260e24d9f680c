// file: internals/features/schedule/dto/schedule_slot_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	m "tutorku_backend/internals/features/schedule/model"
	helper "tutorku_backend/internals/helpers"
)

/* =======================================================
   Util & parsing

   Day & Time datang dari form sebagai string; label waktu boleh
   "09:00" maupun "4:00pm" — dinormalisasi ke ClockTime di sini.
   ======================================================= */

func parseDay(s string) (m.Weekday, error) {
	d, ok := m.ParseWeekday(strings.TrimSpace(s))
	if !ok {
		return "", fmt.Errorf("invalid day %q (want Monday..Sunday)", s)
	}
	return d, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

// CreateScheduleSlotRequest: slot availability polos lewat jalur CRUD
// generic. Slot dengan kedua referensi terisi harus lewat BookLessonRequest.
type CreateScheduleSlotRequest struct {
	Day  string `json:"day"  validate:"required"`
	Time string `json:"time" validate:"required"`

	Status *m.SlotStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Scheduled Completed Cancelled"`

	StudentID string `json:"student_id,omitempty"`
	SubjectID string `json:"subject_id,omitempty"`

	Duration float64 `json:"duration"`
	Rate     float64 `json:"rate"`
	Notes    string  `json:"notes,omitempty"`
}

// BookLessonRequest: operasi book pada lifecycle. Kedua referensi wajib
// dan harus resolve ke entitas yang ada (dicek service, bukan tag).
type BookLessonRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`

	Day  string `json:"day"  validate:"required"`
	Time string `json:"time" validate:"required"`

	Duration float64 `json:"duration"`
	Notes    string  `json:"notes,omitempty"`
}

// PatchScheduleSlotRequest: jalur update generic — koreksi administratif,
// sengaja tanpa guard transisi state.
type PatchScheduleSlotRequest struct {
	Day  *string `json:"day,omitempty"`
	Time *string `json:"time,omitempty"`

	Status *m.SlotStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Scheduled Completed Cancelled"`

	StudentID *string `json:"student_id,omitempty"`
	SubjectID *string `json:"subject_id,omitempty"`

	Duration *float64 `json:"duration,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

func (r *CreateScheduleSlotRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *BookLessonRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchScheduleSlotRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *CreateScheduleSlotRequest) ApplyToModel(dst *m.ScheduleSlotModel) error {
	day, err := parseDay(r.Day)
	if err != nil {
		return err
	}
	t, err := helper.ParseClockTime(r.Time)
	if err != nil {
		return err
	}

	dst.Day = day
	dst.Time = t
	if r.Status != nil {
		dst.Status = *r.Status
	} else {
		dst.Status = m.SlotAvailable
	}
	dst.StudentID = strings.TrimSpace(r.StudentID)
	dst.SubjectID = strings.TrimSpace(r.SubjectID)
	dst.Duration = helper.IntFromFloat(r.Duration)
	dst.Rate = r.Rate
	dst.Notes = strings.TrimSpace(r.Notes)
	return nil
}

func (p *PatchScheduleSlotRequest) ApplyPatch(dst *m.ScheduleSlotModel) error {
	if p.Day != nil {
		day, err := parseDay(*p.Day)
		if err != nil {
			return err
		}
		dst.Day = day
	}
	if p.Time != nil {
		t, err := helper.ParseClockTime(*p.Time)
		if err != nil {
			return err
		}
		dst.Time = t
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.StudentID != nil {
		dst.StudentID = strings.TrimSpace(*p.StudentID)
	}
	if p.SubjectID != nil {
		dst.SubjectID = strings.TrimSpace(*p.SubjectID)
	}
	if p.Duration != nil {
		dst.Duration = helper.IntFromFloat(*p.Duration)
	}
	if p.Rate != nil {
		dst.Rate = *p.Rate
	}
	if p.Notes != nil {
		dst.Notes = strings.TrimSpace(*p.Notes)
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type ScheduleSlotResponse struct {
	ScheduleSlotID string       `json:"schedule_slot_id"`
	Day            m.Weekday    `json:"day"`
	Time           string       `json:"time"` // HH:mm
	Status         m.SlotStatus `json:"status"`
	StudentID      string       `json:"student_id,omitempty"`
	StudentName    string       `json:"student_name,omitempty"`
	SubjectID      string       `json:"subject_id,omitempty"`
	SubjectName    string       `json:"subject_name,omitempty"`
	Duration       int          `json:"duration"`
	Rate           float64      `json:"rate"`
	Notes          string       `json:"notes,omitempty"`
}

func NewScheduleSlotResponse(src *m.ScheduleSlotModel) ScheduleSlotResponse {
	return ScheduleSlotResponse{
		ScheduleSlotID: src.ScheduleSlotID,
		Day:            src.Day,
		Time:           src.Time.String(),
		Status:         src.Status,
		StudentID:      src.StudentID,
		StudentName:    src.StudentName,
		SubjectID:      src.SubjectID,
		SubjectName:    src.SubjectName,
		Duration:       src.Duration,
		Rate:           src.Rate,
		Notes:          src.Notes,
	}
}
