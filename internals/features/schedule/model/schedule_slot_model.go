// file: internals/features/schedule/model/schedule_slot_model.go
package model

import (
	helper "tutorku_backend/internals/helpers"
)

/* =======================================================
   Enum hari & status slot
   ======================================================= */

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Urutan kanonis Monday..Sunday untuk sort daftar lesson.
var WeekdayOrder = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var weekdayIndex = func() map[Weekday]int {
	m := make(map[Weekday]int, len(WeekdayOrder))
	for i, d := range WeekdayOrder {
		m[d] = i
	}
	return m
}()

// WeekdayIndex mengembalikan posisi 0..6; hari tak dikenal jatuh ke belakang.
func WeekdayIndex(d Weekday) int {
	if i, ok := weekdayIndex[d]; ok {
		return i
	}
	return len(WeekdayOrder)
}

func ParseWeekday(s string) (Weekday, bool) {
	d := Weekday(s)
	_, ok := weekdayIndex[d]
	return d, ok
}

type SlotStatus string

const (
	SlotAvailable SlotStatus = "Available"
	SlotScheduled SlotStatus = "Scheduled"
	SlotCompleted SlotStatus = "Completed"
	SlotCancelled SlotStatus = "Cancelled"
)

/* =======================================================
   ScheduleSlotModel

   Slot adalah satu unit day/time di grid mingguan. Slot yang
   punya StudentID dan SubjectID adalah lesson. Dua referensi itu
   berpasangan secara logika tapi tidak dipaksa oleh tipe; update
   administratif lewat path generic boleh mem-bypass state machine.

   StudentName/SubjectName di-cache saat tulis (denormalisasi).
   Tidak ada propagasi kalau entitas acuan di-rename belakangan —
   semantik snapshot, sama dengan Payment.
   ======================================================= */

type ScheduleSlotModel struct {
	ScheduleSlotID string `json:"schedule_slot_id"`

	Day  Weekday          `json:"day"`
	Time helper.ClockTime `json:"time"`

	Status SlotStatus `json:"status"`

	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	SubjectID   string `json:"subject_id,omitempty"`
	SubjectName string `json:"subject_name,omitempty"`

	Duration int     `json:"duration"` // menit
	Rate     float64 `json:"rate"`
	Notes    string  `json:"notes,omitempty"`
}

// IsLesson: slot yang sudah dibooking (punya kedua referensi).
func (s *ScheduleSlotModel) IsLesson() bool {
	return s.StudentID != "" && s.SubjectID != ""
}
