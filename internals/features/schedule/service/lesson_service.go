// file: internals/features/schedule/service/lesson_service.go
package service

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"tutorku_backend/internals/features/schedule/dto"
	m "tutorku_backend/internals/features/schedule/model"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/store"
)

/* =======================================================
   LessonService — state machine slot

   Available → Scheduled → {Completed, Cancelled}
   Completed dan Cancelled terminal. Update/delete lewat jalur
   generic store boleh mem-bypass transisi ini (koreksi admin).
   ======================================================= */

type LessonService struct {
	store    *store.Store
	validate *validator.Validate

	// strictBooking menolak double-booking sel day/time. Default mati —
	// perilaku lama membolehkan; aktifkan lewat STRICT_BOOKING.
	strictBooking bool
}

func NewLessonService(st *store.Store, v *validator.Validate, strictBooking bool) *LessonService {
	return &LessonService{store: st, validate: v, strictBooking: strictBooking}
}

/* =======================================================
   Book
   ======================================================= */

// Book membuat slot Scheduled. Kedua referensi wajib resolve ke entitas
// yang ada; kalau tidak, ValidationError dikembalikan ke pemanggil
// (dulu cuma alert di layar). Nama di-denormalisasi, rate diambil dari
// subject, TotalLessons murid & subject naik satu.
func (s *LessonService) Book(req *dto.BookLessonRequest) (m.ScheduleSlotModel, error) {
	if err := req.Validate(s.validate); err != nil {
		return m.ScheduleSlotModel{}, helper.FromValidator(err)
	}

	day, ok := m.ParseWeekday(req.Day)
	if !ok {
		return m.ScheduleSlotModel{}, helper.NewValidationError("validation failed",
			map[string]string{"day": "invalid weekday"})
	}
	clock, err := helper.ParseClockTime(req.Time)
	if err != nil {
		return m.ScheduleSlotModel{}, helper.NewValidationError("validation failed",
			map[string]string{"time": "invalid time label"})
	}

	student, studentOK := s.store.GetStudentByID(req.StudentID)
	subject, subjectOK := s.store.GetSubjectByID(req.SubjectID)
	if !studentOK || !subjectOK {
		fields := map[string]string{}
		if !studentOK {
			fields["student_id"] = "unknown student"
		}
		if !subjectOK {
			fields["subject_id"] = "unknown subject"
		}
		return m.ScheduleSlotModel{}, helper.NewValidationError(
			"please select valid student and subject", fields)
	}

	if s.strictBooking {
		if existing, occupied := s.store.FindActiveScheduleSlot(day, clock); occupied {
			return m.ScheduleSlotModel{}, fmt.Errorf(
				"slot %s %s already occupied by %s: %w",
				day, clock, existing.ScheduleSlotID, helper.ErrConflict)
		}
	}

	duration := helper.IntFromFloat(req.Duration)
	if duration == 0 {
		duration = subject.Duration
	}

	slot := s.store.AddScheduleSlot(m.ScheduleSlotModel{
		Day:         day,
		Time:        clock,
		Status:      m.SlotScheduled,
		StudentID:   student.StudentID,
		StudentName: student.Name,
		SubjectID:   subject.SubjectID,
		SubjectName: subject.Name,
		Duration:    duration,
		Rate:        subject.Rate,
		Notes:       req.Notes,
	})

	s.store.UpdateStudent(student.StudentID, func(st *studentmodel.StudentModel) {
		st.TotalLessons++
	})
	s.store.UpdateSubject(subject.SubjectID, func(sub *subjectmodel.SubjectModel) {
		sub.TotalLessons++
	})

	return slot, nil
}

/* =======================================================
   Complete / Cancel
   ======================================================= */

// Complete mentransisikan Scheduled → Completed dan menaikkan
// CompletedLessons murid. Id yang tidak ada atau slot yang sudah
// terminal adalah no-op (false) — complete dua kali tidak akan
// menaikkan counter dua kali.
func (s *LessonService) Complete(slotID string) bool {
	slot, ok := s.store.GetScheduleSlotByID(slotID)
	if !ok || slot.Status != m.SlotScheduled {
		return false
	}

	s.store.UpdateScheduleSlot(slotID, func(sl *m.ScheduleSlotModel) {
		sl.Status = m.SlotCompleted
	})
	if slot.StudentID != "" {
		s.store.UpdateStudent(slot.StudentID, func(st *studentmodel.StudentModel) {
			st.CompletedLessons++
		})
	}
	return true
}

// Cancel mentransisikan Scheduled → Cancelled. Reason disimpan ke notes
// (menimpa catatan lama) sebagai "Cancelled: <reason>", atau literal
// "Cancelled" kalau tanpa alasan.
func (s *LessonService) Cancel(slotID, reason string) bool {
	slot, ok := s.store.GetScheduleSlotByID(slotID)
	if !ok || slot.Status != m.SlotScheduled {
		return false
	}

	note := "Cancelled"
	if reason != "" {
		note = "Cancelled: " + reason
	}
	s.store.UpdateScheduleSlot(slotID, func(sl *m.ScheduleSlotModel) {
		sl.Status = m.SlotCancelled
		sl.Notes = note
	})
	return true
}

/* =======================================================
   Listing & statistik
   ======================================================= */

// Lessons: slot yang punya kedua referensi, urut hari kanonis
// Monday..Sunday lalu jam. Sort pakai ClockTime, bukan label string,
// supaya label informal macam "4:00pm" ikut terurut benar.
func (s *LessonService) Lessons() []m.ScheduleSlotModel {
	all := s.store.ScheduleSlots()
	lessons := all[:0]
	for _, slot := range all {
		if slot.IsLesson() {
			lessons = append(lessons, slot)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		di, dj := m.WeekdayIndex(lessons[i].Day), m.WeekdayIndex(lessons[j].Day)
		if di != dj {
			return di < dj
		}
		return lessons[i].Time.Before(lessons[j].Time)
	})
	return lessons
}

type LessonStats struct {
	Scheduled int     `json:"scheduled"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"` // sum rate slot Completed, derived
}

func (s *LessonService) Stats() LessonStats {
	return LessonStats{
		Scheduled: s.store.CountSlotsByStatus(m.SlotScheduled),
		Completed: s.store.CountSlotsByStatus(m.SlotCompleted),
		Cancelled: s.store.CountSlotsByStatus(m.SlotCancelled),
		Revenue:   s.store.CompletedRevenue(),
	}
}
