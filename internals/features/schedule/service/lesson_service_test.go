// file: internals/features/schedule/service/lesson_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"

	"tutorku_backend/internals/features/schedule/dto"
	m "tutorku_backend/internals/features/schedule/model"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/store"
)

type testEnv struct {
	store   *store.Store
	svc     *LessonService
	student studentmodel.StudentModel
	subject subjectmodel.SubjectModel
}

func newTestEnv(t *testing.T, strict bool) testEnv {
	t.Helper()
	st := store.New()
	student := st.AddStudent(studentmodel.StudentModel{
		Name:   "John Smith",
		Status: studentmodel.StudentActive,
	})
	subject := st.AddSubject(subjectmodel.SubjectModel{
		Name:     "Mathematics",
		Rate:     50,
		Duration: 60,
		Status:   subjectmodel.SubjectActive,
	})
	return testEnv{
		store:   st,
		svc:     NewLessonService(st, validator.New(), strict),
		student: student,
		subject: subject,
	}
}

func (e testEnv) book(t *testing.T, day, timeLabel string) m.ScheduleSlotModel {
	t.Helper()
	slot, err := e.svc.Book(&dto.BookLessonRequest{
		StudentID: e.student.StudentID,
		SubjectID: e.subject.SubjectID,
		Day:       day,
		Time:      timeLabel,
	})
	if err != nil {
		t.Fatalf("book %s %s: %v", day, timeLabel, err)
	}
	return slot
}

func TestBookCreatesScheduledSlot(t *testing.T) {
	env := newTestEnv(t, false)
	slot := env.book(t, "Monday", "09:00")

	if slot.Status != m.SlotScheduled {
		t.Fatalf("status = %s, want Scheduled", slot.Status)
	}
	if slot.StudentName != "John Smith" || slot.SubjectName != "Mathematics" {
		t.Fatalf("denormalized names not filled: %q / %q", slot.StudentName, slot.SubjectName)
	}
	if slot.Rate != 50 {
		t.Fatalf("rate = %v, want subject rate 50", slot.Rate)
	}
	if slot.Duration != 60 {
		t.Fatalf("duration = %d, want subject default 60", slot.Duration)
	}

	student, _ := env.store.GetStudentByID(env.student.StudentID)
	subject, _ := env.store.GetSubjectByID(env.subject.SubjectID)
	if student.TotalLessons != 1 || subject.TotalLessons != 1 {
		t.Fatalf("TotalLessons counters: student=%d subject=%d, want 1/1",
			student.TotalLessons, subject.TotalLessons)
	}

	resp := dto.NewScheduleSlotResponse(&slot)
	if resp.Time != "09:00" || resp.Day != m.Monday {
		t.Fatalf("response = %+v", resp)
	}
}

func TestBookRejectsUnknownReferences(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.svc.Book(&dto.BookLessonRequest{
		StudentID: env.student.StudentID,
		SubjectID: "no-such-subject",
		Day:       "Monday",
		Time:      "09:00",
	})
	ve, ok := helper.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["subject_id"] != "unknown subject" {
		t.Fatalf("fields = %v", ve.Fields)
	}
	if _, bad := ve.Fields["student_id"]; bad {
		t.Fatalf("student exists, must not be flagged: %v", ve.Fields)
	}
	if len(env.store.ScheduleSlots()) != 0 {
		t.Fatal("failed booking must not create a slot")
	}
}

func TestBookRejectsBadDayAndTime(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.svc.Book(&dto.BookLessonRequest{
		StudentID: env.student.StudentID,
		SubjectID: env.subject.SubjectID,
		Day:       "Funday",
		Time:      "09:00",
	})
	if _, ok := helper.AsValidationError(err); !ok {
		t.Fatalf("bad day: expected ValidationError, got %v", err)
	}

	_, err = env.svc.Book(&dto.BookLessonRequest{
		StudentID: env.student.StudentID,
		SubjectID: env.subject.SubjectID,
		Day:       "Monday",
		Time:      "25:99",
	})
	if _, ok := helper.AsValidationError(err); !ok {
		t.Fatalf("bad time: expected ValidationError, got %v", err)
	}
}

func TestBookDoubleBooking(t *testing.T) {
	// Default: sel sama boleh dibooking dua kali.
	env := newTestEnv(t, false)
	env.book(t, "Monday", "09:00")
	env.book(t, "Monday", "09:00")
	if got := len(env.store.ScheduleSlots()); got != 2 {
		t.Fatalf("lenient mode: slots = %d, want 2", got)
	}

	// Strict: booking kedua di sel yang sama ditolak ErrConflict.
	strict := newTestEnv(t, true)
	strict.book(t, "Monday", "09:00")
	_, err := strict.svc.Book(&dto.BookLessonRequest{
		StudentID: strict.student.StudentID,
		SubjectID: strict.subject.SubjectID,
		Day:       "Monday",
		Time:      "9:00",
	})
	if !errors.Is(err, helper.ErrConflict) {
		t.Fatalf("strict mode: expected ErrConflict, got %v", err)
	}
	if got := len(strict.store.ScheduleSlots()); got != 1 {
		t.Fatalf("strict mode: slots = %d, want 1", got)
	}
}

func TestCancelledSlotFreesItsCell(t *testing.T) {
	env := newTestEnv(t, true)

	first := env.book(t, "Monday", "09:00")
	if !env.svc.Cancel(first.ScheduleSlotID, "sick") {
		t.Fatal("cancel failed")
	}

	// Sel yang lesson-nya sudah dibatalkan harus bisa dibooking ulang
	// meski strict booking aktif.
	rebooked, err := env.svc.Book(&dto.BookLessonRequest{
		StudentID: env.student.StudentID,
		SubjectID: env.subject.SubjectID,
		Day:       "Monday",
		Time:      "09:00",
	})
	if err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
	if rebooked.Status != m.SlotScheduled {
		t.Fatalf("status = %s", rebooked.Status)
	}

	// Slot Completed juga membebaskan selnya.
	env.svc.Complete(rebooked.ScheduleSlotID)
	if _, err := env.svc.Book(&dto.BookLessonRequest{
		StudentID: env.student.StudentID,
		SubjectID: env.subject.SubjectID,
		Day:       "Monday",
		Time:      "09:00",
	}); err != nil {
		t.Fatalf("rebook after complete: %v", err)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	env := newTestEnv(t, false)
	slot := env.book(t, "Monday", "09:00")

	if !env.svc.Complete(slot.ScheduleSlotID) {
		t.Fatal("first complete should succeed")
	}
	got, _ := env.store.GetScheduleSlotByID(slot.ScheduleSlotID)
	if got.Status != m.SlotCompleted {
		t.Fatalf("status = %s, want Completed", got.Status)
	}

	// Complete kedua no-op: counter tidak naik dua kali.
	if env.svc.Complete(slot.ScheduleSlotID) {
		t.Fatal("second complete should be a no-op")
	}
	student, _ := env.store.GetStudentByID(env.student.StudentID)
	if student.CompletedLessons != 1 {
		t.Fatalf("CompletedLessons = %d, want 1", student.CompletedLessons)
	}

	if env.svc.Complete("no-such-slot") {
		t.Fatal("complete on unknown id should return false")
	}
}

func TestCancelWritesNote(t *testing.T) {
	env := newTestEnv(t, false)

	withReason := env.book(t, "Monday", "09:00")
	if !env.svc.Cancel(withReason.ScheduleSlotID, "sick") {
		t.Fatal("cancel should succeed")
	}
	got, _ := env.store.GetScheduleSlotByID(withReason.ScheduleSlotID)
	if got.Status != m.SlotCancelled {
		t.Fatalf("status = %s, want Cancelled", got.Status)
	}
	if got.Notes != "Cancelled: sick" {
		t.Fatalf("notes = %q, want \"Cancelled: sick\"", got.Notes)
	}

	noReason := env.book(t, "Tuesday", "10:00")
	env.svc.Cancel(noReason.ScheduleSlotID, "")
	got, _ = env.store.GetScheduleSlotByID(noReason.ScheduleSlotID)
	if got.Notes != "Cancelled" {
		t.Fatalf("notes = %q, want \"Cancelled\"", got.Notes)
	}

	// Slot terminal tidak bisa dibatalkan lagi.
	if env.svc.Cancel(withReason.ScheduleSlotID, "again") {
		t.Fatal("cancel on already-cancelled slot should be a no-op")
	}
	got, _ = env.store.GetScheduleSlotByID(withReason.ScheduleSlotID)
	if got.Notes != "Cancelled: sick" {
		t.Fatalf("note overwritten by no-op cancel: %q", got.Notes)
	}
}

func TestRevenueEqualsRateAfterComplete(t *testing.T) {
	env := newTestEnv(t, false)
	slot := env.book(t, "Wednesday", "11:00")
	env.svc.Complete(slot.ScheduleSlotID)

	stats := env.svc.Stats()
	if stats.Revenue != env.subject.Rate {
		t.Fatalf("revenue = %v, want subject rate %v", stats.Revenue, env.subject.Rate)
	}
	if stats.Completed != 1 || stats.Scheduled != 0 || stats.Cancelled != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestLessonsSortedByDayThenTime(t *testing.T) {
	env := newTestEnv(t, false)

	// Sengaja masuk acak; "4:00pm" harus terurut setelah 09:00 hari yang sama.
	env.book(t, "Tuesday", "10:00")
	env.book(t, "Monday", "4:00pm")
	env.book(t, "Monday", "09:00")
	env.store.AddScheduleSlot(m.ScheduleSlotModel{
		Day: m.Sunday, Time: helper.MustClockTime("08:00"),
		Status: m.SlotAvailable,
	})

	lessons := env.svc.Lessons()
	if len(lessons) != 3 {
		t.Fatalf("lessons = %d, want 3 (availability slot excluded)", len(lessons))
	}
	wantOrder := []string{"Monday 09:00", "Monday 16:00", "Tuesday 10:00"}
	for i, want := range wantOrder {
		got := string(lessons[i].Day) + " " + lessons[i].Time.String()
		if got != want {
			t.Fatalf("lessons[%d] = %s, want %s", i, got, want)
		}
	}
}
