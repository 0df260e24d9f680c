// file: internals/forms/router_test.go
package forms

import (
	"math"
	"testing"

	"github.com/go-playground/validator/v10"

	schedulemodel "tutorku_backend/internals/features/schedule/model"
	scheduleservice "tutorku_backend/internals/features/schedule/service"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	teachermodel "tutorku_backend/internals/features/teachers/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/store"
)

func newRouterEnv(t *testing.T) (*store.Store, *Router) {
	t.Helper()
	st := store.New()
	v := validator.New()
	lessons := scheduleservice.NewLessonService(st, v, false)
	return st, NewRouter(st, lessons, v)
}

func studentValues() map[string]string {
	return map[string]string{
		"name":        "Liam Chen",
		"email":       "liam.chen@email.com",
		"phone":       "(555) 345-6789",
		"address":     "789 Pine St, City, State",
		"parentName":  "Wei Chen",
		"parentPhone": "(555) 345-6790",
		"grade":       "9th Grade",
		"subjects":    "math, physics , ",
		"joinDate":    "2024-03-01",
	}
}

/* =======================================================
   Coercion
   ======================================================= */

func TestParseCoercesNumericFields(t *testing.T) {
	form, err := Parse(Submission{Kind: KindSubject, Values: map[string]string{
		"name":     "Mathematics",
		"category": "Science",
		"rate":     "50",
		"duration": "60",
	}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sf := form.(SubjectForm)
	if sf.Create.Rate != 50 || sf.Create.Duration != 60 {
		t.Fatalf("rate=%v duration=%v", sf.Create.Rate, sf.Create.Duration)
	}
}

func TestParseMalformedNumberBecomesNaN(t *testing.T) {
	// Angka rusak tidak memicu validation failure — diteruskan sebagai NaN.
	form, err := Parse(Submission{Kind: KindSubject, Values: map[string]string{
		"name":     "Mathematics",
		"category": "Science",
		"rate":     "fifty",
		"duration": "60",
	}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sf := form.(SubjectForm)
	if !math.IsNaN(sf.Create.Rate) {
		t.Fatalf("rate = %v, want NaN", sf.Create.Rate)
	}
}

func TestParseSplitsSubjects(t *testing.T) {
	form, _ := Parse(Submission{Kind: KindStudent, Values: studentValues()})
	sf := form.(StudentForm)
	want := []string{"math", "physics"}
	if len(sf.Create.Subjects) != len(want) {
		t.Fatalf("subjects = %v, want %v", sf.Create.Subjects, want)
	}
	for i := range want {
		if sf.Create.Subjects[i] != want[i] {
			t.Fatalf("subjects = %v, want %v", sf.Create.Subjects, want)
		}
	}
}

func TestParseUnknownKind(t *testing.T) {
	if _, err := Parse(Submission{Kind: Kind("teacher")}); err == nil {
		t.Fatal("unknown kind must error")
	}
}

/* =======================================================
   Routing add vs update
   ======================================================= */

func TestSubmitCreateStudent(t *testing.T) {
	st, r := newRouterEnv(t)

	res, err := r.Submit(Submission{Kind: KindStudent, Values: studentValues()})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Created || !res.Applied || res.ID == "" {
		t.Fatalf("result = %+v", res)
	}

	got, found := st.GetStudentByID(res.ID)
	if !found {
		t.Fatal("student not in store")
	}
	if got.Name != "Liam Chen" || got.Status != studentmodel.StudentActive {
		t.Fatalf("stored student = %+v", got)
	}
	if got.TotalLessons != 0 || got.TotalPaid != 0 {
		t.Fatalf("create must zero the counters: %+v", got)
	}
}

func TestSubmitCreateStudentValidationFailure(t *testing.T) {
	st, r := newRouterEnv(t)

	values := studentValues()
	values["email"] = "not-an-email"
	_, err := r.Submit(Submission{Kind: KindStudent, Values: values})
	ve, ok := helper.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, flagged := ve.Fields["Email"]; !flagged {
		t.Fatalf("fields = %v", ve.Fields)
	}
	if st.StudentCount() != 0 {
		t.Fatal("failed submit must not create a student")
	}
}

func TestSubmitPatchKeepsUnsetFields(t *testing.T) {
	st, r := newRouterEnv(t)
	created := st.AddStudent(studentmodel.StudentModel{
		Name:   "John Smith",
		Email:  "john@email.com",
		Phone:  "(555) 123-4567",
		Grade:  "10th Grade",
		Status: studentmodel.StudentActive,
	})

	// Hanya phone yang dikirim — field lain harus utuh.
	res, err := r.Submit(Submission{
		Kind:      KindStudent,
		EditingID: created.StudentID,
		Values:    map[string]string{"phone": "(555) 999-9999"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Created || !res.Applied {
		t.Fatalf("result = %+v", res)
	}

	got, _ := st.GetStudentByID(created.StudentID)
	if got.Phone != "(555) 999-9999" {
		t.Fatalf("phone = %q", got.Phone)
	}
	if got.Name != "John Smith" || got.Email != "john@email.com" || got.Grade != "10th Grade" {
		t.Fatalf("unset fields changed: %+v", got)
	}
}

func TestSubmitPatchUnknownIDIsNoop(t *testing.T) {
	_, r := newRouterEnv(t)
	res, err := r.Submit(Submission{
		Kind:      KindStudent,
		EditingID: "no-such-id",
		Values:    map[string]string{"name": "Ghost"},
	})
	if err != nil {
		t.Fatalf("unknown target should not error: %v", err)
	}
	if res.Applied {
		t.Fatalf("result = %+v, want Applied false", res)
	}
}

func TestSubmitCreateAndPatchTeacher(t *testing.T) {
	st, r := newRouterEnv(t)

	res, err := r.Submit(Submission{Kind: KindTeacher, Values: map[string]string{
		"name":      "Sarah Miller",
		"email":     "sarah.miller@email.com",
		"phone":     "(555) 987-6543",
		"address":   "12 River Rd, City, State",
		"birthDate": "1988-04-12",
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.Created || res.ID == "" {
		t.Fatalf("result = %+v", res)
	}

	got, found := st.GetTeacherByID(res.ID)
	if !found {
		t.Fatal("teacher not in store")
	}
	if got.Name != "Sarah Miller" || got.Status != teachermodel.TeacherActive {
		t.Fatalf("stored teacher = %+v", got)
	}

	// Patch hanya phone — field lain utuh.
	patched, err := r.Submit(Submission{
		Kind:      KindTeacher,
		EditingID: res.ID,
		Values:    map[string]string{"phone": "(555) 111-2222"},
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Created || !patched.Applied {
		t.Fatalf("result = %+v", patched)
	}
	got, _ = st.GetTeacherByID(res.ID)
	if got.Phone != "(555) 111-2222" || got.Email != "sarah.miller@email.com" {
		t.Fatalf("patched teacher = %+v", got)
	}
}

func TestSubmitTeacherValidationFailure(t *testing.T) {
	st, r := newRouterEnv(t)
	_, err := r.Submit(Submission{Kind: KindTeacher, Values: map[string]string{
		"name":    "Sarah Miller",
		"email":   "not-an-email",
		"phone":   "(555) 987-6543",
		"address": "12 River Rd",
	}})
	if _, ok := helper.AsValidationError(err); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(st.Teachers()) != 0 {
		t.Fatal("failed submit must not create a teacher")
	}
}

/* =======================================================
   Enrich-on-write
   ======================================================= */

func TestSubmitPaymentResolvesNames(t *testing.T) {
	st, r := newRouterEnv(t)
	student := st.AddStudent(studentmodel.StudentModel{Name: "Emma Johnson", Status: studentmodel.StudentActive})
	subject := st.AddSubject(subjectmodel.SubjectModel{Name: "Chemistry", Rate: 50, Status: subjectmodel.SubjectActive})

	res, err := r.Submit(Submission{Kind: KindPayment, Values: map[string]string{
		"studentId":   student.StudentID,
		"subjectId":   subject.SubjectID,
		"amount":      "180",
		"date":        "2024-02-01",
		"status":      "Pending",
		"method":      "Cash",
		"description": "Monthly tuition - February",
	}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	got, _ := st.GetPaymentByID(res.ID)
	if got.StudentName != "Emma Johnson" || got.SubjectName != "Chemistry" {
		t.Fatalf("names not enriched: %q / %q", got.StudentName, got.SubjectName)
	}
	if got.Amount != 180 {
		t.Fatalf("amount = %v", got.Amount)
	}
}

func TestSubmitPaymentPatchReResolvesNames(t *testing.T) {
	st, r := newRouterEnv(t)
	emma := st.AddStudent(studentmodel.StudentModel{Name: "Emma Johnson", Status: studentmodel.StudentActive})
	john := st.AddStudent(studentmodel.StudentModel{Name: "John Smith", Status: studentmodel.StudentActive})
	subject := st.AddSubject(subjectmodel.SubjectModel{Name: "Chemistry", Rate: 50, Status: subjectmodel.SubjectActive})

	res, err := r.Submit(Submission{Kind: KindPayment, Values: map[string]string{
		"studentId":   emma.StudentID,
		"subjectId":   subject.SubjectID,
		"amount":      "180",
		"date":        "2024-02-01",
		"description": "Monthly tuition",
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Ganti referensi murid — nama denormalisasi ikut di-resolve ulang.
	if _, err := r.Submit(Submission{
		Kind:      KindPayment,
		EditingID: res.ID,
		Values:    map[string]string{"studentId": john.StudentID},
	}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, _ := st.GetPaymentByID(res.ID)
	if got.StudentName != "John Smith" {
		t.Fatalf("student name = %q, want re-resolved", got.StudentName)
	}
	if got.Amount != 180 || got.Description != "Monthly tuition" {
		t.Fatalf("unset fields changed: %+v", got)
	}
}

/* =======================================================
   Schedule: book vs plain slot
   ======================================================= */

func TestSubmitScheduleRoutesToBooking(t *testing.T) {
	st, r := newRouterEnv(t)
	student := st.AddStudent(studentmodel.StudentModel{Name: "John Smith", Status: studentmodel.StudentActive})
	subject := st.AddSubject(subjectmodel.SubjectModel{Name: "Mathematics", Rate: 50, Duration: 60, Status: subjectmodel.SubjectActive})

	res, err := r.Submit(Submission{Kind: KindSchedule, Values: map[string]string{
		"studentId": student.StudentID,
		"subjectId": subject.SubjectID,
		"day":       "Monday",
		"time":      "09:00",
	}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	slot, _ := st.GetScheduleSlotByID(res.ID)
	if slot.Status != schedulemodel.SlotScheduled {
		t.Fatalf("status = %s, want Scheduled via booking path", slot.Status)
	}
	if slot.Rate != 50 || slot.StudentName != "John Smith" {
		t.Fatalf("booking enrichment missing: %+v", slot)
	}
	gotStudent, _ := st.GetStudentByID(student.StudentID)
	if gotStudent.TotalLessons != 1 {
		t.Fatalf("TotalLessons = %d, want booking side effect", gotStudent.TotalLessons)
	}
}

func TestSubmitScheduleWithoutRefsCreatesAvailability(t *testing.T) {
	st, r := newRouterEnv(t)

	res, err := r.Submit(Submission{Kind: KindSchedule, Values: map[string]string{
		"day":  "Friday",
		"time": "4:00pm",
	}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	slot, _ := st.GetScheduleSlotByID(res.ID)
	if slot.Status != schedulemodel.SlotAvailable {
		t.Fatalf("status = %s, want Available", slot.Status)
	}
	if slot.Time.String() != "16:00" {
		t.Fatalf("time = %q, want normalized 16:00", slot.Time.String())
	}
	if slot.IsLesson() {
		t.Fatal("availability slot must not be a lesson")
	}
}

func TestSubmitScheduleBookingUnknownSubject(t *testing.T) {
	st, r := newRouterEnv(t)
	student := st.AddStudent(studentmodel.StudentModel{Name: "John Smith", Status: studentmodel.StudentActive})

	_, err := r.Submit(Submission{Kind: KindSchedule, Values: map[string]string{
		"studentId": student.StudentID,
		"subjectId": "no-such-subject",
		"day":       "Monday",
		"time":      "09:00",
	}})
	ve, ok := helper.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["subject_id"] != "unknown subject" {
		t.Fatalf("fields = %v", ve.Fields)
	}
	if len(st.ScheduleSlots()) != 0 {
		t.Fatal("failed booking must not create a slot")
	}
}
