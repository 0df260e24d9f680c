// file: internals/forms/forms.go
package forms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	messagedto "tutorku_backend/internals/features/messages/dto"
	messagemodel "tutorku_backend/internals/features/messages/model"
	paymentdto "tutorku_backend/internals/features/payments/dto"
	paymentmodel "tutorku_backend/internals/features/payments/model"
	scheduledto "tutorku_backend/internals/features/schedule/dto"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	studentdto "tutorku_backend/internals/features/students/dto"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectdto "tutorku_backend/internals/features/subjects/dto"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	teacherdto "tutorku_backend/internals/features/teachers/dto"
	teachermodel "tutorku_backend/internals/features/teachers/model"
)

/* =======================================================
   Submission — kiriman form mentah dari UI

   Values: field name → raw string persis seperti FormData di layar.
   EditingID menentukan rute: kosong = add, terisi = update.
   ======================================================= */

type Kind string

const (
	KindStudent  Kind = "student"
	KindSubject  Kind = "subject"
	KindPayment  Kind = "payment"
	KindMessage  Kind = "message"
	KindSchedule Kind = "schedule"
	KindTeacher  Kind = "teacher"
)

type Submission struct {
	Kind      Kind
	Values    map[string]string
	EditingID string
}

/* =======================================================
   Tagged union per kind

   Pengganti payload any lama: satu varian bertipe per entity,
   router men-dispatch lewat type switch. Varian membawa Create
   ATAU Patch sesuai mode edit.
   ======================================================= */

type Form interface {
	FormKind() Kind
}

type StudentForm struct {
	EditingID string
	Create    *studentdto.CreateStudentRequest
	Patch     *studentdto.PatchStudentRequest
}

func (StudentForm) FormKind() Kind { return KindStudent }

type SubjectForm struct {
	EditingID string
	Create    *subjectdto.CreateSubjectRequest
	Patch     *subjectdto.PatchSubjectRequest
}

func (SubjectForm) FormKind() Kind { return KindSubject }

type PaymentForm struct {
	EditingID string
	Create    *paymentdto.CreatePaymentRequest
	Patch     *paymentdto.PatchPaymentRequest
}

func (PaymentForm) FormKind() Kind { return KindPayment }

type MessageForm struct {
	EditingID string
	Create    *messagedto.CreateMessageRequest
	Patch     *messagedto.PatchMessageRequest
}

func (MessageForm) FormKind() Kind { return KindMessage }

type ScheduleForm struct {
	EditingID string
	Create    *scheduledto.CreateScheduleSlotRequest
	Book      *scheduledto.BookLessonRequest
	Patch     *scheduledto.PatchScheduleSlotRequest
}

func (ScheduleForm) FormKind() Kind { return KindSchedule }

type TeacherForm struct {
	EditingID string
	Create    *teacherdto.CreateTeacherRequest
	Patch     *teacherdto.PatchTeacherRequest
}

func (TeacherForm) FormKind() Kind { return KindTeacher }

/* =======================================================
   Coercion

   rate/duration/amount di-parse float; input rusak jadi NaN dan
   TETAP diteruskan (kelonggaran lama yang dipertahankan — tidak
   ada validation failure untuk angka rusak). subjects di-split
   koma lalu di-trim per token.
   ======================================================= */

func floatField(values map[string]string, key string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(values[key]), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func splitSubjects(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func strPtr(values map[string]string, key string) *string {
	if v, ok := values[key]; ok {
		return &v
	}
	return nil
}

func floatPtr(values map[string]string, key string) *float64 {
	if _, ok := values[key]; ok {
		f := floatField(values, key)
		return &f
	}
	return nil
}

/* =======================================================
   Parse — Submission → varian union
   ======================================================= */

func Parse(sub Submission) (Form, error) {
	switch sub.Kind {
	case KindStudent:
		return parseStudent(sub), nil
	case KindSubject:
		return parseSubject(sub), nil
	case KindPayment:
		return parsePayment(sub), nil
	case KindMessage:
		return parseMessage(sub), nil
	case KindSchedule:
		return parseSchedule(sub), nil
	case KindTeacher:
		return parseTeacher(sub), nil
	default:
		return nil, fmt.Errorf("unknown form kind %q", sub.Kind)
	}
}

func parseStudent(sub Submission) StudentForm {
	v := sub.Values
	if sub.EditingID == "" {
		req := &studentdto.CreateStudentRequest{
			Name:        v["name"],
			Email:       v["email"],
			Phone:       v["phone"],
			Address:     v["address"],
			ParentName:  v["parentName"],
			ParentPhone: v["parentPhone"],
			Grade:       v["grade"],
			Subjects:    splitSubjects(v["subjects"]),
			JoinDate:    v["joinDate"],
		}
		if s, ok := v["status"]; ok && s != "" {
			st := studentmodel.StudentStatus(s)
			req.Status = &st
		}
		return StudentForm{Create: req}
	}

	patch := &studentdto.PatchStudentRequest{
		Name:        strPtr(v, "name"),
		Email:       strPtr(v, "email"),
		Phone:       strPtr(v, "phone"),
		Address:     strPtr(v, "address"),
		ParentName:  strPtr(v, "parentName"),
		ParentPhone: strPtr(v, "parentPhone"),
		Grade:       strPtr(v, "grade"),
		JoinDate:    strPtr(v, "joinDate"),
	}
	if _, ok := v["subjects"]; ok {
		list := splitSubjects(v["subjects"])
		patch.Subjects = &list
	}
	if s, ok := v["status"]; ok && s != "" {
		st := studentmodel.StudentStatus(s)
		patch.Status = &st
	}
	return StudentForm{EditingID: sub.EditingID, Patch: patch}
}

func parseSubject(sub Submission) SubjectForm {
	v := sub.Values
	if sub.EditingID == "" {
		req := &subjectdto.CreateSubjectRequest{
			Name:        v["name"],
			Category:    v["category"],
			Description: v["description"],
			Rate:        floatField(v, "rate"),
			Duration:    floatField(v, "duration"),
		}
		if s, ok := v["status"]; ok && s != "" {
			st := subjectmodel.SubjectStatus(s)
			req.Status = &st
		}
		return SubjectForm{Create: req}
	}

	patch := &subjectdto.PatchSubjectRequest{
		Name:        strPtr(v, "name"),
		Category:    strPtr(v, "category"),
		Description: strPtr(v, "description"),
		Rate:        floatPtr(v, "rate"),
		Duration:    floatPtr(v, "duration"),
	}
	if s, ok := v["status"]; ok && s != "" {
		st := subjectmodel.SubjectStatus(s)
		patch.Status = &st
	}
	return SubjectForm{EditingID: sub.EditingID, Patch: patch}
}

func parsePayment(sub Submission) PaymentForm {
	v := sub.Values
	if sub.EditingID == "" {
		req := &paymentdto.CreatePaymentRequest{
			StudentID:   v["studentId"],
			SubjectID:   v["subjectId"],
			Amount:      floatField(v, "amount"),
			Date:        v["date"],
			Description: v["description"],
			LessonDate:  v["lessonDate"],
		}
		if s, ok := v["status"]; ok && s != "" {
			st := paymentmodel.PaymentStatus(s)
			req.Status = &st
		}
		if s, ok := v["method"]; ok && s != "" {
			mt := paymentmodel.PaymentMethod(s)
			req.Method = &mt
		}
		return PaymentForm{Create: req}
	}

	patch := &paymentdto.PatchPaymentRequest{
		StudentID:   strPtr(v, "studentId"),
		SubjectID:   strPtr(v, "subjectId"),
		Amount:      floatPtr(v, "amount"),
		Date:        strPtr(v, "date"),
		Description: strPtr(v, "description"),
		LessonDate:  strPtr(v, "lessonDate"),
	}
	if s, ok := v["status"]; ok && s != "" {
		st := paymentmodel.PaymentStatus(s)
		patch.Status = &st
	}
	if s, ok := v["method"]; ok && s != "" {
		mt := paymentmodel.PaymentMethod(s)
		patch.Method = &mt
	}
	return PaymentForm{EditingID: sub.EditingID, Patch: patch}
}

func parseMessage(sub Submission) MessageForm {
	v := sub.Values
	if sub.EditingID == "" {
		req := &messagedto.CreateMessageRequest{
			From:    v["from"],
			To:      v["to"],
			Subject: v["subject"],
			Content: v["content"],
			Date:    v["date"],
		}
		if s, ok := v["type"]; ok && s != "" {
			mt := messagemodel.MessageType(s)
			req.Type = &mt
		}
		if s, ok := v["priority"]; ok && s != "" {
			pr := messagemodel.MessagePriority(s)
			req.Priority = &pr
		}
		return MessageForm{Create: req}
	}

	patch := &messagedto.PatchMessageRequest{
		From:    strPtr(v, "from"),
		To:      strPtr(v, "to"),
		Subject: strPtr(v, "subject"),
		Content: strPtr(v, "content"),
		Date:    strPtr(v, "date"),
	}
	if s, ok := v["type"]; ok && s != "" {
		mt := messagemodel.MessageType(s)
		patch.Type = &mt
	}
	if s, ok := v["priority"]; ok && s != "" {
		pr := messagemodel.MessagePriority(s)
		patch.Priority = &pr
	}
	return MessageForm{EditingID: sub.EditingID, Patch: patch}
}

func parseTeacher(sub Submission) TeacherForm {
	v := sub.Values
	if sub.EditingID == "" {
		req := &teacherdto.CreateTeacherRequest{
			Name:      v["name"],
			Email:     v["email"],
			Phone:     v["phone"],
			Address:   v["address"],
			BirthDate: v["birthDate"],
			Avatar:    v["avatar"],
		}
		if s, ok := v["status"]; ok && s != "" {
			st := teachermodel.TeacherStatus(s)
			req.Status = &st
		}
		return TeacherForm{Create: req}
	}

	patch := &teacherdto.PatchTeacherRequest{
		Name:      strPtr(v, "name"),
		Email:     strPtr(v, "email"),
		Phone:     strPtr(v, "phone"),
		Address:   strPtr(v, "address"),
		BirthDate: strPtr(v, "birthDate"),
		Avatar:    strPtr(v, "avatar"),
	}
	if s, ok := v["status"]; ok && s != "" {
		st := teachermodel.TeacherStatus(s)
		patch.Status = &st
	}
	return TeacherForm{EditingID: sub.EditingID, Patch: patch}
}

func parseSchedule(sub Submission) ScheduleForm {
	v := sub.Values
	if sub.EditingID == "" {
		// Kedua referensi terisi → lesson, lewat lifecycle Book.
		// Kalau tidak → slot availability polos.
		if v["studentId"] != "" && v["subjectId"] != "" {
			return ScheduleForm{Book: &scheduledto.BookLessonRequest{
				StudentID: v["studentId"],
				SubjectID: v["subjectId"],
				Day:       v["day"],
				Time:      v["time"],
				Duration:  floatField(v, "duration"),
				Notes:     v["notes"],
			}}
		}
		req := &scheduledto.CreateScheduleSlotRequest{
			Day:       v["day"],
			Time:      v["time"],
			StudentID: v["studentId"],
			SubjectID: v["subjectId"],
			Duration:  floatField(v, "duration"),
			Rate:      floatField(v, "rate"),
			Notes:     v["notes"],
		}
		if s, ok := v["status"]; ok && s != "" {
			st := schedulemodel.SlotStatus(s)
			req.Status = &st
		}
		return ScheduleForm{Create: req}
	}

	patch := &scheduledto.PatchScheduleSlotRequest{
		Day:       strPtr(v, "day"),
		Time:      strPtr(v, "time"),
		StudentID: strPtr(v, "studentId"),
		SubjectID: strPtr(v, "subjectId"),
		Duration:  floatPtr(v, "duration"),
		Rate:      floatPtr(v, "rate"),
		Notes:     strPtr(v, "notes"),
	}
	if s, ok := v["status"]; ok && s != "" {
		st := schedulemodel.SlotStatus(s)
		patch.Status = &st
	}
	return ScheduleForm{EditingID: sub.EditingID, Patch: patch}
}
