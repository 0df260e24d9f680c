// file: internals/seeds/runner.go
package seeds

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	messagemodel "tutorku_backend/internals/features/messages/model"
	paymentmodel "tutorku_backend/internals/features/payments/model"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	teachermodel "tutorku_backend/internals/features/teachers/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/store"
)

/* =======================================================
   Seed fixture YAML

   Referensi antar entitas pakai key simbolik (bukan id), karena
   id baru di-assign store saat insert. Runner memetakan key → id
   setelah tiap koleksi masuk.
   ======================================================= */

type seedStudent struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Phone       string   `yaml:"phone"`
	Address     string   `yaml:"address"`
	ParentName  string   `yaml:"parent_name"`
	ParentPhone string   `yaml:"parent_phone"`
	Grade       string   `yaml:"grade"`
	Subjects    []string `yaml:"subjects"` // key subject
	Status      string   `yaml:"status"`
	JoinDate    string   `yaml:"join_date"`

	TotalLessons     int     `yaml:"total_lessons"`
	CompletedLessons int     `yaml:"completed_lessons"`
	TotalPaid        float64 `yaml:"total_paid"`
	PendingAmount    float64 `yaml:"pending_amount"`
}

type seedSubject struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Rate        float64 `yaml:"rate"`
	Duration    int     `yaml:"duration"`
	Status      string  `yaml:"status"`

	TotalStudents int `yaml:"total_students"`
	TotalLessons  int `yaml:"total_lessons"`
}

type seedPayment struct {
	Student     string  `yaml:"student"` // key
	Subject     string  `yaml:"subject"` // key
	Amount      float64 `yaml:"amount"`
	Date        string  `yaml:"date"`
	Status      string  `yaml:"status"`
	Method      string  `yaml:"method"`
	Description string  `yaml:"description"`
	LessonDate  string  `yaml:"lesson_date"`
}

type seedMessage struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Subject  string `yaml:"subject"`
	Content  string `yaml:"content"`
	Date     string `yaml:"date"`
	Read     bool   `yaml:"read"`
	Type     string `yaml:"type"`
	Priority string `yaml:"priority"`
}

type seedSlot struct {
	Day      string  `yaml:"day"`
	Time     string  `yaml:"time"`
	Status   string  `yaml:"status"`
	Student  string  `yaml:"student"` // key, opsional
	Subject  string  `yaml:"subject"` // key, opsional
	Duration int     `yaml:"duration"`
	Rate     float64 `yaml:"rate"`
	Notes    string  `yaml:"notes"`
}

type seedTeacher struct {
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Address   string `yaml:"address"`
	Status    string `yaml:"status"`
	BirthDate string `yaml:"birth_date"`
}

type seedQualification struct {
	Name string  `yaml:"name"`
	Rate float64 `yaml:"rate"`
	Type string  `yaml:"type"`
}

type seedFile struct {
	Students       []seedStudent       `yaml:"students"`
	Subjects       []seedSubject       `yaml:"subjects"`
	Payments       []seedPayment       `yaml:"payments"`
	Messages       []seedMessage       `yaml:"messages"`
	ScheduleSlots  []seedSlot          `yaml:"schedule_slots"`
	Teachers       []seedTeacher       `yaml:"teachers"`
	Qualifications []seedQualification `yaml:"qualifications"`
}

/* =======================================================
   Runner
   ======================================================= */

func RunAllSeeds(st *store.Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var data seedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	// Subjects dulu — students dan slots mereferensikan key-nya.
	subjectIDs := make(map[string]string, len(data.Subjects))
	for _, s := range data.Subjects {
		created := st.AddSubject(subjectmodel.SubjectModel{
			Name:          s.Name,
			Category:      s.Category,
			Description:   s.Description,
			Rate:          s.Rate,
			Duration:      s.Duration,
			Status:        subjectStatus(s.Status),
			TotalStudents: s.TotalStudents,
			TotalLessons:  s.TotalLessons,
		})
		subjectIDs[s.Key] = created.SubjectID
	}

	studentIDs := make(map[string]string, len(data.Students))
	for _, s := range data.Students {
		subjects := make([]string, 0, len(s.Subjects))
		for _, key := range s.Subjects {
			if id, ok := subjectIDs[key]; ok {
				subjects = append(subjects, id)
			} else {
				log.Printf("⚠️  seed: student %q refers to unknown subject key %q", s.Key, key)
			}
		}
		created := st.AddStudent(studentmodel.StudentModel{
			Name:             s.Name,
			Email:            s.Email,
			Phone:            s.Phone,
			Address:          s.Address,
			ParentName:       s.ParentName,
			ParentPhone:      s.ParentPhone,
			Grade:            s.Grade,
			Subjects:         subjects,
			Status:           studentStatus(s.Status),
			JoinDate:         s.JoinDate,
			TotalLessons:     s.TotalLessons,
			CompletedLessons: s.CompletedLessons,
			TotalPaid:        s.TotalPaid,
			PendingAmount:    s.PendingAmount,
		})
		studentIDs[s.Key] = created.StudentID
	}

	for _, p := range data.Payments {
		studentID, ok := studentIDs[p.Student]
		if !ok && p.Student != "" {
			log.Printf("⚠️  seed: payment refers to unknown student key %q", p.Student)
		}
		subjectID, ok := subjectIDs[p.Subject]
		if !ok && p.Subject != "" {
			log.Printf("⚠️  seed: payment refers to unknown subject key %q", p.Subject)
		}
		studentName, subjectName := st.ResolveNames(studentID, subjectID)
		st.AddPayment(paymentmodel.PaymentModel{
			StudentID:   studentID,
			StudentName: studentName,
			SubjectID:   subjectID,
			SubjectName: subjectName,
			Amount:      p.Amount,
			Date:        p.Date,
			Status:      paymentmodel.PaymentStatus(p.Status),
			Method:      paymentmodel.PaymentMethod(p.Method),
			Description: p.Description,
			LessonDate:  p.LessonDate,
		})
	}

	for _, msg := range data.Messages {
		st.AddMessage(messagemodel.MessageModel{
			From:     msg.From,
			To:       msg.To,
			Subject:  msg.Subject,
			Content:  msg.Content,
			Date:     msg.Date,
			Read:     msg.Read,
			Type:     messagemodel.MessageType(msg.Type),
			Priority: messagemodel.MessagePriority(msg.Priority),
		})
	}

	for _, slot := range data.ScheduleSlots {
		day, ok := schedulemodel.ParseWeekday(slot.Day)
		if !ok {
			return fmt.Errorf("seed: invalid day %q", slot.Day)
		}
		clock, err := helper.ParseClockTime(slot.Time)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		studentID, ok := studentIDs[slot.Student]
		if !ok && slot.Student != "" {
			log.Printf("⚠️  seed: slot %s %s refers to unknown student key %q", slot.Day, slot.Time, slot.Student)
		}
		subjectID, ok := subjectIDs[slot.Subject]
		if !ok && slot.Subject != "" {
			log.Printf("⚠️  seed: slot %s %s refers to unknown subject key %q", slot.Day, slot.Time, slot.Subject)
		}
		studentName, subjectName := st.ResolveNames(studentID, subjectID)
		st.AddScheduleSlot(schedulemodel.ScheduleSlotModel{
			Day:         day,
			Time:        clock,
			Status:      slotStatus(slot.Status),
			StudentID:   studentID,
			StudentName: studentName,
			SubjectID:   subjectID,
			SubjectName: subjectName,
			Duration:    slot.Duration,
			Rate:        slot.Rate,
			Notes:       slot.Notes,
		})
	}

	for _, t := range data.Teachers {
		st.AddTeacher(teachermodel.TeacherModel{
			Name:      t.Name,
			Email:     t.Email,
			Phone:     t.Phone,
			Address:   t.Address,
			Status:    teacherStatus(t.Status),
			BirthDate: t.BirthDate,
		})
	}
	for _, q := range data.Qualifications {
		st.AddQualification(teachermodel.QualificationModel{
			Name: q.Name,
			Rate: q.Rate,
			Type: teachermodel.QualificationType(q.Type),
		})
	}

	log.Printf("✅ Seed selesai: %d students, %d subjects, %d payments, %d messages, %d slots",
		len(data.Students), len(data.Subjects), len(data.Payments), len(data.Messages), len(data.ScheduleSlots))
	return nil
}

/* =======================================================
   Enum fallback — fixture boleh kosongkan status
   ======================================================= */

func studentStatus(s string) studentmodel.StudentStatus {
	if s == "" {
		return studentmodel.StudentActive
	}
	return studentmodel.StudentStatus(s)
}

func subjectStatus(s string) subjectmodel.SubjectStatus {
	if s == "" {
		return subjectmodel.SubjectActive
	}
	return subjectmodel.SubjectStatus(s)
}

func slotStatus(s string) schedulemodel.SlotStatus {
	if s == "" {
		return schedulemodel.SlotAvailable
	}
	return schedulemodel.SlotStatus(s)
}

func teacherStatus(s string) teachermodel.TeacherStatus {
	if s == "" {
		return teachermodel.TeacherActive
	}
	return teachermodel.TeacherStatus(s)
}
