// file: internals/store/snapshot.go
package store

import (
	"encoding/json"
	"fmt"
	"os"

	messagemodel "tutorku_backend/internals/features/messages/model"
	paymentmodel "tutorku_backend/internals/features/payments/model"
	reportmodel "tutorku_backend/internals/features/reports/model"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	teachermodel "tutorku_backend/internals/features/teachers/model"
)

/* =======================================================
   Snapshot — skema serialisasi JSON seluruh state

   State tetap process-lifetime; snapshot hanya ekspor/impor
   eksplisit (backup / seed antar sesi), bukan layer persistensi.
   ======================================================= */

type Snapshot struct {
	Students       []studentmodel.StudentModel       `json:"students"`
	Subjects       []subjectmodel.SubjectModel       `json:"subjects"`
	Payments       []paymentmodel.PaymentModel       `json:"payments"`
	Messages       []messagemodel.MessageModel       `json:"messages"`
	ScheduleSlots  []schedulemodel.ScheduleSlotModel `json:"schedule_slots"`
	Reports        []reportmodel.ReportModel         `json:"reports"`
	Teachers       []teachermodel.TeacherModel       `json:"teachers"`
	Qualifications []teachermodel.QualificationModel `json:"qualifications"`
}

func (s *Store) Export() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Students:       append([]studentmodel.StudentModel(nil), s.students...),
		Subjects:       append([]subjectmodel.SubjectModel(nil), s.subjects...),
		Payments:       append([]paymentmodel.PaymentModel(nil), s.payments...),
		Messages:       append([]messagemodel.MessageModel(nil), s.messages...),
		ScheduleSlots:  append([]schedulemodel.ScheduleSlotModel(nil), s.scheduleSlots...),
		Reports:        append([]reportmodel.ReportModel(nil), s.reports...),
		Teachers:       append([]teachermodel.TeacherModel(nil), s.teachers...),
		Qualifications: append([]teachermodel.QualificationModel(nil), s.qualifications...),
	}
}

// Import mengganti seluruh state dengan isi snapshot (id dipertahankan).
func (s *Store) Import(snap Snapshot) {
	s.mu.Lock()
	s.students = append([]studentmodel.StudentModel(nil), snap.Students...)
	s.subjects = append([]subjectmodel.SubjectModel(nil), snap.Subjects...)
	s.payments = append([]paymentmodel.PaymentModel(nil), snap.Payments...)
	s.messages = append([]messagemodel.MessageModel(nil), snap.Messages...)
	s.scheduleSlots = append([]schedulemodel.ScheduleSlotModel(nil), snap.ScheduleSlots...)
	s.reports = append([]reportmodel.ReportModel(nil), snap.Reports...)
	s.teachers = append([]teachermodel.TeacherModel(nil), snap.Teachers...)
	s.qualifications = append([]teachermodel.QualificationModel(nil), snap.Qualifications...)
	s.mu.Unlock()

	s.notifyScheduleChanged()
}

func (s *Store) SaveSnapshot(path string) error {
	b, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *Store) LoadSnapshot(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	s.Import(snap)
	return nil
}
