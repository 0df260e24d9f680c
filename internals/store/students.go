// file: internals/store/students.go
package store

import (
	studentmodel "tutorku_backend/internals/features/students/model"
	helper "tutorku_backend/internals/helpers"
)

func (s *Store) AddStudent(st studentmodel.StudentModel) studentmodel.StudentModel {
	st.StudentID = helper.NewID()
	if st.Subjects == nil {
		st.Subjects = []string{}
	}

	s.mu.Lock()
	s.students = append(s.students, st)
	s.mu.Unlock()
	return st
}

func (s *Store) GetStudentByID(id string) (studentmodel.StudentModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].StudentID == id {
			return s.students[i], true
		}
	}
	return studentmodel.StudentModel{}, false
}

// UpdateStudent menerapkan mutator pada murid yang cocok; field yang tidak
// disentuh mutator tetap utuh (merge parsial). false kalau id tidak ada.
func (s *Store) UpdateStudent(id string, apply func(*studentmodel.StudentModel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].StudentID == id {
			apply(&s.students[i])
			return true
		}
	}
	return false
}

// DeleteStudent: hard delete + cascade — semua slot dan payment yang
// mereferensikan murid ini ikut terhapus.
func (s *Store) DeleteStudent(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.students {
		if s.students[i].StudentID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			found = true
			break
		}
	}
	slotsTouched := false
	if found {
		kept := s.scheduleSlots[:0]
		for _, slot := range s.scheduleSlots {
			if slot.StudentID == id {
				slotsTouched = true
				continue
			}
			kept = append(kept, slot)
		}
		s.scheduleSlots = kept

		keptPayments := s.payments[:0]
		for _, p := range s.payments {
			if p.StudentID == id {
				continue
			}
			keptPayments = append(keptPayments, p)
		}
		s.payments = keptPayments
	}
	s.mu.Unlock()

	if slotsTouched {
		s.notifyScheduleChanged()
	}
	return found
}

func (s *Store) Students() []studentmodel.StudentModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]studentmodel.StudentModel(nil), s.students...)
}
