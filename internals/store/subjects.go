// file: internals/store/subjects.go
package store

import (
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	helper "tutorku_backend/internals/helpers"
)

func (s *Store) AddSubject(sub subjectmodel.SubjectModel) subjectmodel.SubjectModel {
	sub.SubjectID = helper.NewID()

	s.mu.Lock()
	s.subjects = append(s.subjects, sub)
	s.mu.Unlock()
	return sub
}

func (s *Store) GetSubjectByID(id string) (subjectmodel.SubjectModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subjects {
		if s.subjects[i].SubjectID == id {
			return s.subjects[i], true
		}
	}
	return subjectmodel.SubjectModel{}, false
}

func (s *Store) UpdateSubject(id string, apply func(*subjectmodel.SubjectModel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subjects {
		if s.subjects[i].SubjectID == id {
			apply(&s.subjects[i])
			return true
		}
	}
	return false
}

// DeleteSubject meng-cascade ke slot saja. Payment yang mereferensikan
// subject terhapus SENGAJA dibiarkan — asimetri lama yang dipertahankan
// (payment adalah catatan finansial, jejaknya tetap dibutuhkan).
func (s *Store) DeleteSubject(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.subjects {
		if s.subjects[i].SubjectID == id {
			s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)
			found = true
			break
		}
	}
	slotsTouched := false
	if found {
		kept := s.scheduleSlots[:0]
		for _, slot := range s.scheduleSlots {
			if slot.SubjectID == id {
				slotsTouched = true
				continue
			}
			kept = append(kept, slot)
		}
		s.scheduleSlots = kept
	}
	s.mu.Unlock()

	if slotsTouched {
		s.notifyScheduleChanged()
	}
	return found
}

func (s *Store) Subjects() []subjectmodel.SubjectModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]subjectmodel.SubjectModel(nil), s.subjects...)
}
