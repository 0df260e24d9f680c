// file: internals/store/teachers.go
package store

import (
	teachermodel "tutorku_backend/internals/features/teachers/model"
	helper "tutorku_backend/internals/helpers"
)

func (s *Store) AddTeacher(t teachermodel.TeacherModel) teachermodel.TeacherModel {
	t.TeacherID = helper.NewID()

	s.mu.Lock()
	s.teachers = append(s.teachers, t)
	s.mu.Unlock()
	return t
}

func (s *Store) GetTeacherByID(id string) (teachermodel.TeacherModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.teachers {
		if s.teachers[i].TeacherID == id {
			return s.teachers[i], true
		}
	}
	return teachermodel.TeacherModel{}, false
}

func (s *Store) UpdateTeacher(id string, apply func(*teachermodel.TeacherModel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.teachers {
		if s.teachers[i].TeacherID == id {
			apply(&s.teachers[i])
			return true
		}
	}
	return false
}

func (s *Store) DeleteTeacher(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.teachers {
		if s.teachers[i].TeacherID == id {
			s.teachers = append(s.teachers[:i], s.teachers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Teachers() []teachermodel.TeacherModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]teachermodel.TeacherModel(nil), s.teachers...)
}

/* =======================================================
   Qualifications
   ======================================================= */

func (s *Store) AddQualification(q teachermodel.QualificationModel) teachermodel.QualificationModel {
	q.QualificationID = helper.NewID()

	s.mu.Lock()
	s.qualifications = append(s.qualifications, q)
	s.mu.Unlock()
	return q
}

func (s *Store) UpdateQualification(id string, apply func(*teachermodel.QualificationModel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.qualifications {
		if s.qualifications[i].QualificationID == id {
			apply(&s.qualifications[i])
			return true
		}
	}
	return false
}

func (s *Store) DeleteQualification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.qualifications {
		if s.qualifications[i].QualificationID == id {
			s.qualifications = append(s.qualifications[:i], s.qualifications[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Qualifications() []teachermodel.QualificationModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]teachermodel.QualificationModel(nil), s.qualifications...)
}
