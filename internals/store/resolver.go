// file: internals/store/resolver.go
package store

/* =======================================================
   Cross-reference resolver

   Dipakai HANYA saat tulis untuk mengisi field denormalisasi
   (StudentName/SubjectName) pada slot dan payment. Konsumen
   read-time percaya pada nama yang sudah di-cache — tidak ada
   join saat baca, dan tidak ada propagasi kalau entitas acuan
   di-rename.
   ======================================================= */

// ResolveNames mengembalikan display name untuk pasangan id;
// string kosong kalau id tidak ditemukan (atau memang kosong).
func (s *Store) ResolveNames(studentID, subjectID string) (studentName, subjectName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if studentID != "" {
		for i := range s.students {
			if s.students[i].StudentID == studentID {
				studentName = s.students[i].Name
				break
			}
		}
	}
	if subjectID != "" {
		for i := range s.subjects {
			if s.subjects[i].SubjectID == subjectID {
				subjectName = s.subjects[i].Name
				break
			}
		}
	}
	return studentName, subjectName
}
