// file: internals/store/store.go
package store

import (
	"sync"

	messagemodel "tutorku_backend/internals/features/messages/model"
	paymentmodel "tutorku_backend/internals/features/payments/model"
	reportmodel "tutorku_backend/internals/features/reports/model"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	studentmodel "tutorku_backend/internals/features/students/model"
	subjectmodel "tutorku_backend/internals/features/subjects/model"
	teachermodel "tutorku_backend/internals/features/teachers/model"
)

/* =======================================================
   Store — seluruh state aplikasi dalam memori

   Semua koleksi slice polos, operasi linear scan — ukuran
   koleksi puluhan sampai ratusan, tidak perlu index.
   Mutasi diserialisasi lewat satu mutex; listener schedule
   dipanggil di luar lock dengan salinan koleksi.

   Mutasi pada id yang tidak ada adalah no-op, bukan error
   (delete idempoten).
   ======================================================= */

type ScheduleListener func([]schedulemodel.ScheduleSlotModel)

type Store struct {
	mu sync.Mutex

	students       []studentmodel.StudentModel
	subjects       []subjectmodel.SubjectModel
	payments       []paymentmodel.PaymentModel
	messages       []messagemodel.MessageModel
	scheduleSlots  []schedulemodel.ScheduleSlotModel
	reports        []reportmodel.ReportModel
	teachers       []teachermodel.TeacherModel
	qualifications []teachermodel.QualificationModel

	scheduleListeners []ScheduleListener
}

func New() *Store {
	return &Store{}
}

/* =======================================================
   Observer: kanal Core → UI

   Setiap mutasi yang menyentuh koleksi slot mem-publish
   salinan koleksi terkini; dipakai layar profil untuk
   me-mirror schedule keluar.
   ======================================================= */

func (s *Store) OnScheduleChange(fn ScheduleListener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.scheduleListeners = append(s.scheduleListeners, fn)
	s.mu.Unlock()
}

// notifyScheduleChanged dipanggil TANPA memegang lock.
func (s *Store) notifyScheduleChanged() {
	s.mu.Lock()
	listeners := append([]ScheduleListener(nil), s.scheduleListeners...)
	snapshot := append([]schedulemodel.ScheduleSlotModel(nil), s.scheduleSlots...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
