// file: internals/store/derived.go
package store

import (
	paymentmodel "tutorku_backend/internals/features/payments/model"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
)

/* =======================================================
   Agregat turunan — fungsi murni di atas koleksi

   Counter inkremental di Student/Subject bisa drift kalau ada
   koreksi administratif; angka di sini selalu dihitung ulang
   dari sumber dan jadi acuan report & statistik layar Lessons.
   ======================================================= */

func (s *Store) CountSlotsByStatus(status schedulemodel.SlotStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].Status == status {
			n++
		}
	}
	return n
}

func (s *Store) CountPaymentsByStatus(status paymentmodel.PaymentStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.payments {
		if s.payments[i].Status == status {
			n++
		}
	}
	return n
}

// PaidTotal: sum amount semua payment Paid (revenue versi pembayaran).
func (s *Store) PaidTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for i := range s.payments {
		if s.payments[i].Status == paymentmodel.PaymentPaid {
			sum += s.payments[i].Amount
		}
	}
	return sum
}

// CompletedRevenue: sum rate semua slot Completed (revenue versi lesson,
// diturunkan saat query — complete tidak menyentuh state payment).
func (s *Store) CompletedRevenue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].Status == schedulemodel.SlotCompleted {
			sum += s.scheduleSlots[i].Rate
		}
	}
	return sum
}

// AggregateSnapshot: seluruh angka laporan dalam satu lock, supaya
// report memotret state pada satu titik waktu, bukan lima baca terpisah.
type AggregateSnapshot struct {
	Students         int
	Subjects         int
	CompletedLessons int
	PendingPayments  int
	PaidTotal        float64
}

func (s *Store) Aggregates() AggregateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := AggregateSnapshot{
		Students: len(s.students),
		Subjects: len(s.subjects),
	}
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].Status == schedulemodel.SlotCompleted {
			agg.CompletedLessons++
		}
	}
	for i := range s.payments {
		if s.payments[i].Status == paymentmodel.PaymentPending {
			agg.PendingPayments++
		}
		if s.payments[i].Status == paymentmodel.PaymentPaid {
			agg.PaidTotal += s.payments[i].Amount
		}
	}
	return agg
}

func (s *Store) StudentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.students)
}

func (s *Store) SubjectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subjects)
}
