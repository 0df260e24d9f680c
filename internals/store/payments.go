// file: internals/store/payments.go
package store

import (
	paymentmodel "tutorku_backend/internals/features/payments/model"
	helper "tutorku_backend/internals/helpers"
)

func (s *Store) AddPayment(p paymentmodel.PaymentModel) paymentmodel.PaymentModel {
	p.PaymentID = helper.NewID()

	s.mu.Lock()
	s.payments = append(s.payments, p)
	s.mu.Unlock()
	return p
}

func (s *Store) GetPaymentByID(id string) (paymentmodel.PaymentModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].PaymentID == id {
			return s.payments[i], true
		}
	}
	return paymentmodel.PaymentModel{}, false
}

func (s *Store) UpdatePayment(id string, apply func(*paymentmodel.PaymentModel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].PaymentID == id {
			apply(&s.payments[i])
			return true
		}
	}
	return false
}

func (s *Store) DeletePayment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].PaymentID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Payments() []paymentmodel.PaymentModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]paymentmodel.PaymentModel(nil), s.payments...)
}
