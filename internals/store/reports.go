// file: internals/store/reports.go
package store

import (
	reportmodel "tutorku_backend/internals/features/reports/model"
	helper "tutorku_backend/internals/helpers"
)

// AddReport meng-append laporan. Tidak ada Update/Delete untuk report —
// sekali di-generate, immutable.
func (s *Store) AddReport(r reportmodel.ReportModel) reportmodel.ReportModel {
	r.ReportID = helper.NewID()

	s.mu.Lock()
	s.reports = append(s.reports, r)
	s.mu.Unlock()
	return r
}

func (s *Store) Reports() []reportmodel.ReportModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]reportmodel.ReportModel(nil), s.reports...)
}
