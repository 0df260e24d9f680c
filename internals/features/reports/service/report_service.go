// file: internals/features/reports/service/report_service.go
package service

import (
	"time"

	m "tutorku_backend/internals/features/reports/model"
	"tutorku_backend/internals/store"
)

/* =======================================================
   ReportService — snapshot agregat ke laporan immutable
   ======================================================= */

type ReportService struct {
	store *store.Store

	// rangeDays lebar date range laporan (default 30 hari ke belakang).
	rangeDays int

	// now bisa ditukar di test.
	now func() time.Time
}

func NewReportService(st *store.Store, rangeDays int) *ReportService {
	if rangeDays <= 0 {
		rangeDays = 30
	}
	return &ReportService{store: st, rangeDays: rangeDays, now: time.Now}
}

// Generate mengambil snapshot konsisten dari store lalu meng-append
// laporan. Tidak pernah gagal — store yang valid selalu bisa dihitung.
func (s *ReportService) Generate(reportType m.ReportType, filters *m.ReportFilters) m.ReportModel {
	// Satu lock untuk semua angka — laporan memotret satu titik waktu.
	agg := s.store.Aggregates()
	data := m.ReportData{
		Students:        agg.Students,
		Subjects:        agg.Subjects,
		TotalLessons:    agg.CompletedLessons,
		PendingPayments: agg.PendingPayments,
		TotalRevenue:    agg.PaidTotal,
	}

	now := s.now()
	report := m.ReportModel{
		Title: string(reportType) + " Report",
		Type:  reportType,
		DateRange: m.DateRange{
			Start: now.AddDate(0, 0, -s.rangeDays).Format("2006-01-02"),
			End:   now.Format("2006-01-02"),
		},
		Data:          data,
		GeneratedDate: now,
	}
	if filters != nil {
		report.Filters = *filters
	}

	return s.store.AddReport(report)
}
