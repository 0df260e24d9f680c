// file: internals/features/reports/model/report_model.go
package model

import "time"

type ReportType string

const (
	ReportStudentProgress    ReportType = "Student Progress"
	ReportPaymentSummary     ReportType = "Payment Summary"
	ReportScheduleOverview   ReportType = "Schedule Overview"
	ReportMonthlySummary     ReportType = "Monthly Summary"
	ReportSubjectPerformance ReportType = "Subject Performance"
)

// ReportData: snapshot agregat pada saat generate. Dulu bertipe any —
// sekarang struct supaya konsumen tidak menebak-nebak bentuknya.
type ReportData struct {
	Students        int     `json:"students"`
	Subjects        int     `json:"subjects"`
	TotalLessons    int     `json:"total_lessons"` // slot ber-status Completed
	PendingPayments int     `json:"pending_payments"`
	TotalRevenue    float64 `json:"total_revenue"` // sum amount payment Paid
}

type DateRange struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`
}

type ReportFilters struct {
	StudentIDs []string `json:"student_ids,omitempty"`
	SubjectIDs []string `json:"subject_ids,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// ReportModel immutable: sekali di-generate hanya di-append, tidak pernah
// di-update atau dihapus.
type ReportModel struct {
	ReportID string `json:"report_id"`

	Title string     `json:"title"`
	Type  ReportType `json:"type"`

	DateRange DateRange  `json:"date_range"`
	Data      ReportData `json:"data"`

	GeneratedDate time.Time     `json:"generated_date"`
	Filters       ReportFilters `json:"filters"`
}
