// file: internals/constants/schedule.go
package constants

// Slot waktu yang bisa dibooking di grid mingguan (label 24 jam kanonis).
var DefaultTimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

const (
	DefaultDurationMinutes = 60
	DefaultHourlyRate      = 50

	// Rentang default laporan: [hari ini − 30 hari, hari ini].
	DefaultReportRangeDays = 30
)
