package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"tutorku_backend/internals/configs"
	"tutorku_backend/internals/constants"
	messagedto "tutorku_backend/internals/features/messages/dto"
	paymentdto "tutorku_backend/internals/features/payments/dto"
	reportmodel "tutorku_backend/internals/features/reports/model"
	reportservice "tutorku_backend/internals/features/reports/service"
	scheduledto "tutorku_backend/internals/features/schedule/dto"
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	scheduleservice "tutorku_backend/internals/features/schedule/service"
	studentdto "tutorku_backend/internals/features/students/dto"
	subjectdto "tutorku_backend/internals/features/subjects/dto"
	teacherdto "tutorku_backend/internals/features/teachers/dto"
	"tutorku_backend/internals/forms"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/seeds"
	"tutorku_backend/internals/store"

	"github.com/go-playground/validator/v10"
)

func main() {
	configs.LoadEnv()

	st := store.New()
	validate := validator.New()
	lessons := scheduleservice.NewLessonService(st, validate, configs.StrictBooking)
	reports := reportservice.NewReportService(st, configs.ReportRangeDays)
	router := forms.NewRouter(st, lessons, validate)

	// Kanal Core → UI: layar profil me-mirror jumlah slot terkini.
	st.OnScheduleChange(func(slots []schedulemodel.ScheduleSlotModel) {
		log.Printf("[INFO] schedule updated: %d slots", len(slots))
	})

	if configs.SeedFile != "" {
		if err := seeds.RunAllSeeds(st, configs.SeedFile); err != nil {
			log.Fatalf("❌ seed gagal: %v", err)
		}
	}

	// Contoh alur form submit → mutasi, persis jalur layar Schedule.
	result, err := router.Submit(forms.Submission{
		Kind: forms.KindStudent,
		Values: map[string]string{
			"name":        "Liam Chen",
			"email":       "liam.chen@email.com",
			"phone":       "(555) 345-6789",
			"address":     "789 Pine St, City, State",
			"parentName":  "Wei Chen",
			"parentPhone": "(555) 345-6790",
			"grade":       "9th Grade",
			"subjects":    "math",
			"status":      "Active",
		},
	})
	if err != nil {
		log.Fatalf("❌ submit student gagal: %v", err)
	}
	log.Printf("[INFO] student created id=%s", result.ID)

	printWeeklyGrid(st)
	printLessonStats(lessons)
	printDirectory(st)

	report := reports.Generate(reportmodel.ReportPaymentSummary, nil)
	log.Printf("[INFO] report %q: students=%d revenue=%.2f pending=%d",
		report.Title, report.Data.Students, report.Data.TotalRevenue, report.Data.PendingPayments)

	if configs.SnapshotFile != "" {
		if err := st.SaveSnapshot(configs.SnapshotFile); err != nil {
			log.Printf("[ERROR] snapshot: %v", err)
			os.Exit(1)
		}
		log.Printf("✅ snapshot tersimpan di %s", configs.SnapshotFile)
	}
}

// printWeeklyGrid menulis grid mingguan ke stdout — pengganti tekstual
// renderScheduleGrid di layar.
func printWeeklyGrid(st *store.Store) {
	slots := st.ScheduleSlots()
	bySlot := make(map[string]schedulemodel.ScheduleSlotModel, len(slots))
	for _, s := range slots {
		bySlot[string(s.Day)+"|"+s.Time.String()] = s
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-7s", "Time"))
	for _, day := range schedulemodel.WeekdayOrder {
		b.WriteString(fmt.Sprintf(" %-12s", day))
	}
	b.WriteString("\n")

	for _, label := range constants.DefaultTimeSlots {
		t := helper.MustClockTime(label)
		b.WriteString(fmt.Sprintf("%-7s", t))
		for _, day := range schedulemodel.WeekdayOrder {
			cell := "-"
			if s, ok := bySlot[string(day)+"|"+t.String()]; ok {
				cell = string(s.Status)
				if s.StudentName != "" {
					cell = s.StudentName
				}
			}
			b.WriteString(fmt.Sprintf(" %-12s", cell))
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}

func printLessonStats(lessons *scheduleservice.LessonService) {
	stats := lessons.Stats()
	log.Printf("[INFO] lessons: scheduled=%d completed=%d cancelled=%d revenue=%.2f",
		stats.Scheduled, stats.Completed, stats.Cancelled, stats.Revenue)
	for _, l := range lessons.Lessons() {
		resp := scheduledto.NewScheduleSlotResponse(&l)
		log.Printf("[INFO]   %s %s — %s / %s (%dmin, $%.0f) [%s]",
			resp.Day, resp.Time, resp.StudentName, resp.SubjectName, resp.Duration, resp.Rate, resp.Status)
	}
}

// printDirectory menulis seluruh koleksi sebagai JSON response DTO —
// bentuk yang sama dengan yang dikonsumsi layar list.
func printDirectory(st *store.Store) {
	type directory struct {
		Students []studentdto.StudentResponse `json:"students"`
		Subjects []subjectdto.SubjectResponse `json:"subjects"`
		Payments []paymentdto.PaymentResponse `json:"payments"`
		Messages []messagedto.MessageResponse `json:"messages"`
		Teachers []teacherdto.TeacherResponse `json:"teachers"`
	}

	var dir directory
	for _, s := range st.Students() {
		dir.Students = append(dir.Students, studentdto.NewStudentResponse(&s))
	}
	for _, s := range st.Subjects() {
		dir.Subjects = append(dir.Subjects, subjectdto.NewSubjectResponse(&s))
	}
	for _, p := range st.Payments() {
		dir.Payments = append(dir.Payments, paymentdto.NewPaymentResponse(&p))
	}
	for _, m := range st.Messages() {
		dir.Messages = append(dir.Messages, messagedto.NewMessageResponse(&m))
	}
	for _, t := range st.Teachers() {
		dir.Teachers = append(dir.Teachers, teacherdto.NewTeacherResponse(&t))
	}

	b, err := json.MarshalIndent(dir, "", "  ")
	if err != nil {
		log.Printf("[ERROR] directory: %v", err)
		return
	}
	fmt.Println(string(b))
}
