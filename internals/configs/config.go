// file: internals/configs/config.go
package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"tutorku_backend/internals/constants"
)

var (
	SeedFile        string
	SnapshotFile    string
	ReportRangeDays int
	StrictBooking   bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	SeedFile = GetEnv("SEED_FILE", "internals/seeds/data_tutoring.yaml")
	SnapshotFile = GetEnv("SNAPSHOT_FILE", "")
	ReportRangeDays = GetEnvInt("REPORT_RANGE_DAYS", constants.DefaultReportRangeDays)
	StrictBooking = GetEnvBool("STRICT_BOOKING", false)

	if StrictBooking {
		log.Println("✅ STRICT_BOOKING aktif — double-booking ditolak")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  %s=%q bukan angka, pakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️  %s=%q bukan boolean, pakai default %v", key, raw, defaultValue)
		return defaultValue
	}
	return b
}
