// file: internals/helpers/clock.go
package helper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

/* =======================================================
   ClockTime — representasi waktu terstruktur (jam, menit)

   Layar schedule memakai label 24 jam zero-padded ("09:00"),
   layar profil guru memakai label bebas ("4:00pm"). Dua format
   itu tidak bisa di-sort leksikografis bersama, jadi semuanya
   dinormalisasi ke sini; string tampilan urusan UI.
   ======================================================= */

type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseClockTime menerima "HH:mm", "H:mm", "4:00pm", "4pm", "16.00".
func ParseClockTime(s string) (ClockTime, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return ClockTime{}, fmt.Errorf("empty time label")
	}

	meridiem := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(raw, suffix) {
			meridiem = suffix
			raw = strings.TrimSpace(strings.TrimSuffix(raw, suffix))
			break
		}
	}

	// dukung pemisah ":" maupun "."
	raw = strings.ReplaceAll(raw, ".", ":")

	hourPart := raw
	minutePart := "0"
	if i := strings.Index(raw, ":"); i >= 0 {
		hourPart = raw[:i]
		minutePart = raw[i+1:]
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time label %q: %w", s, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time label %q: %w", s, err)
	}

	switch meridiem {
	case "pm":
		if hour < 1 || hour > 12 {
			return ClockTime{}, fmt.Errorf("invalid time label %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return ClockTime{}, fmt.Errorf("invalid time label %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("time label %q out of range", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// MustClockTime untuk literal di seed/test; panic kalau label rusak.
func MustClockTime(s string) ClockTime {
	t, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String mengembalikan bentuk kanonis "HH:mm".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) Before(o ClockTime) bool {
	return t.Minutes() < o.Minutes()
}

func (t ClockTime) Equal(o ClockTime) bool {
	return t.Hour == o.Hour && t.Minute == o.Minute
}

/* =======================================================
   JSON — serialisasi sebagai label kanonis "HH:mm"
   ======================================================= */

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
