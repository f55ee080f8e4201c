package tools

import (
	"fmt"
	"time"
)

var bulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID renders t the way Indonesian locales print a long date with
// time, e.g. "15 Oktober 2026 14.05".
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d %02d.%02d", t.Day(), bulan[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
