package helper

import (
	"fmt"
	"time"
)

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggalID memformat tanggal gaya rapor: "15 Desember 2024".
func FormatTanggalID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// FormatTanggalIDOrDash: sama, tapi "-" untuk tanggal kosong (zero value).
func FormatTanggalIDOrDash(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return FormatTanggalID(*t)
}
