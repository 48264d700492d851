// file: internals/helpers/format_date_test.go
package helper

import (
	"testing"
	"time"
)

func TestFormatTanggalID(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), "15 Desember 2024"},
		{time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), "2 Januari 2025"},
		{time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC), "15 Juli 2024"},
	}
	for _, c := range cases {
		if got := FormatTanggalID(c.in); got != c.want {
			t.Errorf("FormatTanggalID(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatTanggalIDOrDash(t *testing.T) {
	if got := FormatTanggalIDOrDash(nil); got != "-" {
		t.Errorf("nil: got %q, want -", got)
	}
	zero := time.Time{}
	if got := FormatTanggalIDOrDash(&zero); got != "-" {
		t.Errorf("zero: got %q, want -", got)
	}
	d := time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)
	if got := FormatTanggalIDOrDash(&d); got != "17 Agustus 2024" {
		t.Errorf("got %q, want 17 Agustus 2024", got)
	}
}
