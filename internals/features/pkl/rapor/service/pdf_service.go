// file: internals/features/pkl/rapor/service/pdf_service.go
package service

import (
	"bytes"
	"fmt"
	"strings"

	raporDto "raporedyan_backend/internals/features/pkl/rapor/dto"

	"github.com/jung-kurt/gofpdf"
)

/* =========================
   Renderer PDF rapor
   — layout A4 portrait, target satu halaman per siswa
========================= */

// RenderRaporPDF merender satu rapor siswa jadi dokumen PDF.
func RenderRaporPDF(data *raporDto.RaporSiswa, meta raporDto.MetaSettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()

	// ---- kop: nama sekolah + tahun ajaran, rata tengah
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(centerX(pdf, tr(strings.ToUpper(meta.NamaSekolah)), pageW), 15, tr(strings.ToUpper(meta.NamaSekolah)))
	pdf.SetFont("Helvetica", "", 10)
	tahun := "Tahun Ajaran " + meta.TahunPelajaran
	pdf.Text(centerX(pdf, tr(tahun), pageW), 21, tr(tahun))

	// ---- biodata, dua kolom label : nilai dengan word wrap
	const (
		col1      = 15.0
		col2      = 55.0
		wrapWidth = 140.0
		lineH     = 5.0
	)
	pdf.SetFont("Helvetica", "", 9)

	biodata := [][2]string{
		{"Nama Peserta Didik", ": " + data.Nama},
		{"NISN", ": " + data.Nisn},
		{"Kelas", ": " + data.Kelas},
		{"Program Keahlian", ": " + data.ProgramKeahlian},
		{"Konsentrasi Keahlian", ": " + data.KonsentrasiKeahlian},
		{"Tempat PKL", ": " + data.TempatPKL},
		{"Tanggal PKL", ": " + meta.TglMulai + " s.d. " + meta.TglAkhir},
		{"Nama Instruktur", ": " + data.InstrukturPKL},
		{"Nama Pembimbing", ": " + data.PembimbingSekolah},
	}

	y := 30.0
	for _, row := range biodata {
		pdf.Text(col1, y, tr(row[0]))
		lines := pdf.SplitText(tr(row[1]), wrapWidth)
		for i, line := range lines {
			pdf.Text(col2, y+float64(i)*lineH, line)
		}
		y += float64(len(lines)) * lineH
	}
	y += 2

	// ---- tabel nilai: grid berborder, header bold rata tengah
	pdf.SetXY(col1, y)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.1)

	tpW, skorW := 60.0, 15.0
	deskW := pageW - col1*2 - tpW - skorW

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(255, 255, 255)
	pdf.CellFormat(tpW, 7, tr("Tujuan Pembelajaran"), "1", 0, "CM", true, 0, "")
	pdf.CellFormat(skorW, 7, "Skor", "1", 0, "CM", true, 0, "")
	pdf.CellFormat(deskW, 7, "Deskripsi", "1", 1, "CM", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, n := range data.Nilai {
		drawNilaiRow(pdf, tr, col1, tpW, skorW, deskW, n)
	}
	y = pdf.GetY() + 5

	// ---- catatan: tabel satu sel, header abu-abu muda
	pdf.SetXY(col1, y)
	catatanW := pageW - col1*2
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(catatanW, 7, "Catatan", "1", 1, "L", true, 0, "")
	pdf.SetX(col1)
	pdf.SetFont("Helvetica", "I", 9)
	catatan := data.Absensi.Catatan
	if catatan == "" {
		catatan = "-"
	}
	pdf.MultiCell(catatanW, 6, tr(catatan), "1", "L", false)
	y = pdf.GetY() + 5

	// ---- tabel absensi
	pdf.SetXY(col1, y)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(255, 255, 255)
	pdf.CellFormat(40, 6, "Ketidakhadiran", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 6, "Jumlah (Hari)", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	absensiRows := [][2]string{
		{"Sakit", fmt.Sprintf("%d", data.Absensi.Sakit)},
		{"Izin", fmt.Sprintf("%d", data.Absensi.Izin)},
		{"Tanpa Keterangan", fmt.Sprintf("%d", data.Absensi.Alpha)},
	}
	for _, row := range absensiRows {
		pdf.SetX(col1)
		pdf.CellFormat(40, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, row[1], "1", 1, "C", false, 0, "")
	}

	// ---- blok tanda tangan; pindah halaman kalau sisa ruang isinya mepet
	signY := pdf.GetY() + 15
	if signY > 260 {
		pdf.AddPage()
		signY = 30
	}

	const (
		leftX  = 20.0
		rightX = 140.0
	)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(rightX, signY, tr(meta.Kota+", "+meta.TanggalCetak))
	signY += 6

	pdf.Text(leftX, signY, "Wali Kelas")
	pdf.Text(rightX, signY, "Kepala Sekolah")
	signY += 25 // ruang tanda tangan

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(leftX, signY, tr(data.WaliKelas))
	pdf.Text(rightX, signY, tr(meta.KepalaSekolah))
	signY += 5

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(leftX, signY, tr("NIP. "+data.NipWali))
	pdf.Text(rightX, signY, tr("NIP. "+meta.NipKepala))

	// ---- footer kecil di bawah halaman
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.Text(15, 290, tr("Dicetak melalui Sistem Rapor-Edyan | "+data.Nama))
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal render pdf rapor %s: %w", data.Nama, err)
	}
	return buf.Bytes(), nil
}

// drawNilaiRow menggambar satu baris tabel nilai dengan tinggi sel yang
// mengikuti kolom terpanjang (TP atau deskripsi bisa lebih dari satu baris).
func drawNilaiRow(pdf *gofpdf.Fpdf, tr func(string) string, x, tpW, skorW, deskW float64, n raporDto.NilaiRapor) {
	const cellLineH = 5.0

	tpLines := pdf.SplitText(tr(n.TP), tpW-2)
	deskLines := pdf.SplitText(tr(n.Deskripsi), deskW-2)
	lines := len(tpLines)
	if len(deskLines) > lines {
		lines = len(deskLines)
	}
	if lines == 0 {
		lines = 1
	}
	rowH := float64(lines) * cellLineH

	// baris tidak muat di sisa halaman: lanjut di halaman baru
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+rowH > pageH-bottom {
		pdf.AddPage()
	}

	top := pdf.GetY()
	pdf.Rect(x, top, tpW, rowH, "D")
	pdf.Rect(x+tpW, top, skorW, rowH, "D")
	pdf.Rect(x+tpW+skorW, top, deskW, rowH, "D")

	for i, line := range tpLines {
		pdf.Text(x+1, top+3.5+float64(i)*cellLineH, line)
	}

	pdf.SetFont("Helvetica", "B", 9)
	skor := fmt.Sprintf("%d", n.Skor)
	skorX := x + tpW + (skorW-pdf.GetStringWidth(skor))/2
	pdf.Text(skorX, top+rowH/2+1.5, skor)
	pdf.SetFont("Helvetica", "", 9)

	for i, line := range deskLines {
		pdf.Text(x+tpW+skorW+1, top+3.5+float64(i)*cellLineH, line)
	}

	pdf.SetY(top + rowH)
}

func centerX(pdf *gofpdf.Fpdf, text string, pageW float64) float64 {
	return (pageW - pdf.GetStringWidth(text)) / 2
}
