// file: internals/features/pkl/rapor/service/zip_service.go
package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"strings"

	raporDto "raporedyan_backend/internals/features/pkl/rapor/dto"
)

/* =========================
   Packager ZIP rapor satu kelas
========================= */

// BuildRaporZip merender PDF tiap siswa lalu membungkusnya jadi satu ZIP.
// Entri dinomori urut abjad mulai 01. Satu siswa gagal render tidak
// menggagalkan seisi kelas: entrinya dilewati dan dicatat di log.
func BuildRaporZip(rows []raporDto.RaporSiswa, meta raporDto.MetaSettings) ([]byte, int, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	pad := 2
	if n := len(fmt.Sprintf("%d", len(rows))); n > pad {
		pad = n
	}

	count := 0
	for i := range rows {
		pdfBytes, err := RenderRaporPDF(&rows[i], meta)
		if err != nil {
			log.Printf("[WARN] Rapor %s dilewati dari ZIP: %v", rows[i].Nama, err)
			continue
		}

		name := fmt.Sprintf("%0*d_%s.pdf", pad, i+1, sanitizeFileName(rows[i].Nama))
		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return nil, 0, err
		}
		if _, err := w.Write(pdfBytes); err != nil {
			zw.Close()
			return nil, 0, err
		}
		count++
	}

	if err := zw.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), count, nil
}

// ZipFileName: "Rapor_PKL_XII_RPL_1.zip"
func ZipFileName(kelas string) string {
	return "Rapor_PKL_" + sanitizeFileName(kelas) + ".zip"
}

// sanitizeFileName mengganti karakter yang bermasalah di nama file
func sanitizeFileName(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		" ", "_", "/", "-", "\\", "-", ":", "-",
		"*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
	)
	return replacer.Replace(s)
}
