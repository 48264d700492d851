// file: internals/features/pkl/rapor/dto/rapor_dto.go
package dto

/* =========================
   Payload rapor
   — bentuknya denormalisasi penuh, siap dirender PDF / dilahap frontend
========================= */

type NilaiRapor struct {
	TP        string `json:"tp"` // nama TP tanpa tag HTML
	Skor      int    `json:"skor"`
	Deskripsi string `json:"deskripsi"`
}

type AbsensiRapor struct {
	Sakit   int    `json:"sakit"`
	Izin    int    `json:"izin"`
	Alpha   int    `json:"alpha"`
	Catatan string `json:"catatan"`
}

type RaporSiswa struct {
	ID                  uint   `json:"id"`
	Nama                string `json:"nama"`
	Nisn                string `json:"nisn"`
	Kelas               string `json:"kelas"`
	ProgramKeahlian     string `json:"programKeahlian"`
	KonsentrasiKeahlian string `json:"konsentrasiKeahlian"`

	TempatPKL         string `json:"tempatPKL"`
	InstrukturPKL     string `json:"instrukturPKL"`
	PembimbingSekolah string `json:"pembimbingSekolah"`

	WaliKelas string `json:"waliKelas"`
	NipWali   string `json:"nipWali"`

	Nilai   []NilaiRapor `json:"nilai"`
	Absensi AbsensiRapor `json:"absensi"`
}

// MetaSettings: kop surat + blok tanda tangan, diambil sekali per request
type MetaSettings struct {
	NamaSekolah    string `json:"namaSekolah"`
	TahunPelajaran string `json:"tahunPelajaran"`
	KepalaSekolah  string `json:"kepalaSekolah"`
	NipKepala      string `json:"nipKepala"`
	Kota           string `json:"kota"`
	TanggalCetak   string `json:"tanggalCetak"` // "15 Desember 2024"
	TglMulai       string `json:"tglMulai"`
	TglAkhir       string `json:"tglAkhir"`
}
