// file: internals/features/pkl/absensi/dto/absensi_dto.go
package dto

/* =========================
   Request
========================= */

type AbsensiSaveItem struct {
	SiswaID uint   `json:"siswaId" validate:"required"`
	Sakit   int    `json:"sakit" validate:"min=0"`
	Izin    int    `json:"izin" validate:"min=0"`
	Alpha   int    `json:"alpha" validate:"min=0"`
	Catatan string `json:"catatan"`
}

type AbsensiSaveReq struct {
	Absensi []AbsensiSaveItem `json:"absensi" validate:"required,min=1,dive"`
}

// AbsensiImportRow: baris hasil parse excel/csv di frontend. Key nisn
// dipakai sebagai kunci pencocokan siswa.
type AbsensiImportRow struct {
	Nisn    string `json:"nisn" validate:"required"`
	Sakit   int    `json:"sakit"`
	Izin    int    `json:"izin"`
	Alpha   int    `json:"alpha"`
	Catatan string `json:"catatan"`
}

type AbsensiImportReq struct {
	Rows []AbsensiImportRow `json:"rows" validate:"required,min=1,dive"`
}

/* =========================
   Response
========================= */

// AbsensiRowResp: satu baris tabel absensi per siswa, nilai default 0 /
// kosong kalau siswa belum punya record.
type AbsensiRowResp struct {
	ID      uint   `json:"id"` // siswa id
	Nama    string `json:"nama"`
	Nisn    string `json:"nisn"`
	Sakit   int    `json:"sakit"`
	Izin    int    `json:"izin"`
	Alpha   int    `json:"alpha"`
	Catatan string `json:"catatan"`
}
