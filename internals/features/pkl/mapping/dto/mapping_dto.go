// file: internals/features/pkl/mapping/dto/mapping_dto.go
package dto

/* ===================== REQUESTS ===================== */

type MappingSaveItem struct {
	ID                  uint  `json:"id" validate:"required"` // ID siswa
	TempatPKLID         *uint `json:"tempatPKLId"`
	InstrukturPKLID     *uint `json:"instrukturPKLId"`
	PembimbingSekolahID *uint `json:"pembimbingSekolahId"`
}

type MappingSaveReq struct {
	Mappings []MappingSaveItem `json:"mappings" validate:"required,min=1,dive"`
}

// Baris import Excel: pencocokan pakai NAMA, bukan id
type MappingImportRow struct {
	NamaSiswa         string `json:"namaSiswa"`
	TempatPKL         string `json:"tempatPKL"`
	InstrukturPKL     string `json:"instrukturPKL"`
	PembimbingSekolah string `json:"pembimbingSekolah"`
}

type MappingImportReq struct {
	Data []MappingImportRow `json:"data"`
}

/* ===================== RESPONSES ===================== */

type MappingRowResp struct {
	ID                  uint   `json:"id"` // ID siswa
	NamaSiswa           string `json:"namaSiswa"`
	Nisn                string `json:"nisn"`
	Kelas               string `json:"kelas"`
	TempatPKLID         *uint  `json:"tempatPKLId"`
	InstrukturPKLID     *uint  `json:"instrukturPKLId"`
	PembimbingSekolahID *uint  `json:"pembimbingSekolahId"`
}
