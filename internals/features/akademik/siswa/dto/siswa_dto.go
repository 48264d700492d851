// file: internals/features/akademik/siswa/dto/siswa_dto.go
package dto

import (
	"raporedyan_backend/internals/features/akademik/siswa/model"
)

/* ===================== REQUESTS ===================== */

type SiswaCreateReq struct {
	Nama                string `json:"nama" validate:"required"`
	Nisn                string `json:"nisn" validate:"required"`
	Kelas               string `json:"kelas" validate:"required"`
	ProgramKeahlian     string `json:"programKeahlian" validate:"required"`
	KonsentrasiKeahlian string `json:"konsentrasiKeahlian" validate:"required"`
}

type SiswaUpdateReq struct {
	Nama                string `json:"nama" validate:"required"`
	Nisn                string `json:"nisn" validate:"required"`
	Kelas               string `json:"kelas" validate:"required"`
	ProgramKeahlian     string `json:"programKeahlian"`
	KonsentrasiKeahlian string `json:"konsentrasiKeahlian"`
}

// Payload import Excel: array baris siswa, upsert by NISN
type SiswaBulkReq struct {
	Data []SiswaCreateReq `json:"data" validate:"required,min=1,dive"`
}

/* ===================== RESPONSES ===================== */

// Format camelCase sesuai kontrak frontend React
type SiswaResp struct {
	ID                  uint   `json:"id"`
	Nama                string `json:"nama"`
	Nisn                string `json:"nisn"`
	Kelas               string `json:"kelas"`
	ProgramKeahlian     string `json:"programKeahlian"`
	KonsentrasiKeahlian string `json:"konsentrasiKeahlian"`
}

func FromModel(m *model.SiswaModel) SiswaResp {
	return SiswaResp{
		ID:                  m.ID,
		Nama:                m.Nama,
		Nisn:                m.Nisn,
		Kelas:               m.Kelas,
		ProgramKeahlian:     m.ProgramKeahlian,
		KonsentrasiKeahlian: m.KonsentrasiKeahlian,
	}
}
