// file: internals/features/akademik/kelas/dto/kelas_dto.go
package dto

/* ===================== REQUESTS ===================== */

type KelasCreateReq struct {
	Nama          string `json:"nama" validate:"required"`
	GelarDepan    string `json:"gelar_depan"`
	WaliKelas     string `json:"wali_kelas" validate:"required"`
	GelarBelakang string `json:"gelar_belakang"`
	Nip           string `json:"nip"`
}

type KelasUpdateReq = KelasCreateReq
