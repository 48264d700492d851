// file: internals/features/sistem/settings/dto/setting_dto.go
package dto

// SettingUpdateReq: field camelCase mengikuti form frontend. Tanggal
// dikirim "YYYY-MM-DD", string kosong berarti belum diisi.
type SettingUpdateReq struct {
	NamaSekolah       string `json:"namaSekolah" validate:"required"`
	TahunPelajaran    string `json:"tahunPelajaran"`
	Kota              string `json:"kota"`
	TanggalMulaiPKL   string `json:"tanggalMulaiPKL"`
	TanggalAkhirPKL   string `json:"tanggalAkhirPKL"`
	TanggalRapor      string `json:"tanggalRapor"`
	NamaKepalaSekolah string `json:"namaKepalaSekolah"`
	NipKepalaSekolah  string `json:"nipKepalaSekolah"`
}
