// file: internals/features/pkl/nilai/dto/nilai_dto.go
package dto

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

/* =========================
   Request
========================= */

// NilaiCellReq menerima dua bentuk payload dari frontend:
//   - objek  : {"skor": 85, "deskripsi": "..."}
//   - angka  : 85                       (format lama, deskripsi null)
type NilaiCellReq struct {
	Skor      int     `json:"skor"`
	Deskripsi *string `json:"deskripsi"`
}

func (v *NilaiCellReq) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}
	if raw[0] != '{' {
		// format lama: cuma angka
		f, err := strconv.ParseFloat(strings.Trim(raw, `"`), 64)
		if err != nil {
			return err
		}
		v.Skor = int(f)
		v.Deskripsi = nil
		return nil
	}
	type alias NilaiCellReq
	var a alias
	if err := sonic.Unmarshal(b, &a); err != nil {
		return err
	}
	*v = NilaiCellReq(a)
	return nil
}

type NilaiSaveItem struct {
	ID    uint                    `json:"id" validate:"required"` // siswa id
	Nilai map[string]NilaiCellReq `json:"nilai" validate:"required"` // key: tp id
}

type NilaiSaveReq struct {
	Data []NilaiSaveItem `json:"data" validate:"required,min=1,dive"`
}

// NilaiImportReq: baris excel mentah, key = judul kolom. Judul kolom skor
// memakai nama TP, kolom deskripsi memakai prefix "Deskripsi: <nama TP>".
type NilaiImportReq struct {
	Data []map[string]interface{} `json:"data" validate:"required,min=1"`
}

type GenerateAIReq struct {
	TP        string `json:"tp" validate:"required"`
	Skor      int    `json:"skor" validate:"min=0,max=100"`
	NamaSiswa string `json:"nama_siswa"`
}

type GenerateAIBatchReq struct {
	Items []GenerateAIReq `json:"items" validate:"required,min=1,dive"`
}

/* =========================
   Response
========================= */

type NilaiCellResp struct {
	Skor      int     `json:"skor"`
	Deskripsi *string `json:"deskripsi"`
}

type NilaiSiswaResp struct {
	ID    uint                   `json:"id"`
	Nama  string                 `json:"nama"`
	Nisn  string                 `json:"nisn"`
	Nilai map[uint]NilaiCellResp `json:"nilai"`
}

type GenerateAIResp struct {
	Deskripsi string `json:"deskripsi"`
	Source    string `json:"source"` // "ai" | "lokal"
}

type GenerateAIBatchItemResp struct {
	TP        string `json:"tp"`
	Deskripsi string `json:"deskripsi"`
	Source    string `json:"source"`
}
