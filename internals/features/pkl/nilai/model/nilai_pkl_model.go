// file: internals/features/pkl/nilai/model/nilai_pkl_model.go
package model

import (
	"time"
)

/* =========================
   Nilai PKL model
   — satu sel nilai per (siswa, tujuan pembelajaran)
========================= */

type NilaiPKLModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	SiswaID              uint `gorm:"not null;uniqueIndex:idx_nilai_siswa_tp;column:siswa_id" json:"siswa_id"`
	TujuanPembelajaranID uint `gorm:"not null;uniqueIndex:idx_nilai_siswa_tp;column:tujuan_pembelajaran_id" json:"tujuan_pembelajaran_id"`

	Skor      int     `gorm:"not null;default:0;column:skor" json:"skor"`
	Deskripsi *string `gorm:"type:text;column:deskripsi" json:"deskripsi"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (NilaiPKLModel) TableName() string { return "nilai_pkls" }
