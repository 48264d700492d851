// file: internals/features/pkl/absensi/model/absensi_model.go
package model

import (
	"time"
)

// CatatanDefault dipakai di rapor kalau siswa belum punya baris absensi.
const CatatanDefault = "Sudah melakukan kegiatan PKL dengan baik."

/* =========================
   Absensi PKL model
   — satu siswa satu baris absensi
========================= */

type AbsensiPKLModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	SiswaID uint `gorm:"not null;uniqueIndex;column:siswa_id" json:"siswa_id"`

	Sakit   int    `gorm:"not null;default:0;column:sakit" json:"sakit"`
	Izin    int    `gorm:"not null;default:0;column:izin" json:"izin"`
	Alpha   int    `gorm:"not null;default:0;column:alpha" json:"alpha"`
	Catatan string `gorm:"type:text;column:catatan" json:"catatan"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (AbsensiPKLModel) TableName() string { return "absensi_pkls" }
