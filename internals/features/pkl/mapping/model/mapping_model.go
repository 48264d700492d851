// file: internals/features/pkl/mapping/model/mapping_model.go
package model

import (
	"time"

	masterModel "raporedyan_backend/internals/features/pkl/master/model"
)

/* =========================
   Mapping model
   — satu siswa satu mapping; relasi master boleh kosong sendiri-sendiri
========================= */

type MappingModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	SiswaID uint `gorm:"not null;uniqueIndex;column:siswa_id" json:"siswa_id"`

	TempatPKLID         *uint `gorm:"column:tempat_pkl_id" json:"tempat_pkl_id,omitempty"`
	InstrukturPKLID     *uint `gorm:"column:instruktur_pkl_id" json:"instruktur_pkl_id,omitempty"`
	PembimbingSekolahID *uint `gorm:"column:pembimbing_sekolah_id" json:"pembimbing_sekolah_id,omitempty"`

	TempatPKL         *masterModel.TempatPKLModel         `gorm:"foreignKey:TempatPKLID;constraint:OnDelete:SET NULL" json:"tempat_pkl,omitempty"`
	InstrukturPKL     *masterModel.InstrukturPKLModel     `gorm:"foreignKey:InstrukturPKLID;constraint:OnDelete:SET NULL" json:"instruktur_pkl,omitempty"`
	PembimbingSekolah *masterModel.PembimbingSekolahModel `gorm:"foreignKey:PembimbingSekolahID;constraint:OnDelete:SET NULL" json:"pembimbing_sekolah,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (MappingModel) TableName() string { return "mappings" }
