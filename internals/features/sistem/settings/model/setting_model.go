// file: internals/features/sistem/settings/model/setting_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================
   Setting model
   — singleton: selalu baris pertama yang dipakai
========================= */

type SettingModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	NamaSekolah    string `gorm:"type:varchar(255);column:nama_sekolah" json:"nama_sekolah"`
	TahunPelajaran string `gorm:"type:varchar(50);column:tahun_pelajaran" json:"tahun_pelajaran"`
	Kota           string `gorm:"type:varchar(100);column:kota" json:"kota"`

	TanggalMulaiPKL *datatypes.Date `gorm:"column:tanggal_mulai_pkl" json:"tanggal_mulai_pkl"`
	TanggalAkhirPKL *datatypes.Date `gorm:"column:tanggal_akhir_pkl" json:"tanggal_akhir_pkl"`
	TanggalRapor    *datatypes.Date `gorm:"column:tanggal_rapor" json:"tanggal_rapor"`

	NamaKepalaSekolah string `gorm:"type:varchar(255);column:nama_kepala_sekolah" json:"nama_kepala_sekolah"`
	NipKepalaSekolah  string `gorm:"type:varchar(50);column:nip_kepala_sekolah" json:"nip_kepala_sekolah"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SettingModel) TableName() string { return "settings" }
