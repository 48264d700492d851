// file: internals/features/akademik/siswa/model/siswa_model.go
package model

import (
	"time"
)

/* =========================
   Siswa model
   — identitas peserta didik, kunci unik NISN
========================= */

type SiswaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	Nama  string `gorm:"type:varchar(255);not null;column:nama" json:"nama"`
	Nisn  string `gorm:"type:varchar(30);not null;uniqueIndex;column:nisn" json:"nisn"`
	Kelas string `gorm:"type:varchar(100);not null;column:kelas" json:"kelas"`

	ProgramKeahlian     string `gorm:"type:varchar(255);column:program_keahlian" json:"program_keahlian"`
	KonsentrasiKeahlian string `gorm:"type:varchar(255);column:konsentrasi_keahlian" json:"konsentrasi_keahlian"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SiswaModel) TableName() string { return "siswas" }
