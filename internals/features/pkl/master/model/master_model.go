// file: internals/features/pkl/master/model/master_model.go
package model

import (
	"time"
)

/* =========================
   Master data PKL
   — tiga tabel lookup sederhana: cuma butuh nama
========================= */

type TempatPKLModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Nama      string    `gorm:"type:varchar(255);not null;column:nama" json:"nama"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (TempatPKLModel) TableName() string { return "tempat_pkls" }

type InstrukturPKLModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Nama      string    `gorm:"type:varchar(255);not null;column:nama" json:"nama"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (InstrukturPKLModel) TableName() string { return "instruktur_pkls" }

type PembimbingSekolahModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Nama      string    `gorm:"type:varchar(255);not null;column:nama" json:"nama"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (PembimbingSekolahModel) TableName() string { return "pembimbing_sekolahs" }
