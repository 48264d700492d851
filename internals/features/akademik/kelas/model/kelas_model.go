// file: internals/features/akademik/kelas/model/kelas_model.go
package model

import (
	"strings"
	"time"
)

/* =========================
   Kelas model
   — metadata wali kelas per label kelas
========================= */

type KelasModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	Nama string `gorm:"type:varchar(100);not null;uniqueIndex;column:nama" json:"nama"`

	GelarDepan    *string `gorm:"type:varchar(50);column:gelar_depan" json:"gelar_depan,omitempty"`
	WaliKelas     string  `gorm:"type:varchar(255);not null;column:wali_kelas" json:"wali_kelas"`
	GelarBelakang *string `gorm:"type:varchar(50);column:gelar_belakang" json:"gelar_belakang,omitempty"`
	Nip           string  `gorm:"type:varchar(50);column:nip" json:"nip"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (KelasModel) TableName() string { return "kelas" }

// NamaLengkapWali menyusun "{gelar_depan} {wali_kelas}, {gelar_belakang}",
// segmen kosong dilewati.
func (m *KelasModel) NamaLengkapWali() string {
	var b strings.Builder
	if m.GelarDepan != nil && strings.TrimSpace(*m.GelarDepan) != "" {
		b.WriteString(strings.TrimSpace(*m.GelarDepan))
		b.WriteString(" ")
	}
	b.WriteString(m.WaliKelas)
	if m.GelarBelakang != nil && strings.TrimSpace(*m.GelarBelakang) != "" {
		b.WriteString(", ")
		b.WriteString(strings.TrimSpace(*m.GelarBelakang))
	}
	return b.String()
}
