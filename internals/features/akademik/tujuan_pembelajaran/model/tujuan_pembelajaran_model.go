// file: internals/features/akademik/tujuan_pembelajaran/model/tujuan_pembelajaran_model.go
package model

import (
	"time"
)

/* =========================
   Tujuan Pembelajaran model
   — nama berupa rich text (HTML dari editor WYSIWYG)
========================= */

type TujuanPembelajaranModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	Nama string `gorm:"type:text;not null;column:nama" json:"nama"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (TujuanPembelajaranModel) TableName() string { return "tujuan_pembelajarans" }
