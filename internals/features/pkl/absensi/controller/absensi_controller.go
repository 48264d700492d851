// file: internals/features/pkl/absensi/controller/absensi_controller.go
package controller

import (
	"fmt"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	absensiDto "raporedyan_backend/internals/features/pkl/absensi/dto"
	absensiModel "raporedyan_backend/internals/features/pkl/absensi/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AbsensiController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAbsensiController(db *gorm.DB, v *validator.Validate) *AbsensiController {
	return &AbsensiController{DB: db, Validate: v}
}

// GET /api/absensi?kelas=XII%20RPL%201
// Mengembalikan SEMUA siswa di kelas tsb. Siswa tanpa record absensi
// tetap muncul dengan sakit/izin/alpha = 0 dan catatan kosong.
func (ctl *AbsensiController) Index(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter kelas wajib diisi")
	}

	var siswas []siswaModel.SiswaModel
	if err := ctl.DB.Where("kelas = ?", kelas).Order("nama ASC").Find(&siswas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	ids := make([]uint, 0, len(siswas))
	for i := range siswas {
		ids = append(ids, siswas[i].ID)
	}

	byID := map[uint]absensiModel.AbsensiPKLModel{}
	if len(ids) > 0 {
		var rows []absensiModel.AbsensiPKLModel
		if err := ctl.DB.Where("siswa_id IN ?", ids).Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
		}
		for i := range rows {
			byID[rows[i].SiswaID] = rows[i]
		}
	}

	out := make([]absensiDto.AbsensiRowResp, 0, len(siswas))
	for i := range siswas {
		s := siswas[i]
		row := absensiDto.AbsensiRowResp{ID: s.ID, Nama: s.Nama, Nisn: s.Nisn}
		if a, ok := byID[s.ID]; ok {
			row.Sakit = a.Sakit
			row.Izin = a.Izin
			row.Alpha = a.Alpha
			row.Catatan = a.Catatan
		}
		out = append(out, row)
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/absensi/kelas-list — daftar kelas distinct dari tabel siswa
func (ctl *AbsensiController) KelasList(c *fiber.Ctx) error {
	var kelas []string
	if err := ctl.DB.Model(&siswaModel.SiswaModel{}).
		Distinct("kelas").Order("kelas ASC").Pluck("kelas", &kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.JsonOK(c, "OK", kelas)
}

// POST /api/absensi/save — upsert massal, satu transaksi
func (ctl *AbsensiController) StoreBulk(c *fiber.Ctx) error {
	var req absensiDto.AbsensiSaveReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Absensi {
			m := absensiModel.AbsensiPKLModel{
				SiswaID: item.SiswaID,
				Sakit:   item.Sakit,
				Izin:    item.Izin,
				Alpha:   item.Alpha,
				Catatan: item.Catatan,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "siswa_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"sakit", "izin", "alpha", "catatan", "updated_at",
				}),
			}).Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonMessage(c, "Data absensi berhasil disimpan")
}

// POST /api/absensi/import — baris dicocokkan ke siswa lewat NISN.
// NISN yang tidak dikenal dilewati, bukan error.
func (ctl *AbsensiController) Import(c *fiber.Ctx) error {
	var req absensiDto.AbsensiImportReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var siswas []siswaModel.SiswaModel
	if err := ctl.DB.Find(&siswas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	nisnToID := make(map[string]uint, len(siswas))
	for i := range siswas {
		nisnToID[strings.TrimSpace(siswas[i].Nisn)] = siswas[i].ID
	}

	count := 0
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Rows {
			sid, ok := nisnToID[strings.TrimSpace(row.Nisn)]
			if !ok {
				continue
			}
			m := absensiModel.AbsensiPKLModel{
				SiswaID: sid,
				Sakit:   row.Sakit,
				Izin:    row.Izin,
				Alpha:   row.Alpha,
				Catatan: row.Catatan,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "siswa_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"sakit", "izin", "alpha", "catatan", "updated_at",
				}),
			}).Create(&m).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal import absensi")
	}

	return helper.JsonMessage(c, fmt.Sprintf("Berhasil memproses %d data absensi.", count))
}
