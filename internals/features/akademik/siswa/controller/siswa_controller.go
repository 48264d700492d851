// file: internals/features/akademik/siswa/controller/siswa_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	siswaDto "raporedyan_backend/internals/features/akademik/siswa/dto"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	absensiModel "raporedyan_backend/internals/features/pkl/absensi/model"
	mappingModel "raporedyan_backend/internals/features/pkl/mapping/model"
	nilaiModel "raporedyan_backend/internals/features/pkl/nilai/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiswaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSiswaController(db *gorm.DB, v *validator.Validate) *SiswaController {
	return &SiswaController{DB: db, Validate: v}
}

func parseID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id pada path tidak valid")
	}
	return uint(id), nil
}

// GET /api/siswa
func (ctl *SiswaController) List(c *fiber.Ctx) error {
	var rows []siswaModel.SiswaModel
	if err := ctl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	out := make([]siswaDto.SiswaResp, 0, len(rows))
	for i := range rows {
		out = append(out, siswaDto.FromModel(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/siswa
func (ctl *SiswaController) Create(c *fiber.Ctx) error {
	var req siswaDto.SiswaCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := siswaModel.SiswaModel{
		Nama:                req.Nama,
		Nisn:                req.Nisn,
		Kelas:               req.Kelas,
		ProgramKeahlian:     req.ProgramKeahlian,
		KonsentrasiKeahlian: req.KonsentrasiKeahlian,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "NISN sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}

	return helper.JsonCreated(c, "Data berhasil disimpan", siswaDto.FromModel(&m))
}

// PUT /api/siswa/:id
func (ctl *SiswaController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req siswaDto.SiswaUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m siswaModel.SiswaModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	m.Nama = req.Nama
	m.Nisn = req.Nisn
	m.Kelas = req.Kelas
	m.ProgramKeahlian = req.ProgramKeahlian
	m.KonsentrasiKeahlian = req.KonsentrasiKeahlian

	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "NISN sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengupdate data siswa")
	}

	return helper.JsonMessage(c, "Data berhasil diupdate")
}

// DELETE /api/siswa/:id
// Nilai, mapping, dan absensi milik siswa ikut terhapus (satu transaksi).
func (ctl *SiswaController) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m siswaModel.SiswaModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("siswa_id = ?", id).Delete(&nilaiModel.NilaiPKLModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("siswa_id = ?", id).Delete(&mappingModel.MappingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("siswa_id = ?", id).Delete(&absensiModel.AbsensiPKLModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data siswa")
	}

	return helper.JsonMessage(c, "Data berhasil dihapus")
}

// POST /api/siswa/bulk — import Excel, upsert keyed NISN
func (ctl *SiswaController) BulkStore(c *fiber.Ctx) error {
	var req siswaDto.SiswaBulkReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data kosong")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Data {
			m := siswaModel.SiswaModel{
				Nama:                row.Nama,
				Nisn:                row.Nisn,
				Kelas:               row.Kelas,
				ProgramKeahlian:     row.ProgramKeahlian,
				KonsentrasiKeahlian: row.KonsentrasiKeahlian,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "nisn"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"nama", "kelas", "program_keahlian", "konsentrasi_keahlian", "updated_at",
				}),
			}).Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal import: "+err.Error())
	}

	return helper.JsonMessage(c, fmt.Sprintf("%d data berhasil diimpor", len(req.Data)))
}
