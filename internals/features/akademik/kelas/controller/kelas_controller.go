// file: internals/features/akademik/kelas/controller/kelas_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	kelasDto "raporedyan_backend/internals/features/akademik/kelas/dto"
	kelasModel "raporedyan_backend/internals/features/akademik/kelas/model"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type KelasController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewKelasController(db *gorm.DB, v *validator.Validate) *KelasController {
	return &KelasController{DB: db, Validate: v}
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// GET /api/kelas
func (ctl *KelasController) List(c *fiber.Ctx) error {
	var rows []kelasModel.KelasModel
	if err := ctl.DB.Order("nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return helper.JsonOK(c, "OK", rows)
}

// POST /api/kelas
func (ctl *KelasController) Create(c *fiber.Ctx) error {
	var req kelasDto.KelasCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := kelasModel.KelasModel{
		Nama:          req.Nama,
		GelarDepan:    nilIfEmpty(req.GelarDepan),
		WaliKelas:     req.WaliKelas,
		GelarBelakang: nilIfEmpty(req.GelarBelakang),
		Nip:           req.Nip,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama kelas sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data kelas")
	}

	return helper.JsonCreated(c, "Data kelas berhasil disimpan", m)
}

// PUT /api/kelas/:id
func (ctl *KelasController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id pada path tidak valid")
	}

	var m kelasModel.KelasModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var req kelasDto.KelasUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m.Nama = req.Nama
	m.GelarDepan = nilIfEmpty(req.GelarDepan)
	m.WaliKelas = req.WaliKelas
	m.GelarBelakang = nilIfEmpty(req.GelarBelakang)
	m.Nip = req.Nip

	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama kelas sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengupdate data kelas")
	}

	return helper.JsonMessage(c, "Data kelas berhasil diupdate")
}

// DELETE /api/kelas/:id
func (ctl *KelasController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id pada path tidak valid")
	}

	var m kelasModel.KelasModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data kelas")
	}

	return helper.JsonMessage(c, "Data berhasil dihapus")
}

// POST /api/kelas/sync
// Fitur spesial: narik label kelas yang sudah ada di data siswa tapi belum
// punya baris di tabel kelas, wali kelas diisi placeholder dulu.
func (ctl *KelasController) SyncFromSiswa(c *fiber.Ctx) error {
	var existing []string
	if err := ctl.DB.Model(&kelasModel.KelasModel{}).Pluck("nama", &existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data kelas")
	}
	existingSet := make(map[string]bool, len(existing))
	for _, k := range existing {
		existingSet[k] = true
	}

	var siswaKelas []string
	if err := ctl.DB.Model(&siswaModel.SiswaModel{}).Distinct("kelas").Pluck("kelas", &siswaKelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	newCount := 0
	for _, k := range siswaKelas {
		if k == "" || existingSet[k] {
			continue
		}
		m := kelasModel.KelasModel{Nama: k, WaliKelas: "-", Nip: "-"}
		if err := ctl.DB.Create(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyinkronkan kelas")
		}
		newCount++
	}

	return helper.JsonMessage(c, fmt.Sprintf("Berhasil menyinkronkan %d kelas baru dari data siswa.", newCount))
}
