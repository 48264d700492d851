// file: internals/features/akademik/tujuan_pembelajaran/controller/tujuan_pembelajaran_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	tpModel "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TujuanPembelajaranController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTujuanPembelajaranController(db *gorm.DB, v *validator.Validate) *TujuanPembelajaranController {
	return &TujuanPembelajaranController{DB: db, Validate: v}
}

type tpReq struct {
	Nama string `json:"nama" validate:"required"`
}

type tpImportReq struct {
	Data []tpReq `json:"data"`
}

// GET /api/tujuan-pembelajaran
func (ctl *TujuanPembelajaranController) List(c *fiber.Ctx) error {
	var rows []tpModel.TujuanPembelajaranModel
	if err := ctl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tujuan pembelajaran")
	}
	return helper.JsonOK(c, "OK", rows)
}

// POST /api/tujuan-pembelajaran
func (ctl *TujuanPembelajaranController) Create(c *fiber.Ctx) error {
	var req tpReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := tpModel.TujuanPembelajaranModel{Nama: req.Nama}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonCreated(c, "Data berhasil disimpan", m)
}

// PUT /api/tujuan-pembelajaran/:id
func (ctl *TujuanPembelajaranController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id pada path tidak valid")
	}

	var m tpModel.TujuanPembelajaranModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var req tpReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m.Nama = req.Nama
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengupdate data")
	}
	return helper.JsonMessage(c, "Data berhasil diperbarui")
}

// DELETE /api/tujuan-pembelajaran/:id
func (ctl *TujuanPembelajaranController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id pada path tidak valid")
	}

	var m tpModel.TujuanPembelajaranModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonMessage(c, "Data berhasil dihapus")
}

// POST /api/tujuan-pembelajaran/import
// Baris teks polos dibungkus <p>...</p> biar rapi tampil di WYSIWYG;
// baris yang sudah mengandung HTML dibiarkan apa adanya.
func (ctl *TujuanPembelajaranController) Import(c *fiber.Ctx) error {
	var req tpImportReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data kosong")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Data {
			content := row.Nama
			if helper.StripHTML(content) == content {
				content = "<p>" + content + "</p>"
			}
			if err := tx.Create(&tpModel.TujuanPembelajaranModel{Nama: content}).Error; err != nil {
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
