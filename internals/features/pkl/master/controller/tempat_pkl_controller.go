// file: internals/features/pkl/master/controller/tempat_pkl_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	masterDto "raporedyan_backend/internals/features/pkl/master/dto"
	masterModel "raporedyan_backend/internals/features/pkl/master/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TempatPKLController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTempatPKLController(db *gorm.DB, v *validator.Validate) *TempatPKLController {
	return &TempatPKLController{DB: db, Validate: v}
}

// GET /api/tempat-pkl
func (ctl *TempatPKLController) List(c *fiber.Ctx) error {
	var rows []masterModel.TempatPKLModel
	if err := ctl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tempat PKL")
	}
	return helper.JsonOK(c, "OK", rows)
}

// POST /api/tempat-pkl
func (ctl *TempatPKLController) Create(c *fiber.Ctx) error {
	var req masterDto.MasterCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := masterModel.TempatPKLModel{Nama: req.Nama}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonCreated(c, "Tempat PKL berhasil ditambahkan", m)
}

// PUT /api/tempat-pkl/:id
func (ctl *TempatPKLController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id pada path tidak valid")
	}

	var m masterModel.TempatPKLModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var req masterDto.MasterCreateReq
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
	return helper.JsonMessage(c, "Tempat PKL berhasil diupdate")
}

// DELETE /api/tempat-pkl/:id
func (ctl *TempatPKLController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id pada path tidak valid")
	}

	var m masterModel.TempatPKLModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonMessage(c, "Data berhasil dihapus")
}

// POST /api/tempat-pkl/bulk — firstOrCreate by nama biar gak ada duplikat
func (ctl *TempatPKLController) BulkStore(c *fiber.Ctx) error {
	var req masterDto.MasterBulkReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data kosong")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Data {
			var m masterModel.TempatPKLModel
			if err := tx.Where("nama = ?", row.Nama).
				FirstOrCreate(&m, masterModel.TempatPKLModel{Nama: row.Nama}).Error; err != nil {
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
