// file: internals/features/sistem/settings/controller/setting_controller.go
package controller

import (
	"strings"
	"time"

	helper "raporedyan_backend/internals/helpers"

	settingDto "raporedyan_backend/internals/features/sistem/settings/dto"
	settingModel "raporedyan_backend/internals/features/sistem/settings/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettingController(db *gorm.DB, v *validator.Validate) *SettingController {
	return &SettingController{DB: db, Validate: v}
}

// GET /api/settings — selalu baris pertama; dibuat otomatis kalau kosong
func (ctl *SettingController) Index(c *fiber.Ctx) error {
	var setting settingModel.SettingModel
	err := ctl.DB.First(&setting).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
		}
		setting = settingModel.SettingModel{NamaSekolah: "Sekolah Belum Disetting"}
		if err := ctl.DB.Create(&setting).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengaturan default")
		}
	}
	return helper.JsonOK(c, "OK", setting)
}

// PUT /api/settings
func (ctl *SettingController) Update(c *fiber.Ctx) error {
	var req settingDto.SettingUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var setting settingModel.SettingModel
	if err := ctl.DB.First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
		}
		setting = settingModel.SettingModel{}
	}

	setting.NamaSekolah = req.NamaSekolah
	setting.TahunPelajaran = req.TahunPelajaran
	setting.Kota = req.Kota
	setting.NamaKepalaSekolah = req.NamaKepalaSekolah
	setting.NipKepalaSekolah = req.NipKepalaSekolah
	setting.TanggalMulaiPKL = parseDate(req.TanggalMulaiPKL)
	setting.TanggalAkhirPKL = parseDate(req.TanggalAkhirPKL)
	setting.TanggalRapor = parseDate(req.TanggalRapor)

	if err := ctl.DB.Save(&setting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}

	return helper.JsonMessage(c, "Pengaturan berhasil disimpan")
}

func parseDate(s string) *datatypes.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
