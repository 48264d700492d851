// file: internals/features/pkl/rapor/controller/rapor_controller.go
package controller

import (
	"strconv"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	raporService "raporedyan_backend/internals/features/pkl/rapor/service"
	settingModel "raporedyan_backend/internals/features/sistem/settings/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RaporController struct {
	DB  *gorm.DB
	Agg *raporService.RaporAggregator
}

func NewRaporController(db *gorm.DB) *RaporController {
	return &RaporController{DB: db, Agg: raporService.NewRaporAggregator(db)}
}

// settings diambil sekali per request, nil kalau belum pernah disetting
func (ctl *RaporController) firstSetting() *settingModel.SettingModel {
	var setting settingModel.SettingModel
	if err := ctl.DB.First(&setting).Error; err != nil {
		return nil
	}
	return &setting
}

// GET /api/rapor/bulk?kelas=XII%20RPL%201
// Data rapor seluruh kelas + meta settings, siap dirender frontend.
func (ctl *RaporController) Bulk(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas harus dipilih")
	}

	rows, err := ctl.Agg.BuildKelas(kelas)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merakit data rapor")
	}
	meta := ctl.Agg.BuildMeta(ctl.firstSetting())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"data":          rows,
		"meta_settings": meta,
	})
}

// GET /api/rapor/pdf?siswa_id=12 — unduh PDF rapor satu siswa
func (ctl *RaporController) PDF(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("siswa_id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter siswa_id tidak valid")
	}

	data, err := ctl.Agg.BuildSiswa(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Data siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merakit data rapor")
	}
	meta := ctl.Agg.BuildMeta(ctl.firstSetting())

	pdfBytes, err := raporService.RenderRaporPDF(data, meta)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF rapor")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Rapor_PKL_`+strings.ReplaceAll(data.Nama, " ", "_")+`.pdf"`)
	return c.Send(pdfBytes)
}

// GET /api/rapor/zip?kelas=XII%20RPL%201
// Unduh satu ZIP berisi PDF rapor seluruh kelas.
func (ctl *RaporController) Zip(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas harus dipilih")
	}

	rows, err := ctl.Agg.BuildKelas(kelas)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merakit data rapor")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada siswa di kelas tersebut")
	}
	meta := ctl.Agg.BuildMeta(ctl.firstSetting())

	zipBytes, count, err := raporService.BuildRaporZip(rows, meta)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ZIP rapor")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Semua rapor gagal dirender")
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+raporService.ZipFileName(kelas)+`"`)
	return c.Send(zipBytes)
}
