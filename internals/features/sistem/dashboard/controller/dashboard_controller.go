// file: internals/features/sistem/dashboard/controller/dashboard_controller.go
package controller

import (
	helper "raporedyan_backend/internals/helpers"

	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	masterModel "raporedyan_backend/internals/features/pkl/master/model"
	settingModel "raporedyan_backend/internals/features/sistem/settings/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard — statistik ringkas + info settings untuk beranda
func (ctl *DashboardController) Index(c *fiber.Ctx) error {
	counts := map[string]int64{}
	for key, model := range map[string]interface{}{
		"total_siswa":      &siswaModel.SiswaModel{},
		"total_tempat":     &masterModel.TempatPKLModel{},
		"total_instruktur": &masterModel.InstrukturPKLModel{},
		"total_pembimbing": &masterModel.PembimbingSekolahModel{},
	} {
		var n int64
		if err := ctl.DB.Model(model).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
		}
		counts[key] = n
	}

	var setting *settingModel.SettingModel
	var row settingModel.SettingModel
	if err := ctl.DB.First(&row).Error; err == nil {
		setting = &row
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"stats":    counts,
		"settings": setting,
	})
}
