// file: internals/features/sistem/settings/route/setting_route.go
package route

import (
	settingController "raporedyan_backend/internals/features/sistem/settings/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SettingRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := settingController.NewSettingController(db, v)

	r := api.Group("/settings")
	r.Get("/", ctl.Index)
	r.Put("/", ctl.Update)
}
