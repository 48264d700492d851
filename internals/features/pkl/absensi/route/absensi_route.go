// file: internals/features/pkl/absensi/route/absensi_route.go
package route

import (
	absensiController "raporedyan_backend/internals/features/pkl/absensi/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AbsensiRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := absensiController.NewAbsensiController(db, v)

	r := api.Group("/absensi")
	r.Get("/", ctl.Index)
	r.Get("/kelas-list", ctl.KelasList)
	r.Post("/save", ctl.StoreBulk)
	r.Post("/import", ctl.Import)
}
