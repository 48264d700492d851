// file: internals/features/akademik/kelas/route/kelas_route.go
package route

import (
	kelasController "raporedyan_backend/internals/features/akademik/kelas/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func KelasRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := kelasController.NewKelasController(db, v)

	r := api.Group("/kelas")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Post("/sync", ctl.SyncFromSiswa)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Destroy)
}
