// file: internals/features/akademik/siswa/route/siswa_route.go
package route

import (
	siswaController "raporedyan_backend/internals/features/akademik/siswa/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SiswaRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := siswaController.NewSiswaController(db, v)

	r := api.Group("/siswa")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Post("/bulk", ctl.BulkStore)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Destroy)
}
