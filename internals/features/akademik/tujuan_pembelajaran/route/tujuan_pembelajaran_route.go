// file: internals/features/akademik/tujuan_pembelajaran/route/tujuan_pembelajaran_route.go
package route

import (
	tpController "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TujuanPembelajaranRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := tpController.NewTujuanPembelajaranController(db, v)

	r := api.Group("/tujuan-pembelajaran")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Post("/import", ctl.Import)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Destroy)
}
