// file: internals/features/pkl/mapping/route/mapping_route.go
package route

import (
	mappingController "raporedyan_backend/internals/features/pkl/mapping/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MappingRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := mappingController.NewMappingController(db, v)

	r := api.Group("/mapping")
	r.Get("/", ctl.Index)
	r.Post("/save", ctl.StoreBulk)
	r.Post("/import", ctl.Import)
}
