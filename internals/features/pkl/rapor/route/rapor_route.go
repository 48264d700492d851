// file: internals/features/pkl/rapor/route/rapor_route.go
package route

import (
	raporController "raporedyan_backend/internals/features/pkl/rapor/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RaporRoutes(api fiber.Router, db *gorm.DB) {
	ctl := raporController.NewRaporController(db)

	r := api.Group("/rapor")
	r.Get("/bulk", ctl.Bulk)
	r.Get("/pdf", ctl.PDF)
	r.Get("/zip", ctl.Zip)
}
