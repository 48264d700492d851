// file: internals/features/pkl/master/route/master_route.go
package route

import (
	masterController "raporedyan_backend/internals/features/pkl/master/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MasterRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	tempat := masterController.NewTempatPKLController(db, v)
	rt := api.Group("/tempat-pkl")
	rt.Get("/", tempat.List)
	rt.Post("/", tempat.Create)
	rt.Post("/bulk", tempat.BulkStore)
	rt.Put("/:id", tempat.Update)
	rt.Delete("/:id", tempat.Destroy)

	instruktur := masterController.NewInstrukturPKLController(db, v)
	ri := api.Group("/instruktur-pkl")
	ri.Get("/", instruktur.List)
	ri.Post("/", instruktur.Create)
	ri.Post("/bulk", instruktur.BulkStore)
	ri.Put("/:id", instruktur.Update)
	ri.Delete("/:id", instruktur.Destroy)

	pembimbing := masterController.NewPembimbingSekolahController(db, v)
	rp := api.Group("/pembimbing-sekolah")
	rp.Get("/", pembimbing.List)
	rp.Post("/", pembimbing.Create)
	rp.Post("/bulk", pembimbing.BulkStore)
	rp.Put("/:id", pembimbing.Update)
	rp.Delete("/:id", pembimbing.Destroy)
}
