// file: internals/features/pkl/nilai/route/nilai_route.go
package route

import (
	"math/rand"
	"time"

	"raporedyan_backend/internals/configs"
	nilaiController "raporedyan_backend/internals/features/pkl/nilai/controller"
	nilaiService "raporedyan_backend/internals/features/pkl/nilai/service"
	"raporedyan_backend/internals/middlewares"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NilaiRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := nilaiService.NewNarrativeGenerator(configs.GeminiAPIKey, configs.GeminiModel, rng)
	ctl := nilaiController.NewNilaiController(db, v, gen)

	r := api.Group("/nilai-pkl")
	r.Get("/", ctl.Index)
	r.Get("/kelas-list", ctl.KelasList)
	r.Get("/export", ctl.Export)
	r.Post("/save", ctl.StoreBulk)
	r.Post("/import", ctl.Import)

	// endpoint AI dikasih limiter sendiri yang lebih ketat
	r.Post("/generate-ai", middlewares.AIRateLimiter(), ctl.GenerateAI)
	r.Post("/generate-ai/batch", middlewares.AIRateLimiter(), ctl.GenerateAIBatch)
}
