// file: internals/features/sistem/dashboard/route/dashboard_route.go
package route

import (
	dashboardController "raporedyan_backend/internals/features/sistem/dashboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)
	api.Get("/dashboard", ctl.Index)
}
