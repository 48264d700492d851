// file: internals/route/index.go
package route

import (
	"log"

	kelasRoute "raporedyan_backend/internals/features/akademik/kelas/route"
	siswaRoute "raporedyan_backend/internals/features/akademik/siswa/route"
	tpRoute "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/route"
	absensiRoute "raporedyan_backend/internals/features/pkl/absensi/route"
	mappingRoute "raporedyan_backend/internals/features/pkl/mapping/route"
	masterRoute "raporedyan_backend/internals/features/pkl/master/route"
	nilaiRoute "raporedyan_backend/internals/features/pkl/nilai/route"
	raporRoute "raporedyan_backend/internals/features/pkl/rapor/route"
	dashboardRoute "raporedyan_backend/internals/features/sistem/dashboard/route"
	settingRoute "raporedyan_backend/internals/features/sistem/settings/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mendaftarkan semua endpoint aplikasi di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()
	api := app.Group("/api")

	log.Println("[INFO] Setting up routes: akademik")
	siswaRoute.SiswaRoutes(api, db, v)
	kelasRoute.KelasRoutes(api, db, v)
	tpRoute.TujuanPembelajaranRoutes(api, db, v)

	log.Println("[INFO] Setting up routes: pkl")
	masterRoute.MasterRoutes(api, db, v)
	mappingRoute.MappingRoutes(api, db, v)
	nilaiRoute.NilaiRoutes(api, db, v)
	absensiRoute.AbsensiRoutes(api, db, v)
	raporRoute.RaporRoutes(api, db)

	log.Println("[INFO] Setting up routes: sistem")
	settingRoute.SettingRoutes(api, db, v)
	dashboardRoute.DashboardRoutes(api, db)

	log.Println("✅ Semua route terdaftar")
}
