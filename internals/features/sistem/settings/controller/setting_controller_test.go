// file: internals/features/sistem/settings/controller/setting_controller_test.go
package controller_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	database "raporedyan_backend/internals/databases"

	settingModel "raporedyan_backend/internals/features/sistem/settings/model"
	settingRoute "raporedyan_backend/internals/features/sistem/settings/route"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	api := app.Group("/api")
	settingRoute.SettingRoutes(api, db, validator.New())
	return app, db
}

// GET pertama kali membuat baris default
func TestIndexBuatDefault(t *testing.T) {
	app, db := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/settings", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}
	if !bytes.Contains(raw, []byte("Sekolah Belum Disetting")) {
		t.Errorf("default tidak dibuat: %s", raw)
	}

	var total int64
	db.Model(&settingModel.SettingModel{}).Count(&total)
	if total != 1 {
		t.Errorf("jumlah baris settings = %d, want 1", total)
	}
}

func TestUpdateSelaluBarisPertama(t *testing.T) {
	app, db := newTestApp(t)

	if err := db.Create(&settingModel.SettingModel{NamaSekolah: "Lama"}).Error; err != nil {
		t.Fatal(err)
	}

	payload := fiber.Map{
		"namaSekolah":       "SMK Negeri 1 Kota Contoh",
		"tahunPelajaran":    "2024/2025",
		"kota":              "Kota Contoh",
		"tanggalMulaiPKL":   "2024-07-15",
		"tanggalAkhirPKL":   "2024-12-15",
		"tanggalRapor":      "2024-12-15",
		"namaKepalaSekolah": "Drs. H. Ahmad, M.Pd.",
		"nipKepalaSekolah":  "19800101 200501 1 001",
	}
	body, _ := sonic.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPut, "/api/settings", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}

	var setting settingModel.SettingModel
	if err := db.First(&setting).Error; err != nil {
		t.Fatal(err)
	}
	if setting.NamaSekolah != "SMK Negeri 1 Kota Contoh" || setting.Kota != "Kota Contoh" {
		t.Errorf("settings tidak terupdate: %+v", setting)
	}
	if setting.TanggalRapor == nil {
		t.Fatal("tanggal_rapor nil")
	}
	if got := time.Time(*setting.TanggalRapor); got.Year() != 2024 || got.Month() != 12 || got.Day() != 15 {
		t.Errorf("tanggal_rapor = %v", got)
	}

	var total int64
	db.Model(&settingModel.SettingModel{}).Count(&total)
	if total != 1 {
		t.Errorf("update tidak boleh menambah baris, total = %d", total)
	}
}
