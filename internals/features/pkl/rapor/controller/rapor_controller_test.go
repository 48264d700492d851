// file: internals/features/pkl/rapor/controller/rapor_controller_test.go
package controller_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	database "raporedyan_backend/internals/databases"

	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	raporRoute "raporedyan_backend/internals/features/pkl/rapor/route"

	"github.com/bytedance/sonic"
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
	raporRoute.RaporRoutes(api, db)
	return app, db
}

func TestPDFNamaFileUnduhan(t *testing.T) {
	app, db := newTestApp(t)

	siswa := siswaModel.SiswaModel{Nama: "Andi Wijaya", Nisn: "001", Kelas: "XII TKJ 1"}
	if err := db.Create(&siswa).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/rapor/pdf?siswa_id=%d", siswa.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderContentDisposition); got != `attachment; filename="Rapor_PKL_Andi_Wijaya.pdf"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Error("body bukan dokumen PDF")
	}
}

func TestPDFSiswaTidakDitemukan(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/rapor/pdf?siswa_id=999", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
