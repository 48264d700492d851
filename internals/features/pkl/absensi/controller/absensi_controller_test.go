// file: internals/features/pkl/absensi/controller/absensi_controller_test.go
package controller_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	database "raporedyan_backend/internals/databases"

	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	absensiModel "raporedyan_backend/internals/features/pkl/absensi/model"
	absensiRoute "raporedyan_backend/internals/features/pkl/absensi/route"

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
	absensiRoute.AbsensiRoutes(api, db, validator.New())
	return app, db
}

// siswa tanpa record absensi tetap muncul dengan nilai nol
func TestIndexDefaultNol(t *testing.T) {
	app, db := newTestApp(t)

	siswas := []siswaModel.SiswaModel{
		{Nama: "Andi", Nisn: "001", Kelas: "XII TKJ 1"},
		{Nama: "Budi", Nisn: "002", Kelas: "XII TKJ 1"},
	}
	if err := db.Create(&siswas).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&absensiModel.AbsensiPKLModel{
		SiswaID: siswas[0].ID, Sakit: 2, Izin: 1, Alpha: 3, Catatan: "Perlu perhatian.",
	}).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/absensi?kelas=XII+TKJ+1", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}

	var envelope struct {
		Data []struct {
			Nama    string `json:"nama"`
			Sakit   int    `json:"sakit"`
			Izin    int    `json:"izin"`
			Alpha   int    `json:"alpha"`
			Catatan string `json:"catatan"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		t.Fatal(err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("jumlah baris = %d, want 2", len(envelope.Data))
	}
	if envelope.Data[0].Nama != "Andi" || envelope.Data[0].Sakit != 2 || envelope.Data[0].Alpha != 3 {
		t.Errorf("baris Andi salah: %+v", envelope.Data[0])
	}
	if envelope.Data[1].Nama != "Budi" || envelope.Data[1].Sakit != 0 || envelope.Data[1].Catatan != "" {
		t.Errorf("baris Budi harus default nol: %+v", envelope.Data[1])
	}
}

func TestImportSkipNisnAsing(t *testing.T) {
	app, db := newTestApp(t)

	siswa := siswaModel.SiswaModel{Nama: "Citra", Nisn: "003", Kelas: "XII RPL 2"}
	if err := db.Create(&siswa).Error; err != nil {
		t.Fatal(err)
	}

	payload := fiber.Map{
		"rows": []fiber.Map{
			{"nisn": " 003 ", "sakit": 1, "izin": 0, "alpha": 2, "catatan": "Cukup aktif."},
			{"nisn": "999", "sakit": 5},
		},
	}
	body, _ := sonic.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, "/api/absensi/import", bytes.NewReader(body))
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
	if !bytes.Contains(raw, []byte("Berhasil memproses 1 data absensi.")) {
		t.Errorf("pesan tidak sesuai: %s", raw)
	}

	var rows []absensiModel.AbsensiPKLModel
	if err := db.Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("jumlah baris = %d, want 1", len(rows))
	}
	if rows[0].SiswaID != siswa.ID || rows[0].Alpha != 2 || rows[0].Catatan != "Cukup aktif." {
		t.Errorf("baris import salah: %+v", rows[0])
	}
}
