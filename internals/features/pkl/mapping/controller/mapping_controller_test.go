// file: internals/features/pkl/mapping/controller/mapping_controller_test.go
package controller_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	database "raporedyan_backend/internals/databases"

	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	mappingModel "raporedyan_backend/internals/features/pkl/mapping/model"
	mappingRoute "raporedyan_backend/internals/features/pkl/mapping/route"
	masterModel "raporedyan_backend/internals/features/pkl/master/model"

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
	mappingRoute.MappingRoutes(api, db, validator.New())
	return app, db
}

// Import mencocokkan nama dengan lowercase + trim; spasi nyasar dari
// excel tidak boleh menggagalkan pencocokan.
func TestImportNamaDenganSpasi(t *testing.T) {
	app, db := newTestApp(t)

	siswa := siswaModel.SiswaModel{Nama: "Budi Hartono", Nisn: "002", Kelas: "XII TKJ 1"}
	if err := db.Create(&siswa).Error; err != nil {
		t.Fatal(err)
	}
	tempat := masterModel.TempatPKLModel{Nama: "PT Maju Jaya"}
	if err := db.Create(&tempat).Error; err != nil {
		t.Fatal(err)
	}

	payload := fiber.Map{
		"data": []fiber.Map{
			{"namaSiswa": "  BUDI hartono  ", "tempatPKL": "pt maju jaya"},
			{"namaSiswa": "Tidak Terdaftar", "tempatPKL": "PT Maju Jaya"},
		},
	}
	body, _ := sonic.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, "/api/mapping/import", bytes.NewReader(body))
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

	// satu baris berhasil, satu dilewati
	if !strings.Contains(string(raw), "Berhasil memproses 1 data mapping.") {
		t.Errorf("pesan tidak sesuai: %s", raw)
	}

	var m mappingModel.MappingModel
	if err := db.Where("siswa_id = ?", siswa.ID).First(&m).Error; err != nil {
		t.Fatalf("mapping tidak tersimpan: %v", err)
	}
	if m.TempatPKLID == nil || *m.TempatPKLID != tempat.ID {
		t.Errorf("tempat_pkl_id = %v, want %d", m.TempatPKLID, tempat.ID)
	}
	if m.InstrukturPKLID != nil {
		t.Errorf("instruktur harus nil kalau kolomnya kosong")
	}

	var total int64
	db.Model(&mappingModel.MappingModel{}).Count(&total)
	if total != 1 {
		t.Errorf("jumlah mapping = %d, want 1", total)
	}
}

func TestSaveBulkUpsert(t *testing.T) {
	app, db := newTestApp(t)

	siswa := siswaModel.SiswaModel{Nama: "Andi", Nisn: "001", Kelas: "XII TKJ 1"}
	if err := db.Create(&siswa).Error; err != nil {
		t.Fatal(err)
	}
	tempatA := masterModel.TempatPKLModel{Nama: "PT A"}
	tempatB := masterModel.TempatPKLModel{Nama: "PT B"}
	if err := db.Create(&tempatA).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&tempatB).Error; err != nil {
		t.Fatal(err)
	}

	for _, tid := range []uint{tempatA.ID, tempatB.ID} {
		payload := fiber.Map{
			"mappings": []fiber.Map{{"id": siswa.ID, "tempatPKLId": tid}},
		}
		body, _ := sonic.Marshal(payload)
		req := httptest.NewRequest(fiber.MethodPost, "/api/mapping/save", bytes.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("save status = %d", resp.StatusCode)
		}
	}

	var rows []mappingModel.MappingModel
	if err := db.Where("siswa_id = ?", siswa.ID).Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("jumlah mapping = %d, want 1 (harus upsert)", len(rows))
	}
	if rows[0].TempatPKLID == nil || *rows[0].TempatPKLID != tempatB.ID {
		t.Errorf("tempat akhir = %v, want %d", rows[0].TempatPKLID, tempatB.ID)
	}
}
