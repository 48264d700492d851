// file: internals/features/akademik/kelas/controller/kelas_controller_test.go
package controller_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	database "raporedyan_backend/internals/databases"

	kelasModel "raporedyan_backend/internals/features/akademik/kelas/model"
	kelasRoute "raporedyan_backend/internals/features/akademik/kelas/route"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"

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
	kelasRoute.KelasRoutes(api, db, validator.New())
	return app, db
}

// sync membuat baris kelas untuk label yang baru muncul di data siswa
func TestSyncDariSiswa(t *testing.T) {
	app, db := newTestApp(t)

	siswas := []siswaModel.SiswaModel{
		{Nama: "Andi", Nisn: "001", Kelas: "XII TKJ 1"},
		{Nama: "Budi", Nisn: "002", Kelas: "XII TKJ 1"},
		{Nama: "Citra", Nisn: "003", Kelas: "XII RPL 2"},
	}
	if err := db.Create(&siswas).Error; err != nil {
		t.Fatal(err)
	}
	// satu kelas sudah ada sebelumnya: tidak boleh dobel
	if err := db.Create(&kelasModel.KelasModel{Nama: "XII TKJ 1", WaliKelas: "Bu Sri", Nip: "123"}).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(fiber.MethodPost, "/api/kelas/sync", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("sync status = %d: %s", resp.StatusCode, raw)
	}
	if !bytes.Contains(raw, []byte("Berhasil menyinkronkan 1 kelas baru dari data siswa.")) {
		t.Errorf("pesan sync tidak sesuai: %s", raw)
	}

	var rows []kelasModel.KelasModel
	if err := db.Order("nama ASC").Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("jumlah kelas = %d, want 2", len(rows))
	}

	// baris hasil sync dapat placeholder
	var baru kelasModel.KelasModel
	if err := db.Where("nama = ?", "XII RPL 2").First(&baru).Error; err != nil {
		t.Fatal(err)
	}
	if baru.WaliKelas != "-" || baru.Nip != "-" {
		t.Errorf("placeholder sync salah: %+v", baru)
	}

	// kelas lama tidak tersentuh
	var lama kelasModel.KelasModel
	if err := db.Where("nama = ?", "XII TKJ 1").First(&lama).Error; err != nil {
		t.Fatal(err)
	}
	if lama.WaliKelas != "Bu Sri" {
		t.Errorf("kelas lama berubah: %+v", lama)
	}
}

func TestCreateNamaGanda(t *testing.T) {
	app, db := newTestApp(t)

	if err := db.Create(&kelasModel.KelasModel{Nama: "XII TKJ 1", WaliKelas: "Bu Sri", Nip: "1"}).Error; err != nil {
		t.Fatal(err)
	}

	payload := fiber.Map{"nama": "XII TKJ 1", "wali_kelas": "Pak Joko", "nip": "2"}
	body, _ := sonic.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, "/api/kelas", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("nama ganda harus 400, dapat %d: %s", resp.StatusCode, raw)
	}
	if !bytes.Contains(raw, []byte("Nama kelas sudah terdaftar")) {
		t.Errorf("pesan tidak sesuai: %s", raw)
	}
}
