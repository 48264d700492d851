// file: internals/databases/migrate.go
package database

import (
	"log"

	kelasModel "raporedyan_backend/internals/features/akademik/kelas/model"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	tpModel "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/model"
	absensiModel "raporedyan_backend/internals/features/pkl/absensi/model"
	mappingModel "raporedyan_backend/internals/features/pkl/mapping/model"
	masterModel "raporedyan_backend/internals/features/pkl/master/model"
	nilaiModel "raporedyan_backend/internals/features/pkl/nilai/model"
	settingModel "raporedyan_backend/internals/features/sistem/settings/model"

	"gorm.io/gorm"
)

// AutoMigrate menjalankan migrasi skema seluruh model aplikasi.
// Urutan penting: tabel master dan siswa duluan sebelum tabel relasinya.
func AutoMigrate(db *gorm.DB) error {
	log.Println("🔁 Menjalankan auto-migrate...")
	err := db.AutoMigrate(
		&siswaModel.SiswaModel{},
		&kelasModel.KelasModel{},
		&tpModel.TujuanPembelajaranModel{},
		&masterModel.TempatPKLModel{},
		&masterModel.InstrukturPKLModel{},
		&masterModel.PembimbingSekolahModel{},
		&mappingModel.MappingModel{},
		&nilaiModel.NilaiPKLModel{},
		&absensiModel.AbsensiPKLModel{},
		&settingModel.SettingModel{},
	)
	if err != nil {
		return err
	}
	log.Println("✅ Auto-migrate selesai")
	return nil
}
