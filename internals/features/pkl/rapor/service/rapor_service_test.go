// file: internals/features/pkl/rapor/service/rapor_service_test.go
package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"reflect"
	"testing"
	"time"

	database "raporedyan_backend/internals/databases"

	kelasModel "raporedyan_backend/internals/features/akademik/kelas/model"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	tpModel "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/model"
	absensiModel "raporedyan_backend/internals/features/pkl/absensi/model"
	mappingModel "raporedyan_backend/internals/features/pkl/mapping/model"
	masterModel "raporedyan_backend/internals/features/pkl/master/model"
	nilaiModel "raporedyan_backend/internals/features/pkl/nilai/model"
	raporDto "raporedyan_backend/internals/features/pkl/rapor/dto"
	settingModel "raporedyan_backend/internals/features/sistem/settings/model"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func uintPtr(v uint) *uint { return &v }

// seedKelas mengisi skenario satu kelas berisi tiga siswa: satu lengkap
// (mapping + nilai + absensi), dua lainnya polosan.
func seedKelas(t *testing.T, db *gorm.DB) {
	t.Helper()

	siswas := []siswaModel.SiswaModel{
		{Nama: "Citra Lestari", Nisn: "003", Kelas: "XII TKJ 1"},
		{Nama: "Andi Wijaya", Nisn: "001", Kelas: "XII TKJ 1", ProgramKeahlian: "TJKT", KonsentrasiKeahlian: "TKJ"},
		{Nama: "Budi Hartono", Nisn: "002", Kelas: "XII TKJ 1"},
	}
	if err := db.Create(&siswas).Error; err != nil {
		t.Fatal(err)
	}

	tps := []tpModel.TujuanPembelajaranModel{
		{Nama: "<p>Menerapkan <strong>K3LH</strong></p>"},
		{Nama: "<p>Kompetensi Teknis kejuruan</p>"},
	}
	if err := db.Create(&tps).Error; err != nil {
		t.Fatal(err)
	}

	tempat := masterModel.TempatPKLModel{Nama: "PT Maju Jaya"}
	instruktur := masterModel.InstrukturPKLModel{Nama: "Joko Susilo"}
	pembimbing := masterModel.PembimbingSekolahModel{Nama: "Sri Rahayu"}
	if err := db.Create(&tempat).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&instruktur).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&pembimbing).Error; err != nil {
		t.Fatal(err)
	}

	// Andi (index 1) lengkap
	andi := siswas[1]
	if err := db.Create(&mappingModel.MappingModel{
		SiswaID:             andi.ID,
		TempatPKLID:         uintPtr(tempat.ID),
		InstrukturPKLID:     uintPtr(instruktur.ID),
		PembimbingSekolahID: uintPtr(pembimbing.ID),
	}).Error; err != nil {
		t.Fatal(err)
	}

	deskripsi := "Sangat rajin dan teliti."
	if err := db.Create(&nilaiModel.NilaiPKLModel{
		SiswaID:              andi.ID,
		TujuanPembelajaranID: tps[0].ID,
		Skor:                 85,
		Deskripsi:            &deskripsi,
	}).Error; err != nil {
		t.Fatal(err)
	}

	if err := db.Create(&absensiModel.AbsensiPKLModel{
		SiswaID: andi.ID, Sakit: 1, Izin: 2, Alpha: 0, Catatan: "Aktif selama PKL.",
	}).Error; err != nil {
		t.Fatal(err)
	}

	gelarDepan, gelarBelakang := "Drs.", "M.Pd."
	if err := db.Create(&kelasModel.KelasModel{
		Nama: "XII TKJ 1", WaliKelas: "Bambang Sutrisno",
		GelarDepan: &gelarDepan, GelarBelakang: &gelarBelakang, Nip: "19800101 200501 1 001",
	}).Error; err != nil {
		t.Fatal(err)
	}
}

func TestBuildKelas(t *testing.T) {
	db := newTestDB(t)
	seedKelas(t, db)
	agg := NewRaporAggregator(db)

	rows, err := agg.BuildKelas("XII TKJ 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("jumlah rapor = %d, want 3", len(rows))
	}

	// urut abjad nama
	wantOrder := []string{"Andi Wijaya", "Budi Hartono", "Citra Lestari"}
	for i, want := range wantOrder {
		if rows[i].Nama != want {
			t.Errorf("rows[%d].Nama = %q, want %q", i, rows[i].Nama, want)
		}
	}

	andi := rows[0]
	if andi.TempatPKL != "PT Maju Jaya" || andi.InstrukturPKL != "Joko Susilo" || andi.PembimbingSekolah != "Sri Rahayu" {
		t.Errorf("mapping Andi salah: %+v", andi)
	}
	if andi.WaliKelas != "Drs. Bambang Sutrisno, M.Pd." {
		t.Errorf("waliKelas = %q", andi.WaliKelas)
	}
	if andi.NipWali != "19800101 200501 1 001" {
		t.Errorf("nipWali = %q", andi.NipWali)
	}

	// setiap siswa harus punya entri untuk SEMUA TP, urutan sama
	for _, r := range rows {
		if len(r.Nilai) != 2 {
			t.Fatalf("nilai %s = %d entri, want 2", r.Nama, len(r.Nilai))
		}
		if r.Nilai[0].TP != "Menerapkan K3LH" {
			t.Errorf("TP pertama %q, tag HTML belum dibuang?", r.Nilai[0].TP)
		}
	}

	if andi.Nilai[0].Skor != 85 || andi.Nilai[0].Deskripsi != "Sangat rajin dan teliti." {
		t.Errorf("nilai Andi TP1 salah: %+v", andi.Nilai[0])
	}
	if andi.Nilai[1].Skor != 0 || andi.Nilai[1].Deskripsi != "-" {
		t.Errorf("sel kosong Andi harus default: %+v", andi.Nilai[1])
	}
	if andi.Absensi.Sakit != 1 || andi.Absensi.Izin != 2 || andi.Absensi.Catatan != "Aktif selama PKL." {
		t.Errorf("absensi Andi salah: %+v", andi.Absensi)
	}

	budi := rows[1]
	if budi.TempatPKL != "-" || budi.InstrukturPKL != "-" || budi.PembimbingSekolah != "-" {
		t.Errorf("mapping kosong harus '-': %+v", budi)
	}
	if budi.Absensi.Sakit != 0 || budi.Absensi.Catatan != absensiModel.CatatanDefault {
		t.Errorf("absensi default Budi salah: %+v", budi.Absensi)
	}
}

func TestBuildKelasIdempoten(t *testing.T) {
	db := newTestDB(t)
	seedKelas(t, db)
	agg := NewRaporAggregator(db)

	a, err := agg.BuildKelas("XII TKJ 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := agg.BuildKelas("XII TKJ 1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("dua pemanggilan beruntun menghasilkan payload berbeda")
	}
}

func TestBuildKelasKosong(t *testing.T) {
	db := newTestDB(t)
	agg := NewRaporAggregator(db)

	rows, err := agg.BuildKelas("XII ADA APA")
	if err != nil {
		t.Fatal(err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("kelas kosong harus slice kosong, dapat %v", rows)
	}
}

func TestBuildMeta(t *testing.T) {
	agg := &RaporAggregator{}

	meta := agg.BuildMeta(nil)
	if meta.NamaSekolah != "SMK BELUM DISETTING" || meta.Kota != "Indonesia" {
		t.Errorf("default meta salah: %+v", meta)
	}
	if meta.TglMulai != "-" || meta.TglAkhir != "-" {
		t.Errorf("tanggal default harus '-': %+v", meta)
	}

	rapor := datatypes.Date(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
	mulai := datatypes.Date(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC))
	meta = agg.BuildMeta(&settingModel.SettingModel{
		NamaSekolah:       "SMK Negeri 1 Kota Contoh",
		TahunPelajaran:    "2024/2025",
		Kota:              "Kota Contoh",
		NamaKepalaSekolah: "Drs. H. Ahmad, M.Pd.",
		NipKepalaSekolah:  "19800101 200501 1 001",
		TanggalRapor:      &rapor,
		TanggalMulaiPKL:   &mulai,
	})
	if meta.TanggalCetak != "15 Desember 2024" {
		t.Errorf("tanggalCetak = %q", meta.TanggalCetak)
	}
	if meta.TglMulai != "15 Juli 2024" {
		t.Errorf("tglMulai = %q", meta.TglMulai)
	}
	if meta.TglAkhir != "-" {
		t.Errorf("tglAkhir tanpa setting harus '-', dapat %q", meta.TglAkhir)
	}

	// tanggal zero value diperlakukan sama dengan belum diisi
	nol := datatypes.Date{}
	meta = agg.BuildMeta(&settingModel.SettingModel{TanggalAkhirPKL: &nol})
	if meta.TglAkhir != "-" {
		t.Errorf("tglAkhir zero value harus '-', dapat %q", meta.TglAkhir)
	}
}

func contohRapor(nama, nisn string) raporDto.RaporSiswa {
	return raporDto.RaporSiswa{
		Nama: nama, Nisn: nisn, Kelas: "XII TKJ 1",
		ProgramKeahlian:     "Teknik Jaringan Komputer dan Telekomunikasi",
		KonsentrasiKeahlian: "Teknik Komputer dan Jaringan",
		TempatPKL:           "PT Maju Jaya",
		InstrukturPKL:       "Joko Susilo",
		PembimbingSekolah:   "Sri Rahayu",
		WaliKelas:           "Drs. Bambang Sutrisno, M.Pd.",
		NipWali:             "123",
		Nilai: []raporDto.NilaiRapor{
			{TP: "Menerapkan K3LH", Skor: 85, Deskripsi: "Sudah tertib memakai APD."},
			{TP: "Kompetensi Teknis", Skor: 0, Deskripsi: "-"},
		},
		Absensi: raporDto.AbsensiRapor{Sakit: 1, Izin: 0, Alpha: 0, Catatan: "Sudah melakukan kegiatan PKL dengan baik."},
	}
}

func contohMeta() raporDto.MetaSettings {
	return raporDto.MetaSettings{
		NamaSekolah:    "SMK Negeri 1 Kota Contoh",
		TahunPelajaran: "2024/2025",
		KepalaSekolah:  "Drs. H. Ahmad, M.Pd.",
		NipKepala:      "19800101 200501 1 001",
		Kota:           "Kota Contoh",
		TanggalCetak:   "15 Desember 2024",
		TglMulai:       "15 Juli 2024",
		TglAkhir:       "15 Desember 2024",
	}
}

func TestRenderRaporPDF(t *testing.T) {
	data := contohRapor("Andi Wijaya", "001")
	out, err := RenderRaporPDF(&data, contohMeta())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("PDF kosong")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output bukan PDF, prefix: %q", out[:8])
	}
}

func TestBuildRaporZip(t *testing.T) {
	rows := []raporDto.RaporSiswa{
		contohRapor("Andi Wijaya", "001"),
		contohRapor("Budi Hartono", "002"),
		contohRapor("Citra Lestari", "003"),
	}

	zipBytes, count, err := BuildRaporZip(rows, contohMeta())
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"01_Andi_Wijaya.pdf", "02_Budi_Hartono.pdf", "03_Citra_Lestari.pdf"}
	if len(zr.File) != len(wantNames) {
		t.Fatalf("jumlah entri = %d, want %d", len(zr.File), len(wantNames))
	}
	for i, want := range wantNames {
		if zr.File[i].Name != want {
			t.Errorf("entri[%d] = %q, want %q", i, zr.File[i].Name, want)
		}
		if zr.File[i].UncompressedSize64 == 0 {
			t.Errorf("entri %q kosong", zr.File[i].Name)
		}
	}
}

func TestZipFileName(t *testing.T) {
	if got := ZipFileName("XII TKJ 1"); got != "Rapor_PKL_XII_TKJ_1.zip" {
		t.Errorf("got %q", got)
	}
}
