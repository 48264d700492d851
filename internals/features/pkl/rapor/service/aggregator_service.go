// file: internals/features/pkl/rapor/service/aggregator_service.go
package service

import (
	"time"

	helper "raporedyan_backend/internals/helpers"

	kelasModel "raporedyan_backend/internals/features/akademik/kelas/model"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	tpModel "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/model"
	absensiModel "raporedyan_backend/internals/features/pkl/absensi/model"
	mappingModel "raporedyan_backend/internals/features/pkl/mapping/model"
	nilaiModel "raporedyan_backend/internals/features/pkl/nilai/model"
	raporDto "raporedyan_backend/internals/features/pkl/rapor/dto"
	settingModel "raporedyan_backend/internals/features/sistem/settings/model"

	"gorm.io/gorm"
)

// default jurusan kalau data siswa belum diisi lengkap
const (
	defaultProgramKeahlian     = "Teknik Jaringan Komputer dan Telekomunikasi"
	defaultKonsentrasiKeahlian = "Teknik Komputer dan Jaringan"
)

/* =========================
   Aggregator rapor
   — merakit satu payload denormalisasi per siswa untuk satu kelas
========================= */

type RaporAggregator struct {
	DB *gorm.DB
}

func NewRaporAggregator(db *gorm.DB) *RaporAggregator {
	return &RaporAggregator{DB: db}
}

// BuildMeta mengubah baris settings jadi meta kop surat. Dipanggil sekali
// per request lalu hasilnya dioper ke renderer, tidak ada state global.
func (a *RaporAggregator) BuildMeta(setting *settingModel.SettingModel) raporDto.MetaSettings {
	meta := raporDto.MetaSettings{
		NamaSekolah:    "SMK BELUM DISETTING",
		TahunPelajaran: time.Now().Format("2006"),
		KepalaSekolah:  "-",
		NipKepala:      "-",
		Kota:           "Indonesia",
		TanggalCetak:   helper.FormatTanggalID(time.Now()),
		TglMulai:       "-",
		TglAkhir:       "-",
	}
	if setting == nil {
		return meta
	}

	if setting.NamaSekolah != "" {
		meta.NamaSekolah = setting.NamaSekolah
	}
	if setting.TahunPelajaran != "" {
		meta.TahunPelajaran = setting.TahunPelajaran
	}
	if setting.NamaKepalaSekolah != "" {
		meta.KepalaSekolah = setting.NamaKepalaSekolah
	}
	if setting.NipKepalaSekolah != "" {
		meta.NipKepala = setting.NipKepalaSekolah
	}
	if setting.Kota != "" {
		meta.Kota = setting.Kota
	}
	if setting.TanggalRapor != nil {
		meta.TanggalCetak = helper.FormatTanggalID(time.Time(*setting.TanggalRapor))
	}
	meta.TglMulai = helper.FormatTanggalIDOrDash((*time.Time)(setting.TanggalMulaiPKL))
	meta.TglAkhir = helper.FormatTanggalIDOrDash((*time.Time)(setting.TanggalAkhirPKL))
	return meta
}

// BuildKelas merakit rapor seluruh siswa satu kelas, urut nama.
// Kelas kosong menghasilkan slice kosong, bukan error.
func (a *RaporAggregator) BuildKelas(kelas string) ([]raporDto.RaporSiswa, error) {
	// wali kelas dari tabel kelas; "-" kalau barisnya belum ada
	waliKelas, nipWali := "-", "-"
	var dataKelas kelasModel.KelasModel
	if err := a.DB.Where("nama = ?", kelas).First(&dataKelas).Error; err == nil {
		waliKelas = dataKelas.NamaLengkapWali()
		nipWali = dataKelas.Nip
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var listTP []tpModel.TujuanPembelajaranModel
	if err := a.DB.Order("id ASC").Find(&listTP).Error; err != nil {
		return nil, err
	}

	var siswas []siswaModel.SiswaModel
	if err := a.DB.Where("kelas = ?", kelas).Order("nama ASC").Find(&siswas).Error; err != nil {
		return nil, err
	}
	if len(siswas) == 0 {
		return []raporDto.RaporSiswa{}, nil
	}

	ids := make([]uint, 0, len(siswas))
	for i := range siswas {
		ids = append(ids, siswas[i].ID)
	}

	var mappings []mappingModel.MappingModel
	if err := a.DB.Where("siswa_id IN ?", ids).
		Preload("TempatPKL").Preload("InstrukturPKL").Preload("PembimbingSekolah").
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	mappingBySiswa := make(map[uint]*mappingModel.MappingModel, len(mappings))
	for i := range mappings {
		mappingBySiswa[mappings[i].SiswaID] = &mappings[i]
	}

	var nilaiRows []nilaiModel.NilaiPKLModel
	if err := a.DB.Where("siswa_id IN ?", ids).Find(&nilaiRows).Error; err != nil {
		return nil, err
	}
	nilaiBySiswa := map[uint]map[uint]nilaiModel.NilaiPKLModel{}
	for i := range nilaiRows {
		r := nilaiRows[i]
		if nilaiBySiswa[r.SiswaID] == nil {
			nilaiBySiswa[r.SiswaID] = map[uint]nilaiModel.NilaiPKLModel{}
		}
		nilaiBySiswa[r.SiswaID][r.TujuanPembelajaranID] = r
	}

	var absensiRows []absensiModel.AbsensiPKLModel
	if err := a.DB.Where("siswa_id IN ?", ids).Find(&absensiRows).Error; err != nil {
		return nil, err
	}
	absensiBySiswa := make(map[uint]absensiModel.AbsensiPKLModel, len(absensiRows))
	for i := range absensiRows {
		absensiBySiswa[absensiRows[i].SiswaID] = absensiRows[i]
	}

	out := make([]raporDto.RaporSiswa, 0, len(siswas))
	for i := range siswas {
		s := siswas[i]

		// nilai dirakit mengikuti urutan global TP biar kolom rapor
		// konsisten antar siswa, sel kosong diisi default
		nilaiFormatted := make([]raporDto.NilaiRapor, 0, len(listTP))
		for j := range listTP {
			tp := listTP[j]
			entry := raporDto.NilaiRapor{
				TP:        helper.StripHTML(tp.Nama),
				Skor:      0,
				Deskripsi: "-",
			}
			if n, ok := nilaiBySiswa[s.ID][tp.ID]; ok {
				entry.Skor = n.Skor
				if n.Deskripsi != nil && *n.Deskripsi != "" {
					entry.Deskripsi = *n.Deskripsi
				}
			}
			nilaiFormatted = append(nilaiFormatted, entry)
		}

		tempat, instruktur, pembimbing := "-", "-", "-"
		if m, ok := mappingBySiswa[s.ID]; ok {
			if m.TempatPKL != nil {
				tempat = m.TempatPKL.Nama
			}
			if m.InstrukturPKL != nil {
				instruktur = m.InstrukturPKL.Nama
			}
			if m.PembimbingSekolah != nil {
				pembimbing = m.PembimbingSekolah.Nama
			}
		}

		absensi := raporDto.AbsensiRapor{Catatan: absensiModel.CatatanDefault}
		if ab, ok := absensiBySiswa[s.ID]; ok {
			absensi.Sakit = ab.Sakit
			absensi.Izin = ab.Izin
			absensi.Alpha = ab.Alpha
			if ab.Catatan != "" {
				absensi.Catatan = ab.Catatan
			}
		}

		program := s.ProgramKeahlian
		if program == "" {
			program = defaultProgramKeahlian
		}
		konsentrasi := s.KonsentrasiKeahlian
		if konsentrasi == "" {
			konsentrasi = defaultKonsentrasiKeahlian
		}

		out = append(out, raporDto.RaporSiswa{
			ID:                  s.ID,
			Nama:                s.Nama,
			Nisn:                s.Nisn,
			Kelas:               s.Kelas,
			ProgramKeahlian:     program,
			KonsentrasiKeahlian: konsentrasi,
			TempatPKL:           tempat,
			InstrukturPKL:       instruktur,
			PembimbingSekolah:   pembimbing,
			WaliKelas:           waliKelas,
			NipWali:             nipWali,
			Nilai:               nilaiFormatted,
			Absensi:             absensi,
		})
	}
	return out, nil
}

// BuildSiswa merakit rapor satu siswa (untuk unduh PDF per anak).
func (a *RaporAggregator) BuildSiswa(siswaID uint) (*raporDto.RaporSiswa, error) {
	var s siswaModel.SiswaModel
	if err := a.DB.First(&s, siswaID).Error; err != nil {
		return nil, err
	}
	rows, err := a.BuildKelas(s.Kelas)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == s.ID {
			return &rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
