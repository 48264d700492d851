// file: internals/features/pkl/mapping/controller/mapping_controller.go
package controller

import (
	"fmt"
	"strings"

	helper "raporedyan_backend/internals/helpers"

	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	mappingDto "raporedyan_backend/internals/features/pkl/mapping/dto"
	mappingModel "raporedyan_backend/internals/features/pkl/mapping/model"
	masterModel "raporedyan_backend/internals/features/pkl/master/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MappingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMappingController(db *gorm.DB, v *validator.Validate) *MappingController {
	return &MappingController{DB: db, Validate: v}
}

// GET /api/mapping
// Semua siswa + mapping-nya (jika ada) + data master untuk dropdown.
func (ctl *MappingController) Index(c *fiber.Ctx) error {
	var students []siswaModel.SiswaModel
	if err := ctl.DB.Order("created_at DESC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var mappings []mappingModel.MappingModel
	if err := ctl.DB.Find(&mappings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapping")
	}
	byStudent := make(map[uint]*mappingModel.MappingModel, len(mappings))
	for i := range mappings {
		byStudent[mappings[i].SiswaID] = &mappings[i]
	}

	rows := make([]mappingDto.MappingRowResp, 0, len(students))
	for i := range students {
		s := &students[i]
		row := mappingDto.MappingRowResp{
			ID:        s.ID,
			NamaSiswa: s.Nama,
			Nisn:      s.Nisn,
			Kelas:     s.Kelas,
		}
		if m, ok := byStudent[s.ID]; ok {
			row.TempatPKLID = m.TempatPKLID
			row.InstrukturPKLID = m.InstrukturPKLID
			row.PembimbingSekolahID = m.PembimbingSekolahID
		}
		rows = append(rows, row)
	}

	var tempat []masterModel.TempatPKLModel
	var instruktur []masterModel.InstrukturPKLModel
	var pembimbing []masterModel.PembimbingSekolahModel
	if err := ctl.DB.Find(&tempat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data master")
	}
	if err := ctl.DB.Find(&instruktur).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data master")
	}
	if err := ctl.DB.Find(&pembimbing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data master")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"mappings": rows,
		"options": fiber.Map{
			"tempat":     tempat,
			"instruktur": instruktur,
			"pembimbing": pembimbing,
		},
	})
}

// POST /api/mapping/save — bulk upsert keyed siswa_id, satu transaksi
func (ctl *MappingController) StoreBulk(c *fiber.Ctx) error {
	var req mappingDto.MappingSaveReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.Mappings) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data kosong")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Mappings {
			m := mappingModel.MappingModel{
				SiswaID:             item.ID,
				TempatPKLID:         item.TempatPKLID,
				InstrukturPKLID:     item.InstrukturPKLID,
				PembimbingSekolahID: item.PembimbingSekolahID,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "siswa_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"tempat_pkl_id", "instruktur_pkl_id", "pembimbing_sekolah_id", "updated_at",
				}),
			}).Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan: "+err.Error())
	}

	return helper.JsonMessage(c, "Mapping berhasil disimpan!")
}

// POST /api/mapping/import
// Pencocokan pakai NAMA: lowercase + trim. Siswa yang tidak ketemu di-skip.
func (ctl *MappingController) Import(c *fiber.Ctx) error {
	var req mappingDto.MappingImportReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data kosong")
	}

	// Ambil semua master data sekali biar gak query berulang-ulang
	siswaMap, err := ctl.namaToID(&siswaModel.SiswaModel{})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}
	tempatMap, err := ctl.namaToID(&masterModel.TempatPKLModel{})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data master")
	}
	instrukturMap, err := ctl.namaToID(&masterModel.InstrukturPKLModel{})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data master")
	}
	pembimbingMap, err := ctl.namaToID(&masterModel.PembimbingSekolahModel{})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data master")
	}

	successCount := 0
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Data {
			namaSiswa := normalizeNama(row.NamaSiswa)
			siswaID, ok := siswaMap[namaSiswa]
			if !ok {
				continue // skip jika siswa tidak ditemukan
			}

			m := mappingModel.MappingModel{
				SiswaID:             siswaID,
				TempatPKLID:         lookupNama(tempatMap, row.TempatPKL),
				InstrukturPKLID:     lookupNama(instrukturMap, row.InstrukturPKL),
				PembimbingSekolahID: lookupNama(pembimbingMap, row.PembimbingSekolah),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "siswa_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"tempat_pkl_id", "instruktur_pkl_id", "pembimbing_sekolah_id", "updated_at",
				}),
			}).Create(&m).Error; err != nil {
				return err
			}
			successCount++
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error import: "+err.Error())
	}

	return helper.JsonMessage(c, fmt.Sprintf("Berhasil memproses %d data mapping.", successCount))
}

type namaRow struct {
	ID   uint
	Nama string
}

// namaToID: map nama (lowercase) → id dari satu tabel master
func (ctl *MappingController) namaToID(model interface{}) (map[string]uint, error) {
	var rows []namaRow
	if err := ctl.DB.Model(model).Select("id", "nama").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]uint, len(rows))
	for _, r := range rows {
		out[normalizeNama(r.Nama)] = r.ID
	}
	return out, nil
}

func normalizeNama(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lookupNama(m map[string]uint, nama string) *uint {
	key := normalizeNama(nama)
	if key == "" {
		return nil
	}
	if id, ok := m[key]; ok {
		return &id
	}
	return nil
}
