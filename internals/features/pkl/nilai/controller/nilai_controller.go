// file: internals/features/pkl/nilai/controller/nilai_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	helper "raporedyan_backend/internals/helpers"

	tpModel "raporedyan_backend/internals/features/akademik/tujuan_pembelajaran/model"
	siswaModel "raporedyan_backend/internals/features/akademik/siswa/model"
	nilaiDto "raporedyan_backend/internals/features/pkl/nilai/dto"
	nilaiModel "raporedyan_backend/internals/features/pkl/nilai/model"
	nilaiService "raporedyan_backend/internals/features/pkl/nilai/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// jeda antar item batch generate, jangan diparalelkan: kuota Gemini
// free-tier gampang kena 429 kalau ditembak beruntun
const batchDelay = 1500 * time.Millisecond

type NilaiController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Gen        *nilaiService.NarrativeGenerator
	BatchDelay time.Duration // jeda antar item batch, lihat batchDelay
}

func NewNilaiController(db *gorm.DB, v *validator.Validate, gen *nilaiService.NarrativeGenerator) *NilaiController {
	return &NilaiController{DB: db, Validate: v, Gen: gen, BatchDelay: batchDelay}
}

// GET /api/nilai-pkl/kelas-list
func (ctl *NilaiController) KelasList(c *fiber.Ctx) error {
	var kelas []string
	if err := ctl.DB.Model(&siswaModel.SiswaModel{}).
		Distinct("kelas").Order("kelas ASC").Pluck("kelas", &kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.JsonOK(c, "OK", kelas)
}

// GET /api/nilai-pkl?kelas=XII%20RPL%201
// Data grid nilai: semua TP sebagai kolom + siswa per kelas dengan map
// nilai {tpId: {skor, deskripsi}}.
func (ctl *NilaiController) Index(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter kelas wajib diisi")
	}

	var tujuan []tpModel.TujuanPembelajaranModel
	if err := ctl.DB.Order("id ASC").Find(&tujuan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tujuan pembelajaran")
	}

	var siswas []siswaModel.SiswaModel
	if err := ctl.DB.Where("kelas = ?", kelas).Order("nama ASC").Find(&siswas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	ids := make([]uint, 0, len(siswas))
	for i := range siswas {
		ids = append(ids, siswas[i].ID)
	}

	nilaiBySiswa := map[uint]map[uint]nilaiDto.NilaiCellResp{}
	if len(ids) > 0 {
		var rows []nilaiModel.NilaiPKLModel
		if err := ctl.DB.Where("siswa_id IN ?", ids).Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data nilai")
		}
		for i := range rows {
			r := rows[i]
			if nilaiBySiswa[r.SiswaID] == nil {
				nilaiBySiswa[r.SiswaID] = map[uint]nilaiDto.NilaiCellResp{}
			}
			nilaiBySiswa[r.SiswaID][r.TujuanPembelajaranID] = nilaiDto.NilaiCellResp{
				Skor:      r.Skor,
				Deskripsi: r.Deskripsi,
			}
		}
	}

	formatted := make([]nilaiDto.NilaiSiswaResp, 0, len(siswas))
	for i := range siswas {
		s := siswas[i]
		m := nilaiBySiswa[s.ID]
		if m == nil {
			m = map[uint]nilaiDto.NilaiCellResp{}
		}
		formatted = append(formatted, nilaiDto.NilaiSiswaResp{
			ID: s.ID, Nama: s.Nama, Nisn: s.Nisn, Nilai: m,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"tujuanPembelajaran": tujuan,
		"siswa":              formatted,
	})
}

// POST /api/nilai-pkl/save — bulk upsert per (siswa, tp), satu transaksi
func (ctl *NilaiController) StoreBulk(c *fiber.Ctx) error {
	var req nilaiDto.NilaiSaveReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Data {
			for tpKey, val := range item.Nilai {
				tpID, err := strconv.ParseUint(tpKey, 10, 64)
				if err != nil {
					continue
				}
				m := nilaiModel.NilaiPKLModel{
					SiswaID:              item.ID,
					TujuanPembelajaranID: uint(tpID),
					Skor:                 val.Skor,
					Deskripsi:            val.Deskripsi,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "siswa_id"}, {Name: "tujuan_pembelajaran_id"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"skor", "deskripsi", "updated_at",
					}),
				}).Create(&m).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}

	return helper.JsonMessage(c, "Nilai berhasil disimpan")
}

// POST /api/nilai-pkl/import
// Baris excel mentah. Judul kolom dicocokkan case-insensitive ke nama TP
// (tanpa tag HTML). Kolom "Deskripsi: <nama TP>" mengisi deskripsinya.
// Siswa dicari lewat kolom NISN; baris tanpa siswa dilewati.
func (ctl *NilaiController) Import(c *fiber.Ctx) error {
	var req nilaiDto.NilaiImportReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(req.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data kosong")
	}

	var allTP []tpModel.TujuanPembelajaranModel
	if err := ctl.DB.Find(&allTP).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tujuan pembelajaran")
	}
	tpMap := make(map[string]uint, len(allTP)*2)
	for i := range allTP {
		tp := allTP[i]
		tpMap[strings.ToLower(helper.StripHTML(tp.Nama))] = tp.ID
		// jaga-jaga kalau header pakai id langsung, misal "tp_3"
		tpMap[fmt.Sprintf("tp_%d", tp.ID)] = tp.ID
	}

	var siswas []siswaModel.SiswaModel
	if err := ctl.DB.Find(&siswas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	siswaMap := make(map[string]uint, len(siswas))
	for i := range siswas {
		siswaMap[strings.TrimSpace(siswas[i].Nisn)] = siswas[i].ID
	}

	upsert := func(tx *gorm.DB, m nilaiModel.NilaiPKLModel, cols []string) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "siswa_id"}, {Name: "tujuan_pembelajaran_id"}},
			DoUpdates: clause.AssignmentColumns(append(cols, "updated_at")),
		}).Create(&m).Error
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Data {
			sid, ok := siswaMap[rowNisn(row)]
			if !ok {
				continue
			}

			for key, value := range row {
				cleanKey := strings.ToLower(strings.TrimSpace(key))

				if tpID, ok := tpMap[cleanKey]; ok {
					m := nilaiModel.NilaiPKLModel{
						SiswaID:              sid,
						TujuanPembelajaranID: tpID,
						Skor:                 toInt(value),
					}
					if err := upsert(tx, m, []string{"skor"}); err != nil {
						return err
					}
					continue
				}

				// kolom deskripsi: buang prefix lalu cocokkan lagi ke nama TP
				potential := strings.TrimSpace(strings.NewReplacer("deskripsi:", "", "deskripsi ", "").Replace(cleanKey))
				if tpID, ok := tpMap[potential]; ok && potential != cleanKey {
					deskripsi := fmt.Sprintf("%v", value)
					m := nilaiModel.NilaiPKLModel{
						SiswaID:              sid,
						TujuanPembelajaranID: tpID,
						Deskripsi:            &deskripsi,
					}
					if err := upsert(tx, m, []string{"deskripsi"}); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal import nilai")
	}

	return helper.JsonMessage(c, "Import nilai berhasil")
}

// GET /api/nilai-pkl/export?kelas=XII%20RPL%201
// Unduh grid nilai sebagai file XLSX. Header kolom sengaja disamakan
// dengan format yang diterima endpoint import biar bisa bolak-balik.
func (ctl *NilaiController) Export(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter kelas wajib diisi")
	}

	var tujuan []tpModel.TujuanPembelajaranModel
	if err := ctl.DB.Order("id ASC").Find(&tujuan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tujuan pembelajaran")
	}
	var siswas []siswaModel.SiswaModel
	if err := ctl.DB.Where("kelas = ?", kelas).Order("nama ASC").Find(&siswas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	ids := make([]uint, 0, len(siswas))
	for i := range siswas {
		ids = append(ids, siswas[i].ID)
	}
	type cell struct {
		skor      int
		deskripsi string
	}
	nilaiMap := map[uint]map[uint]cell{}
	if len(ids) > 0 {
		var rows []nilaiModel.NilaiPKLModel
		if err := ctl.DB.Where("siswa_id IN ?", ids).Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data nilai")
		}
		for i := range rows {
			r := rows[i]
			if nilaiMap[r.SiswaID] == nil {
				nilaiMap[r.SiswaID] = map[uint]cell{}
			}
			d := ""
			if r.Deskripsi != nil {
				d = *r.Deskripsi
			}
			nilaiMap[r.SiswaID][r.TujuanPembelajaranID] = cell{skor: r.Skor, deskripsi: d}
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	setCell := func(col, row int, v interface{}) {
		ref, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheet, ref, v)
	}

	setCell(1, 1, "Nama")
	setCell(2, 1, "NISN")
	col := 3
	for i := range tujuan {
		nama := helper.StripHTML(tujuan[i].Nama)
		setCell(col, 1, nama)
		setCell(col+1, 1, "Deskripsi: "+nama)
		col += 2
	}

	for i := range siswas {
		s := siswas[i]
		row := i + 2
		setCell(1, row, s.Nama)
		setCell(2, row, s.Nisn)
		col = 3
		for j := range tujuan {
			if v, ok := nilaiMap[s.ID][tujuan[j].ID]; ok {
				setCell(col, row, v.skor)
				setCell(col+1, row, v.deskripsi)
			}
			col += 2
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file excel")
	}

	filename := "Nilai_PKL_" + strings.ReplaceAll(kelas, " ", "_") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// POST /api/nilai-pkl/generate-ai
func (ctl *NilaiController) GenerateAI(c *fiber.Ctx) error {
	var req nilaiDto.GenerateAIReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	deskripsi, source := ctl.Gen.Generate(c.Context(), req.TP, req.Skor, req.NamaSiswa)
	return helper.JsonOK(c, "OK", nilaiDto.GenerateAIResp{Deskripsi: deskripsi, Source: source})
}

// POST /api/nilai-pkl/generate-ai/batch
// Diproses satu per satu dengan jeda tetap, bukan goroutine.
func (ctl *NilaiController) GenerateAIBatch(c *fiber.Ctx) error {
	var req nilaiDto.GenerateAIBatchReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	results := make([]nilaiDto.GenerateAIBatchItemResp, 0, len(req.Items))
	for i, item := range req.Items {
		if i > 0 {
			time.Sleep(ctl.BatchDelay)
		}
		deskripsi, source := ctl.Gen.Generate(c.Context(), item.TP, item.Skor, item.NamaSiswa)
		results = append(results, nilaiDto.GenerateAIBatchItemResp{
			TP: item.TP, Deskripsi: deskripsi, Source: source,
		})
	}

	return helper.JsonOK(c, "OK", results)
}

func rowNisn(row map[string]interface{}) string {
	for key, value := range row {
		if strings.EqualFold(strings.TrimSpace(key), "nisn") {
			return strings.TrimSpace(fmt.Sprintf("%v", value))
		}
	}
	return ""
}

// toInt: angka dari excel bisa datang sebagai float64, string, atau int
func toInt(v interface{}) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return int(f)
	}
	return 0
}
