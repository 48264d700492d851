// file: internals/features/pkl/nilai/service/gemini_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"
)

// batas tunggu satu panggilan Gemini; lewat dari ini pakai kamus lokal
const geminiTimeout = 5 * time.Second

/* =========================
   Narrative generator (Gemini)
========================= */

type NarrativeGenerator struct {
	Client *genai.Client // nil kalau API key kosong atau client gagal dibuat
	Model  string        // contoh: "gemini-2.5-flash"
	Rng    *rand.Rand
}

// NewNarrativeGenerator membuat client Gemini sekali di awal, bukan per
// panggilan. Tanpa API key generator tetap valid, semua Generate jatuh ke
// kamus lokal.
func NewNarrativeGenerator(apiKey, model string, rng *rand.Rand) *NarrativeGenerator {
	gen := &NarrativeGenerator{Model: model, Rng: rng}
	if apiKey == "" {
		return gen
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Printf("[WARN] Gemini client gagal dibuat, semua generate pakai kamus lokal: %v", err)
		return gen
	}
	gen.Client = client
	return gen
}

// predikatSkor untuk prompt AI. Ambang sangat baik di sini 90, BEDA dengan
// kamus lokal yang memakai 91 — dua-duanya disengaja mengikuti perilaku
// produksi yang sudah berjalan, jangan disamakan.
func predikatSkor(skor int) string {
	switch {
	case skor >= 90:
		return "Sangat Baik"
	case skor >= 80:
		return "Baik"
	case skor >= 70:
		return "Cukup"
	}
	return "Kurang"
}

// Generate membuat deskripsi naratif via Gemini. Semua kegagalan (key
// kosong, error koneksi, respons kosong, timeout) jatuh diam-diam ke kamus
// lokal; pemanggil cukup melihat source "ai" atau "lokal".
func (g *NarrativeGenerator) Generate(ctx context.Context, tp string, skor int, namaSiswa string) (string, string) {
	if namaSiswa == "" {
		namaSiswa = "Siswa"
	}
	if g.Client == nil {
		return GenerateDeskripsi(tp, skor, g.Rng), "lokal"
	}

	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Buatkan deskripsi rapor satu kalimat singkat (maksimal 20 kata) untuk siswa bernama '%s'.
Tujuan Pembelajaran: '%s'.
Nilai: %d (Predikat: %s).
Gunakan bahasa formal rapor kurikulum merdeka. Langsung kalimatnya saja.`,
		namaSiswa, tp, skor, predikatSkor(skor))

	resp, err := g.Client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[WARN] Gemini generate gagal, fallback kamus lokal: %v", err)
		return GenerateDeskripsi(tp, skor, g.Rng), "lokal"
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return GenerateDeskripsi(tp, skor, g.Rng), "lokal"
	}
	return text, "ai"
}
