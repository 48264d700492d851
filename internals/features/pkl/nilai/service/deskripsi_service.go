// file: internals/features/pkl/nilai/service/deskripsi_service.go
package service

import (
	"math/rand"
	"strings"

	helper "raporedyan_backend/internals/helpers"
)

/* =========================
   Kamus deskripsi lokal
   — dipakai saat AI tidak tersedia / gagal
========================= */

const (
	KategoriSoftSkill = "soft_skill"
	KategoriK3LH      = "k3lh"
	KategoriTeknis    = "teknis"
	KategoriBisnis    = "bisnis"
	KategoriUmum      = "umum"
)

const (
	BandSangatBaik = "sangat_baik"
	BandBaik       = "baik"
	BandCukup      = "cukup"
	BandKurang     = "kurang"
)

// kamus per kategori per rentang nilai, 2-3 kalimat tiap sel biar variatif
var kamusDeskripsi = map[string]map[string][]string{
	KategoriSoftSkill: {
		BandSangatBaik: {
			"Peserta didik menunjukkan soft skills yang istimewa, sangat proaktif dalam berkomunikasi dengan rekan kerja senior, serta memiliki inisiatif tinggi dalam memecahkan masalah tanpa menunggu instruksi.",
			"Sangat mampu beradaptasi dengan budaya kerja perusahaan, menunjukkan integritas tinggi, dan menjadi teladan dalam hal kedisiplinan serta etika profesi.",
			"Kemampuan interpersonal sangat menonjol, mampu membangun hubungan kerja yang harmonis dan efektif dengan seluruh tim di tempat PKL.",
		},
		BandBaik: {
			"Peserta didik memiliki soft skills yang baik sesuai harapan, mampu berkomunikasi dengan sopan, dan menunjukkan sikap kerja yang positif selama pelaksanaan PKL.",
			"Telah menunjukkan kedisiplinan yang baik dan mampu bekerjasama dalam tim, serta cukup responsif terhadap arahan yang diberikan oleh pembimbing.",
			"Peserta didik mampu menempatkan diri dengan baik di lingkungan kerja dan menjaga etika profesi yang berlaku di tempat PKL.",
		},
		BandCukup: {
			"Peserta didik sudah memiliki soft skills sesuai harapan dalam hal penguasaan diri, namun masih perlu ditingkatkan dalam hal komunikasi antar rekan kerja senior dan inisiatif.",
			"Cukup mampu beradaptasi, namun perlu meningkatkan kedisiplinan waktu dan kepedulian terhadap kebersihan lingkungan kerja agar lebih maksimal.",
			"Komunikasi sudah berjalan cukup baik, namun perlu lebih percaya diri dalam menyampaikan pendapat atau bertanya terkait tugas yang diberikan.",
		},
		BandKurang: {
			"Peserta didik perlu pembinaan intensif terkait kedisiplinan dan tata krama di dunia kerja agar dapat beradaptasi dengan lingkungan profesional.",
			"Masih pasif dalam berkomunikasi dan perlu banyak peningkatan dalam hal inisiatif serta kerjasama tim.",
		},
	},
	KategoriK3LH: {
		BandSangatBaik: {
			"Peserta didik sangat konsisten menerapkan standar K3LH, selalu menggunakan APD lengkap tanpa diminta, dan bekerja sangat rapi sesuai prosedur keselamatan.",
			"Pemahaman terhadap SOP sangat mendalam, mampu mengidentifikasi potensi bahaya di lingkungan kerja, dan selalu bekerja dengan prinsip keselamatan utama.",
			"Sangat disiplin terhadap aturan perusahaan dan Prosedur Operasional Standar (POS), serta mampu mengingatkan rekan kerja terkait pentingnya K3LH.",
		},
		BandBaik: {
			"Peserta didik telah menggunakan APD dengan tertib dan benar serta melaksanakan pekerjaan sesuai dengan Prosedur Operasional Standar (POS) yang berlaku.",
			"Penerapan norma K3LH sudah berjalan baik, selalu menjaga kebersihan area kerja dan mematuhi instruksi keselamatan dari instruktur.",
			"Mampu bekerja dengan aman sesuai standar perusahaan dan merawat peralatan kerja dengan cukup baik.",
		},
		BandCukup: {
			"Peserta didik memahami dasar-dasar K3LH, namun terkadang masih perlu diingatkan untuk menggunakan APD secara lengkap pada situasi tertentu.",
			"Sudah berusaha mengikuti POS, namun perlu lebih teliti dan konsisten dalam menjaga kerapian area kerja setelah selesai bertugas.",
			"Penerapan prosedur keselamatan cukup baik, tetapi perlu ditingkatkan kesadarannya terhadap potensi risiko kecil di area kerja.",
		},
		BandKurang: {
			"Peserta didik sering mengabaikan penggunaan APD dan perlu teguran tegas terkait kepatuhan terhadap prosedur keselamatan kerja.",
			"Kurang peduli terhadap kebersihan dan standar operasional yang berlaku di tempat kerja.",
		},
	},
	KategoriTeknis: {
		BandSangatBaik: {
			"Peserta didik menunjukkan penguasaan kompetensi teknis yang sangat matang, hasil kerjanya presisi, rapi, dan melampaui standar minimal industri.",
			"Sangat terampil menggunakan peralatan kerja canggih, mampu menyelesaikan trouble-shooting ringan secara mandiri dengan hasil yang memuaskan.",
			"Kualitas hasil kerja teknis sangat istimewa, menunjukkan kecepatan dan ketepatan yang setara dengan tenaga kerja pemula profesional.",
		},
		BandBaik: {
			"Peserta didik mampu menerapkan kompetensi teknis yang dipelajari di sekolah ke dalam pekerjaan nyata dengan hasil yang baik dan minim kesalahan.",
			"Penguasaan alat dan materi teknis sudah baik, mampu menyelesaikan tugas harian sesuai target waktu yang ditentukan.",
			"Keterampilan teknis berkembang dengan baik, mampu mengikuti instruksi teknis dan menghasilkan output kerja yang layak.",
		},
		BandCukup: {
			"Peserta didik mampu menerapkan kompetensi teknis dan memahami pekerjaan dengan keahlian yang dimiliki, namun masih perlu ditingkatkan pada ketelitian kerja.",
			"Secara umum mampu mengoperasikan alat, tetapi perlu meningkatkan kecepatan dan kerapian hasil kerja agar sesuai target industri.",
			"Pemahaman teknis sudah ada, namun seringkali kurang teliti dalam detail pekerjaan finishing sehingga perlu perbaikan.",
		},
		BandKurang: {
			"Peserta didik masih kesulitan mengoperasikan peralatan dasar dan membutuhkan bimbingan penuh untuk menyelesaikan tugas teknis sederhana.",
			"Hasil kerja teknis belum memenuhi standar, sering melakukan kesalahan prosedur yang mendasar.",
		},
	},
	KategoriBisnis: {
		BandSangatBaik: {
			"Peserta didik memiliki wawasan bisnis yang tajam, mampu menganalisis alur kerja perusahaan secara sistematis, dan memberikan ide pengembangan usaha.",
			"Sangat memahami bagaimana profit didapatkan dalam alur bisnis tempat PKL dan menunjukkan jiwa entrepreneurship yang kuat.",
			"Mampu menjelaskan rencana usaha masa depan dengan sangat logis berdasarkan pengalaman yang didapatkan di tempat PKL.",
		},
		BandBaik: {
			"Peserta didik telah mampu membekali kemandiriannya dengan menguasai identifikasi kegiatan usaha di tempat PKL, serta mampu menjelaskan rencana usaha.",
			"Memahami alur bisnis dunia kerja dengan baik dan mampu melihat peluang-peluang usaha sederhana di lingkungan kerjanya.",
			"Wawasan wirausaha berkembang baik, mengerti posisi dan peran setiap divisi dalam menunjang bisnis perusahaan.",
		},
		BandCukup: {
			"Peserta didik cukup memahami alur bisnis dasar, namun perlu lebih mendalami bagaimana strategi pelayanan konsumen berjalan.",
			"Sudah mengetahui produk/jasa apa yang dijual, namun belum terlalu memahami proses manajemen di balik layar.",
			"Memiliki ketertarikan pada wirausaha, namun perlu lebih banyak belajar mengenai manajemen risiko dalam bisnis.",
		},
		BandKurang: {
			"Peserta didik belum memahami alur bisnis tempat PKL dan cenderung pasif dalam mempelajari aspek non-teknis perusahaan.",
			"Kurang memiliki gambaran tentang wawasan wirausaha atau proses bisnis yang berjalan.",
		},
	},
}

// fallback kalau kategori TP tidak dikenali kamus
var kamusUmum = map[string][]string{
	BandSangatBaik: {"Peserta didik menunjukkan penguasaan materi yang sangat baik dan konsisten dalam penerapannya."},
	BandBaik:       {"Peserta didik mampu menerapkan materi pembelajaran dengan baik di lingkungan kerja."},
	BandCukup:      {"Peserta didik cukup memahami materi namun perlu peningkatan dalam konsistensi penerapan."},
	BandKurang:     {"Peserta didik perlu bimbingan lebih lanjut untuk memahami materi ini."},
}

// KategoriTP menentukan kategori kamus dari nama tujuan pembelajaran.
// Urutan pengecekan menentukan prioritas saat kata kunci tumpang tindih.
func KategoriTP(tpNama string) string {
	tp := strings.ToLower(helper.StripHTML(tpNama))
	switch {
	case strings.Contains(tp, "soft skill"), strings.Contains(tp, "komunikasi"), strings.Contains(tp, "disiplin"):
		return KategoriSoftSkill
	case strings.Contains(tp, "k3lh"), strings.Contains(tp, "norma"), strings.Contains(tp, "pos"), strings.Contains(tp, "apd"):
		return KategoriK3LH
	case strings.Contains(tp, "teknis"), strings.Contains(tp, "kompetensi"), strings.Contains(tp, "alat"):
		return KategoriTeknis
	case strings.Contains(tp, "bisnis"), strings.Contains(tp, "wirausaha"), strings.Contains(tp, "usaha"):
		return KategoriBisnis
	}
	return KategoriUmum
}

// BandSkor memetakan skor ke rentang predikat kamus lokal.
func BandSkor(skor int) string {
	switch {
	case skor >= 91:
		return BandSangatBaik
	case skor >= 80:
		return BandBaik
	case skor >= 70:
		return BandCukup
	}
	return BandKurang
}

// GenerateDeskripsi memilih satu kalimat dari kamus secara acak sesuai
// kategori TP dan rentang skor. rng di-inject supaya hasil bisa
// dideterminisasi di test. Tidak pernah mengembalikan string kosong.
func GenerateDeskripsi(tpNama string, skor int, rng *rand.Rand) string {
	kategori := KategoriTP(tpNama)
	band := BandSkor(skor)

	templates, ok := kamusDeskripsi[kategori][band]
	if !ok || len(templates) == 0 {
		templates = kamusUmum[band]
	}
	return templates[rng.Intn(len(templates))]
}

// KamusKalimat mengembalikan seluruh kandidat kalimat untuk (tp, skor).
// Dipakai untuk memverifikasi keanggotaan hasil generate.
func KamusKalimat(tpNama string, skor int) []string {
	kategori := KategoriTP(tpNama)
	band := BandSkor(skor)
	if templates, ok := kamusDeskripsi[kategori][band]; ok && len(templates) > 0 {
		return templates
	}
	return kamusUmum[band]
}
