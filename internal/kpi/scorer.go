package kpi

import (
	"hris-backend/internal/model"
)

// Bobot struktural presensi/pelatihan pada core KPI bulanan.
const (
	BobotPresensi  = 60.0
	BobotPelatihan = 40.0
)

// Poin per status kehadiran harian. Status tak dikenal dihitung 0.
var presencePoints = map[string]float64{
	model.StatusHadir:     100,
	model.StatusTerlambat: 70,
	model.StatusIzin:      80,
	model.StatusSakit:     80,
	model.StatusAlpa:      0,
}

// ScorePresence merata-ratakan poin kehadiran harian menjadi skor 0-100.
// Tanpa record sama sekali skornya 0, bukan error.
func ScorePresence(records []model.Kehadiran) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, rec := range records {
		total += presencePoints[rec.Status]
	}
	return total / float64(len(records))
}

// ScoreTraining merata-ratakan skor pelatihan satu periode. Periode sebuah
// keikutsertaan adalah (PeriodeYear, PeriodeMonth) eksplisit jika diisi, kalau
// tidak ikut tanggal sesi pelatihannya. Keikutsertaan tanpa skor tidak ikut
// dirata-rata (bukan dihitung 0).
func ScoreTraining(details []model.PelatihanDetail, year, month int) float64 {
	total := 0.0
	count := 0
	for _, d := range details {
		y, m := detailPeriode(d)
		if y != year || m != month {
			continue
		}
		if d.Skor == nil {
			continue
		}
		total += *d.Skor
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func detailPeriode(d model.PelatihanDetail) (int, int) {
	if d.PeriodeYear != 0 && d.PeriodeMonth != 0 {
		return d.PeriodeYear, d.PeriodeMonth
	}
	return d.Pelatihan.Tanggal.Year(), int(d.Pelatihan.Tanggal.Month())
}

// IndicatorSummary merangkum realisasi indikator KPI "lain" (di luar presensi
// dan pelatihan) satu karyawan satu periode. Count hanya menghitung detail yang
// score-nya sudah terisi; detail tanpa realisasi tidak ikut rata-rata dan tidak
// memicu blending. Count == 0 berarti belum ada realisasi indikator lain pada
// periode itu, bukan "ada tapi nol".
type IndicatorSummary struct {
	TotalBobot float64
	TotalScore float64
	Mean       float64
	Count      int
}

// AggregateIndicators menjumlah bobot dan score detail indikator non-struktural.
// Detail dengan indikator bernama presensi/pelatihan dilewati; keduanya
// dihitung struktural, bukan lewat tabel indikator. TotalBobot tetap menjumlah
// semua detail, tapi Mean dan Count hanya atas score yang non-nil.
func AggregateIndicators(details []model.KpiDetail) IndicatorSummary {
	var sum IndicatorSummary
	for _, d := range details {
		nama := d.Indikator.Nama
		if nama == model.IndikatorPresensi || nama == model.IndikatorPelatihan {
			continue
		}
		sum.TotalBobot += d.Indikator.Bobot
		if d.Score == nil {
			continue
		}
		sum.TotalScore += *d.Score
		sum.Mean += *d.Score
		sum.Count++
	}
	if sum.Count > 0 {
		sum.Mean = sum.Mean / float64(sum.Count)
	}
	return sum
}

// ComposeFinal menggabungkan skor presensi, pelatihan, dan indikator lain
// menjadi KPI final satu periode:
//
//	core = (presensi*60 + pelatihan*40) / 100
//	tanpa indikator lain : final = core
//	ada indikator lain   : final = 0.5*core + 0.5*rataIndikatorLain
//
// Indikator lain sengaja diblend 50/50 dengan core, bukan proporsional
// terhadap bobot deklaratifnya; TotalBobot/TotalScore hanya diagnostik.
// Hasil selalu dipatok ke [0, 100].
func ComposeFinal(presence, training float64, indicators IndicatorSummary) float64 {
	core := (presence*BobotPresensi + training*BobotPelatihan) / 100
	final := core
	if indicators.Count > 0 {
		final = 0.5*core + 0.5*indicators.Mean
	}
	return clamp(final, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
