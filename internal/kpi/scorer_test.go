package kpi

import (
	"math"
	"testing"
	"time"

	"hris-backend/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScorePresence(t *testing.T) {
	if got := ScorePresence(nil); got != 0 {
		t.Fatalf("expected 0 tanpa record, got %v", got)
	}

	records := []model.Kehadiran{
		{Status: model.StatusHadir},
		{Status: model.StatusTerlambat},
	}
	if got := ScorePresence(records); !almostEqual(got, 85) {
		t.Fatalf("expected 85, got %v", got)
	}

	records = []model.Kehadiran{
		{Status: model.StatusHadir},
		{Status: model.StatusIzin},
		{Status: model.StatusSakit},
		{Status: model.StatusAlpa},
		{Status: "NGACO"}, // status tak dikenal dihitung 0
	}
	if got := ScorePresence(records); !almostEqual(got, 52) {
		t.Fatalf("expected 52, got %v", got)
	}
}

func TestScoreTraining(t *testing.T) {
	skor := func(v float64) *float64 { return &v }

	details := []model.PelatihanDetail{
		// Periode eksplisit
		{Skor: skor(80), PeriodeYear: 2024, PeriodeMonth: 3},
		// Ikut tanggal sesi
		{Skor: skor(90), Pelatihan: model.Pelatihan{Tanggal: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}},
		// Periode lain, tidak ikut
		{Skor: skor(10), PeriodeYear: 2024, PeriodeMonth: 4},
		// Belum dinilai, tidak ikut dirata-rata
		{Skor: nil, PeriodeYear: 2024, PeriodeMonth: 3},
	}

	if got := ScoreTraining(details, 2024, 3); !almostEqual(got, 85) {
		t.Fatalf("expected 85, got %v", got)
	}
	if got := ScoreTraining(details, 2023, 1); got != 0 {
		t.Fatalf("expected 0 untuk periode kosong, got %v", got)
	}
	if got := ScoreTraining(nil, 2024, 3); got != 0 {
		t.Fatalf("expected 0 tanpa detail, got %v", got)
	}
}

func TestAggregateIndicators(t *testing.T) {
	skor := func(v float64) *float64 { return &v }

	details := []model.KpiDetail{
		{Score: skor(70), Indikator: model.KpiIndicator{Nama: "Kedisiplinan", Bobot: 0.3}},
		{Score: skor(90), Indikator: model.KpiIndicator{Nama: "Kualitas Kerja", Bobot: 0.4}},
		// Struktural, dilewati
		{Score: skor(100), Indikator: model.KpiIndicator{Nama: model.IndikatorPresensi, Bobot: 0.6}},
		{Score: skor(100), Indikator: model.KpiIndicator{Nama: model.IndikatorPelatihan, Bobot: 0.4}},
	}

	sum := AggregateIndicators(details)
	if sum.Count != 2 {
		t.Fatalf("expected 2 indikator lain, got %d", sum.Count)
	}
	if !almostEqual(sum.TotalBobot, 0.7) {
		t.Fatalf("expected total bobot 0.7, got %v", sum.TotalBobot)
	}
	if !almostEqual(sum.TotalScore, 160) {
		t.Fatalf("expected total score 160, got %v", sum.TotalScore)
	}
	if !almostEqual(sum.Mean, 80) {
		t.Fatalf("expected mean 80, got %v", sum.Mean)
	}

	empty := AggregateIndicators(nil)
	if empty.Count != 0 || empty.Mean != 0 {
		t.Fatalf("expected summary kosong, got %+v", empty)
	}
}

func TestAggregateIndicatorsScoreNil(t *testing.T) {
	skor := func(v float64) *float64 { return &v }

	// Detail tanpa realisasi tidak ikut rata-rata dan tidak menghitung Count;
	// bobotnya tetap dijumlah.
	details := []model.KpiDetail{
		{Score: skor(80), Indikator: model.KpiIndicator{Nama: "Kedisiplinan", Bobot: 0.3}},
		{Score: nil, Indikator: model.KpiIndicator{Nama: "Kualitas Kerja", Bobot: 0.4}},
	}

	sum := AggregateIndicators(details)
	if sum.Count != 1 {
		t.Fatalf("expected 1 detail dengan score, got %d", sum.Count)
	}
	if !almostEqual(sum.Mean, 80) {
		t.Fatalf("expected mean 80, got %v", sum.Mean)
	}
	if !almostEqual(sum.TotalBobot, 0.7) {
		t.Fatalf("expected total bobot 0.7, got %v", sum.TotalBobot)
	}

	// Semua score masih nil: periode dianggap tanpa indikator lain sehingga
	// ComposeFinal memakai core saja.
	semuaNil := AggregateIndicators([]model.KpiDetail{
		{Score: nil, Indikator: model.KpiIndicator{Nama: "Kedisiplinan", Bobot: 0.3}},
		{Score: nil, Indikator: model.KpiIndicator{Nama: "Kualitas Kerja", Bobot: 0.4}},
	})
	if semuaNil.Count != 0 {
		t.Fatalf("expected Count 0 untuk score semua nil, got %d", semuaNil.Count)
	}
	if got := ComposeFinal(100, 100, semuaNil); !almostEqual(got, 100) {
		t.Fatalf("expected core-only 100, got %v", got)
	}
}

func TestComposeFinalCoreOnly(t *testing.T) {
	// Tanpa indikator lain: final = (presensi*60 + pelatihan*40) / 100
	got := ComposeFinal(90, 75, IndicatorSummary{})
	if !almostEqual(got, 84) {
		t.Fatalf("expected 84, got %v", got)
	}
}

func TestComposeFinalBlended(t *testing.T) {
	// Ada indikator lain: final = 0.5*core + 0.5*mean
	got := ComposeFinal(90, 75, IndicatorSummary{Count: 1, Mean: 72})
	if !almostEqual(got, 78) {
		t.Fatalf("expected 78, got %v", got)
	}

	// core = (90*60 + 80*40)/100 = 86; final = 0.5*86 + 0.5*70 = 78
	got = ComposeFinal(90, 80, IndicatorSummary{Count: 1, Mean: 70})
	if !almostEqual(got, 78) {
		t.Fatalf("expected 78, got %v", got)
	}

	// Indikator ada tapi mean 0 tetap ganti regime, bukan dianggap kosong
	got = ComposeFinal(100, 100, IndicatorSummary{Count: 2, Mean: 0})
	if !almostEqual(got, 50) {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestComposeFinalClamped(t *testing.T) {
	// Score detail bisa melebihi 100; hasil akhir dipatok ke [0, 100]
	got := ComposeFinal(100, 100, IndicatorSummary{Count: 1, Mean: 150})
	if got != 100 {
		t.Fatalf("expected clamp ke 100, got %v", got)
	}
}
