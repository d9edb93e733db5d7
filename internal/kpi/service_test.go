package kpi

import (
	"testing"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"
)

// Fake repo: embed interface, override method yang dipakai saja.
type fakeKehadiranRepo struct {
	repository.KehadiranRepository
	records map[uint][]model.Kehadiran
}

func (f *fakeKehadiranRepo) GetByMonth(karyawanID uint, year, month int) ([]model.Kehadiran, error) {
	return f.records[karyawanID], nil
}

type fakePelatihanRepo struct {
	repository.PelatihanRepository
	details map[uint][]model.PelatihanDetail
}

func (f *fakePelatihanRepo) GetDetailsByKaryawan(karyawanID uint) ([]model.PelatihanDetail, error) {
	return f.details[karyawanID], nil
}

type fakeKpiRepo struct {
	repository.KpiRepository
	details map[uint][]model.KpiDetail
	periods map[uint][]repository.Periode
}

func (f *fakeKpiRepo) GetDetailsByPeriode(karyawanID uint, year, month int) ([]model.KpiDetail, error) {
	var list []model.KpiDetail
	for _, d := range f.details[karyawanID] {
		if d.PeriodeYear == year && d.PeriodeMonth == month {
			list = append(list, d)
		}
	}
	return list, nil
}

func (f *fakeKpiRepo) GetDetailPeriods(karyawanID uint) ([]repository.Periode, error) {
	return f.periods[karyawanID], nil
}

type fakeKaryawanRepo struct {
	repository.KaryawanRepository
	byDepartemen map[uint][]uint
}

func (f *fakeKaryawanRepo) GetIDsByDepartemen(departemenID uint) ([]uint, error) {
	return f.byDepartemen[departemenID], nil
}

func skor(v float64) *float64 { return &v }

func newTestService() *Service {
	kehadiran := &fakeKehadiranRepo{records: map[uint][]model.Kehadiran{
		// Karyawan 1: HADIR, HADIR, TERLAMBAT -> presensi 90
		1: {
			{Status: model.StatusHadir},
			{Status: model.StatusHadir},
			{Status: model.StatusTerlambat},
		},
		// Karyawan 2: semua HADIR -> presensi 100
		2: {
			{Status: model.StatusHadir},
			{Status: model.StatusHadir},
		},
	}}
	pelatihan := &fakePelatihanRepo{details: map[uint][]model.PelatihanDetail{
		1: {{Skor: skor(75), PeriodeYear: 2024, PeriodeMonth: 3}},
	}}
	kpiRepo := &fakeKpiRepo{
		details: map[uint][]model.KpiDetail{
			1: {{
				Score:        skor(72),
				PeriodeYear:  2024,
				PeriodeMonth: 3,
				Indikator:    model.KpiIndicator{Nama: "Kualitas Kerja", Bobot: 0.4},
			}},
		},
		periods: map[uint][]repository.Periode{
			1: {{Year: 2024, Month: 3}},
		},
	}
	karyawan := &fakeKaryawanRepo{byDepartemen: map[uint][]uint{
		7: {1, 2},
	}}
	return NewService(kehadiran, pelatihan, kpiRepo, karyawan)
}

func TestFinalKpiBlended(t *testing.T) {
	service := newTestService()

	// presensi 90, pelatihan 75 -> core 84; indikator lain 72 -> 0.5*84 + 0.5*72
	summary, err := service.FinalKpi(1, 2024, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(summary.KpiFinal, 78) {
		t.Fatalf("expected KPI final 78, got %v", summary.KpiFinal)
	}
	if summary.KpiIndikatorLain == nil || !almostEqual(*summary.KpiIndikatorLain, 72) {
		t.Fatalf("expected kpi indikator lain 72, got %v", summary.KpiIndikatorLain)
	}
	if !almostEqual(summary.ScorePresensi, 90) || !almostEqual(summary.ScorePelatihan, 75) {
		t.Fatalf("unexpected komponen: %+v", summary)
	}
}

func TestFinalKpiCoreOnly(t *testing.T) {
	service := newTestService()

	// Karyawan 2: presensi 100, tanpa pelatihan dan indikator lain -> core saja
	summary, err := service.FinalKpi(2, 2024, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(summary.KpiFinal, 60) {
		t.Fatalf("expected KPI final 60, got %v", summary.KpiFinal)
	}
	if summary.KpiIndikatorLain != nil {
		t.Fatalf("expected kpi indikator lain nil, got %v", *summary.KpiIndikatorLain)
	}
}

func TestFinalKpiSparse(t *testing.T) {
	service := newTestService()

	// Karyawan tanpa data sama sekali: hasil 0, bukan error
	summary, err := service.FinalKpi(99, 2024, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.KpiFinal != 0 {
		t.Fatalf("expected 0, got %v", summary.KpiFinal)
	}
}

func TestHistory(t *testing.T) {
	service := newTestService()

	history, err := service.History(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 periode, got %d", len(history))
	}
	if history[0].Year != 2024 || history[0].Month != 3 {
		t.Fatalf("unexpected periode: %+v", history[0])
	}
	if !almostEqual(history[0].KpiFinal, 78) {
		t.Fatalf("expected 78, got %v", history[0].KpiFinal)
	}
}

func TestRataRataTahunan(t *testing.T) {
	service := newTestService()

	// Maret 78; sebelas bulan lain hanya presensi 90 -> core 54.
	// (78 + 11*54) / 12 = 56
	rataRata, err := service.RataRataTahunan(1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(rataRata, 56) {
		t.Fatalf("expected 56, got %v", rataRata)
	}
}

func TestDepartemenFinalKpi(t *testing.T) {
	service := newTestService()

	// Rata-rata KPI final anggota: (78 + 60) / 2
	rekap, err := service.DepartemenFinalKpi(7, 2024, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rekap.JumlahAnggota != 2 {
		t.Fatalf("expected 2 anggota, got %d", rekap.JumlahAnggota)
	}
	if !almostEqual(rekap.KpiFinal, 69) {
		t.Fatalf("expected 69, got %v", rekap.KpiFinal)
	}
}

func TestDepartemenFinalKpiKosong(t *testing.T) {
	service := newTestService()

	rekap, err := service.DepartemenFinalKpi(42, 2024, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rekap.JumlahAnggota != 0 || rekap.KpiFinal != 0 {
		t.Fatalf("expected rekap kosong, got %+v", rekap)
	}
}
