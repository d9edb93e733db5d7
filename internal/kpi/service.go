package kpi

import (
	"hris-backend/internal/repository"
)

// Summary adalah hasil perhitungan KPI final satu karyawan satu periode.
// TotalBobot/TotalScore indikator lain ikut dikirim sebagai diagnostik;
// keduanya tidak memengaruhi rasio blending.
type Summary struct {
	KaryawanID uint `json:"karyawan_id"`
	Year       int  `json:"tahun"`
	Month      int  `json:"bulan"`

	ScorePresensi  float64 `json:"score_presensi"`
	ScorePelatihan float64 `json:"score_pelatihan"`
	BobotPresensi  float64 `json:"bobot_presensi"`
	BobotPelatihan float64 `json:"bobot_pelatihan"`

	TotalBobotIndikatorLain float64  `json:"total_bobot_indikator_lain"`
	TotalScoreIndikatorLain float64  `json:"total_score_indikator_lain"`
	KpiIndikatorLain        *float64 `json:"kpi_indikator_lain"` // nil jika tidak ada indikator lain

	KpiFinal float64 `json:"kpi_final"`
}

// Service menghitung KPI final dari record mentah. Semua pembaca (laporan,
// ekstraksi fitur, rekap departemen) lewat sini; formula tidak diduplikasi
// di query lain.
type Service struct {
	kehadiranRepo repository.KehadiranRepository
	pelatihanRepo repository.PelatihanRepository
	kpiRepo       repository.KpiRepository
	karyawanRepo  repository.KaryawanRepository
}

func NewService(
	kehadiranRepo repository.KehadiranRepository,
	pelatihanRepo repository.PelatihanRepository,
	kpiRepo repository.KpiRepository,
	karyawanRepo repository.KaryawanRepository,
) *Service {
	return &Service{
		kehadiranRepo: kehadiranRepo,
		pelatihanRepo: pelatihanRepo,
		kpiRepo:       kpiRepo,
		karyawanRepo:  karyawanRepo,
	}
}

// FinalKpi menghitung ulang KPI final dari record mentah untuk satu karyawan
// satu periode. Data sparse tidak pernah jadi error: tanpa kehadiran dan
// pelatihan hasilnya 0.
func (s *Service) FinalKpi(karyawanID uint, year, month int) (*Summary, error) {
	kehadiran, err := s.kehadiranRepo.GetByMonth(karyawanID, year, month)
	if err != nil {
		return nil, err
	}
	pelatihan, err := s.pelatihanRepo.GetDetailsByKaryawan(karyawanID)
	if err != nil {
		return nil, err
	}
	details, err := s.kpiRepo.GetDetailsByPeriode(karyawanID, year, month)
	if err != nil {
		return nil, err
	}

	presence := ScorePresence(kehadiran)
	training := ScoreTraining(pelatihan, year, month)
	indicators := AggregateIndicators(details)

	summary := &Summary{
		KaryawanID:              karyawanID,
		Year:                    year,
		Month:                   month,
		ScorePresensi:           presence,
		ScorePelatihan:          training,
		BobotPresensi:           BobotPresensi,
		BobotPelatihan:          BobotPelatihan,
		TotalBobotIndikatorLain: indicators.TotalBobot,
		TotalScoreIndikatorLain: indicators.TotalScore,
		KpiFinal:                ComposeFinal(presence, training, indicators),
	}
	if indicators.Count > 0 {
		mean := indicators.Mean
		summary.KpiIndikatorLain = &mean
	}
	return summary, nil
}

// History mengembalikan KPI final untuk setiap periode yang punya detail KPI,
// terbaru dulu.
func (s *Service) History(karyawanID uint) ([]Summary, error) {
	periods, err := s.kpiRepo.GetDetailPeriods(karyawanID)
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(periods))
	for _, p := range periods {
		summary, err := s.FinalKpi(karyawanID, p.Year, p.Month)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// DepartemenSummary adalah rekap KPI bulanan satu departemen: rata-rata KPI
// final per karyawan, bukan agregasi ulang record mentah di level departemen.
type DepartemenSummary struct {
	DepartemenID  uint    `json:"departemen_id"`
	Year          int     `json:"tahun"`
	Month         int     `json:"bulan"`
	JumlahAnggota int     `json:"jumlah_anggota"`
	KpiFinal      float64 `json:"kpi_final"`
}

func (s *Service) DepartemenFinalKpi(departemenID uint, year, month int) (*DepartemenSummary, error) {
	ids, err := s.karyawanRepo.GetIDsByDepartemen(departemenID)
	if err != nil {
		return nil, err
	}
	rekap := &DepartemenSummary{
		DepartemenID: departemenID,
		Year:         year,
		Month:        month,
	}
	total := 0.0
	for _, id := range ids {
		summary, err := s.FinalKpi(id, year, month)
		if err != nil {
			return nil, err
		}
		total += summary.KpiFinal
		rekap.JumlahAnggota++
	}
	if rekap.JumlahAnggota > 0 {
		rekap.KpiFinal = total / float64(rekap.JumlahAnggota)
	}
	return rekap, nil
}

// RataRataTahunan merata-ratakan KPI final 12 bulan satu tahun. Bulan tanpa
// data ikut dirata-rata sebagai 0, jadi hasilnya rendah untuk karyawan yang
// baru masuk pertengahan tahun.
func (s *Service) RataRataTahunan(karyawanID uint, year int) (float64, error) {
	total := 0.0
	for month := 1; month <= 12; month++ {
		summary, err := s.FinalKpi(karyawanID, year, month)
		if err != nil {
			return 0, err
		}
		total += summary.KpiFinal
	}
	return total / 12, nil
}
