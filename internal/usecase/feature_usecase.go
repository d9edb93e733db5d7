package usecase

import (
	"math"
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/promotion"
	"hris-backend/internal/repository"
)

// FeatureUsecase membangun vektor fitur promosi per karyawan untuk satu tahun
// target. Karyawan yang tidak ada menghasilkan error not-found dari repository,
// bukan dilewati diam-diam.
type FeatureUsecase struct {
	karyawanRepo repository.KaryawanRepository
}

func NewFeatureUsecase(karyawanRepo repository.KaryawanRepository) *FeatureUsecase {
	return &FeatureUsecase{karyawanRepo: karyawanRepo}
}

func (u *FeatureUsecase) Extract(karyawanID uint, year int) (*promotion.Features, error) {
	karyawan, err := u.karyawanRepo.GetForFeatures(karyawanID, year)
	if err != nil {
		return nil, err
	}
	features := buildFeatures(karyawan, year)
	return &features, nil
}

func (u *FeatureUsecase) ExtractAll(year int) ([]promotion.Features, error) {
	list, err := u.karyawanRepo.GetAllForFeatures(year)
	if err != nil {
		return nil, err
	}
	features := make([]promotion.Features, len(list))
	for i := range list {
		features[i] = buildFeatures(&list[i], year)
	}
	return features, nil
}

func buildFeatures(karyawan *model.Karyawan, year int) promotion.Features {
	departemen := ""
	if len(karyawan.Departemen) > 0 {
		departemen = karyawan.Departemen[0].Nama
	}

	// Umur relatif tahun target; tanggal lahir kosong dihitung 0, bukan error.
	umur := 0
	if karyawan.TanggalLahir != nil {
		umur = yearsSince(*karyawan.TanggalLahir, year)
	}

	// KPI tahunan di atas 80 pakai cache skor tahunan (relasi sudah difilter by year).
	kpiDiatas80 := len(karyawan.Kpi) > 0 && karyawan.Kpi[0].Score > 80

	total := 0.0
	count := 0
	for _, d := range karyawan.PelatihanDetail {
		if d.Skor == nil {
			continue
		}
		total += *d.Skor
		count++
	}
	rataRata := 0.0
	if count > 0 {
		rataRata = math.Round(total/float64(count)*100) / 100
	}

	return promotion.Features{
		KaryawanID:             karyawan.ID,
		Nama:                   karyawan.Nama,
		Departemen:             departemen,
		Pendidikan:             karyawan.Pendidikan,
		Gender:                 karyawan.Gender,
		JalurRekrut:            karyawan.JalurRekrut,
		JumlahPelatihan:        len(karyawan.PelatihanDetail),
		Umur:                   umur,
		LamaBekerja:            yearsSince(karyawan.TanggalMasuk, year),
		KpiDiatas80:            kpiDiatas80,
		AdaPenghargaan:         len(karyawan.Penghargaan) > 0,
		RataRataScorePelatihan: rataRata,
	}
}

// yearsSince menghitung selisih tahun utuh terhadap tanggal referensi
// 1 Januari (targetYear+1), dibulatkan ke bawah dan tidak pernah negatif.
func yearsSince(t time.Time, targetYear int) int {
	ref := time.Date(targetYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	years := ref.Year() - t.Year()
	if ref.Month() < t.Month() || (ref.Month() == t.Month() && ref.Day() < t.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
