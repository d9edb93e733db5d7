package usecase

import (
	"testing"
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"gorm.io/gorm"
)

// Fake repo: embed interface, override method yang dipakai saja.
type fakeKaryawanRepo struct {
	repository.KaryawanRepository
	data map[uint]*model.Karyawan
}

func (f *fakeKaryawanRepo) GetForFeatures(id uint, year int) (*model.Karyawan, error) {
	karyawan, ok := f.data[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return karyawan, nil
}

func (f *fakeKaryawanRepo) GetAllForFeatures(year int) ([]model.Karyawan, error) {
	list := make([]model.Karyawan, 0, len(f.data))
	for _, k := range f.data {
		list = append(list, *k)
	}
	return list, nil
}

func skor(v float64) *float64 { return &v }

func testKaryawan() *model.Karyawan {
	lahir := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	return &model.Karyawan{
		Model:        gorm.Model{ID: 1},
		Nama:         "Budi Santoso",
		Gender:       "Pria",
		TanggalLahir: &lahir,
		TanggalMasuk: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
		Pendidikan:   "Sarjana",
		JalurRekrut:  "Wawancara",
		Departemen:   []model.Departemen{{Nama: "Technology"}, {Nama: "Finance"}},
		Kpi:          []model.Kpi{{Year: 2024, Score: 85}},
		Penghargaan:  []model.Penghargaan{{Nama: "Employee of the Year", Tahun: 2024}},
		PelatihanDetail: []model.PelatihanDetail{
			{Skor: skor(80)},
			{Skor: skor(85)},
			{Skor: nil}, // ikut dihitung jumlah, tidak ikut rata-rata
		},
	}
}

func TestExtractFeatures(t *testing.T) {
	repo := &fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: testKaryawan()}}
	uc := NewFeatureUsecase(repo)

	features, err := uc.Extract(1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Referensi umur/lama bekerja: 1 Januari 2025
	if features.Umur != 29 {
		t.Fatalf("expected umur 29, got %d", features.Umur)
	}
	if features.LamaBekerja != 3 {
		t.Fatalf("expected lama bekerja 3, got %d", features.LamaBekerja)
	}
	if features.Departemen != "Technology" {
		t.Fatalf("expected departemen pertama, got %s", features.Departemen)
	}
	if features.JumlahPelatihan != 3 {
		t.Fatalf("expected 3 pelatihan, got %d", features.JumlahPelatihan)
	}
	// Rata-rata hanya dari keikutsertaan yang sudah dinilai: (80 + 85) / 2
	if features.RataRataScorePelatihan != 82.5 {
		t.Fatalf("expected rata-rata 82.5, got %v", features.RataRataScorePelatihan)
	}
	if !features.KpiDiatas80 {
		t.Fatalf("expected kpi_diatas_80 true untuk score 85")
	}
	if !features.AdaPenghargaan {
		t.Fatalf("expected penghargaan true")
	}
}

func TestExtractFeaturesDefaults(t *testing.T) {
	karyawan := &model.Karyawan{
		Model:        gorm.Model{ID: 2},
		Nama:         "Tanpa Data",
		TanggalMasuk: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	repo := &fakeKaryawanRepo{data: map[uint]*model.Karyawan{2: karyawan}}
	uc := NewFeatureUsecase(repo)

	features, err := uc.Extract(2, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if features.Umur != 0 {
		t.Fatalf("expected umur 0 tanpa tanggal lahir, got %d", features.Umur)
	}
	if features.Departemen != "" {
		t.Fatalf("expected departemen kosong, got %s", features.Departemen)
	}
	if features.KpiDiatas80 || features.AdaPenghargaan {
		t.Fatalf("expected flag default false: %+v", features)
	}
	if features.RataRataScorePelatihan != 0 {
		t.Fatalf("expected rata-rata 0, got %v", features.RataRataScorePelatihan)
	}
}

func TestExtractFeaturesKpiBatas(t *testing.T) {
	// Score tepat 80 bukan "di atas 80"
	karyawan := testKaryawan()
	karyawan.Kpi = []model.Kpi{{Year: 2024, Score: 80}}
	repo := &fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: karyawan}}
	uc := NewFeatureUsecase(repo)

	features, err := uc.Extract(1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if features.KpiDiatas80 {
		t.Fatalf("expected kpi_diatas_80 false untuk score tepat 80")
	}
}

func TestExtractNotFound(t *testing.T) {
	repo := &fakeKaryawanRepo{data: map[uint]*model.Karyawan{}}
	uc := NewFeatureUsecase(repo)

	if _, err := uc.Extract(99, 2024); err == nil {
		t.Fatalf("expected error untuk karyawan tidak ada")
	}
}

func TestExtractAll(t *testing.T) {
	repo := &fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: testKaryawan()}}
	uc := NewFeatureUsecase(repo)

	features, err := uc.ExtractAll(2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("expected 1 karyawan, got %d", len(features))
	}
	if features[0].Nama != "Budi Santoso" {
		t.Fatalf("unexpected nama: %s", features[0].Nama)
	}
}
