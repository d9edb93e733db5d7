package usecase

import (
	"path/filepath"
	"strings"
	"testing"

	"hris-backend/internal/model"
	"hris-backend/internal/promotion"
	"hris-backend/internal/repository"

	"gorm.io/gorm"
)

type fakePromotionRepo struct {
	repository.PromotionRepository
	latest           *model.ModelVersion
	snapshots        []model.FeatureSnapshot
	recommendations  []model.PromotionRecommendation
	versions         []model.ModelVersion
	createVersionErr error
}

func (f *fakePromotionRepo) LatestModelVersion(name string) (*model.ModelVersion, error) {
	return f.latest, nil
}

func (f *fakePromotionRepo) CreateSnapshot(snapshot *model.FeatureSnapshot) error {
	f.snapshots = append(f.snapshots, *snapshot)
	return nil
}

func (f *fakePromotionRepo) CreateRecommendation(rec *model.PromotionRecommendation) error {
	f.recommendations = append(f.recommendations, *rec)
	return nil
}

// trainedModelVersion melatih model beneran dan menyimpan blob-nya ke temp dir
// supaya jalur load-dari-disk ikut teruji.
func trainedModelVersion(t *testing.T) *model.ModelVersion {
	t.Helper()
	result, err := promotion.Train(promotion.SyntheticSamples())
	if err != nil {
		t.Fatalf("train error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := result.Model.Save(path); err != nil {
		t.Fatalf("save error: %v", err)
	}
	return &model.ModelVersion{
		Model:       gorm.Model{ID: 10},
		Name:        promotion.ActiveModelName,
		Version:     1,
		Type:        promotion.ActiveModelType,
		StoragePath: path,
	}
}

func TestRecommendWithoutModel(t *testing.T) {
	promoRepo := &fakePromotionRepo{}
	features := NewFeatureUsecase(&fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: testKaryawan()}})
	uc := NewRecommendationUsecase(promoRepo, features)

	result, err := uc.Recommend(1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil tanpa model aktif, got %+v", result)
	}
	if len(promoRepo.snapshots) != 0 || len(promoRepo.recommendations) != 0 {
		t.Fatalf("tidak boleh ada yang dipersist tanpa model aktif")
	}
}

func TestRecommendPersistsAuditTrail(t *testing.T) {
	promoRepo := &fakePromotionRepo{latest: trainedModelVersion(t)}
	features := NewFeatureUsecase(&fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: testKaryawan()}})
	uc := NewRecommendationUsecase(promoRepo, features)

	result, err := uc.Recommend(1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected hasil rekomendasi")
	}
	if result.ModelVersion != 1 {
		t.Fatalf("expected model version 1, got %d", result.ModelVersion)
	}
	if result.Prediction.Label != promotion.LabelPromote && result.Prediction.Label != promotion.LabelNoPromote {
		t.Fatalf("label tidak dikenal: %s", result.Prediction.Label)
	}

	if len(promoRepo.snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(promoRepo.snapshots))
	}
	snapshot := promoRepo.snapshots[0]
	if snapshot.KaryawanID != 1 || snapshot.ModelVersionID != 10 {
		t.Fatalf("snapshot salah: %+v", snapshot)
	}
	if !strings.Contains(snapshot.Features, "Budi Santoso") {
		t.Fatalf("snapshot harus memuat fitur mentah: %s", snapshot.Features)
	}

	if len(promoRepo.recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(promoRepo.recommendations))
	}
	rec := promoRepo.recommendations[0]
	if rec.Probability != result.Prediction.Probability {
		t.Fatalf("probabilitas tersimpan beda: %v vs %v", rec.Probability, result.Prediction.Probability)
	}
	if rec.Recommend != (result.Prediction.Label == promotion.LabelPromote) {
		t.Fatalf("flag recommend tidak konsisten dengan label")
	}
}

func TestRecommendBatchIsolation(t *testing.T) {
	promoRepo := &fakePromotionRepo{latest: trainedModelVersion(t)}
	features := NewFeatureUsecase(&fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: testKaryawan()}})
	uc := NewRecommendationUsecase(promoRepo, features)

	// Karyawan 99 tidak ada; kegagalannya tidak membatalkan karyawan 1
	results := uc.RecommendBatch([]uint{1, 99}, 2024)
	if len(results) != 2 {
		t.Fatalf("expected 2 entri, got %d", len(results))
	}
	if results[0].Error != "" || results[0].Result == nil {
		t.Fatalf("expected entri pertama sukses: %+v", results[0])
	}
	if results[1].Error == "" || results[1].Result != nil {
		t.Fatalf("expected entri kedua gagal: %+v", results[1])
	}
}

func TestRecommendBatchWithoutModel(t *testing.T) {
	promoRepo := &fakePromotionRepo{}
	features := NewFeatureUsecase(&fakeKaryawanRepo{data: map[uint]*model.Karyawan{1: testKaryawan()}})
	uc := NewRecommendationUsecase(promoRepo, features)

	results := uc.RecommendBatch([]uint{1}, 2024)
	if len(results) != 1 {
		t.Fatalf("expected 1 entri, got %d", len(results))
	}
	if results[0].Error != "tidak ada model aktif" {
		t.Fatalf("unexpected error entry: %+v", results[0])
	}
}
