package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hris-backend/internal/model"
	"hris-backend/internal/promotion"
	"hris-backend/internal/repository"

	"github.com/google/uuid"
)

// TrainerUsecase melatih model promosi dan menyimpannya sebagai ModelVersion
// baru (version = max+1) plus blob bobot di storage dir.
type TrainerUsecase struct {
	promoRepo  repository.PromotionRepository
	storageDir string
}

func NewTrainerUsecase(promoRepo repository.PromotionRepository, storageDir string) *TrainerUsecase {
	return &TrainerUsecase{promoRepo: promoRepo, storageDir: storageDir}
}

// Train menerima dataset berlabel apa pun; dataset kosong adalah hard failure
// dan tidak ada ModelVersion yang dibuat. Blob ditulis dulu, lalu row version;
// kalau row gagal dibuat, blob ikut dihapus supaya state lama tetap utuh.
func (u *TrainerUsecase) Train(samples []promotion.Sample) (*model.ModelVersion, error) {
	result, err := promotion.Train(samples)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(u.storageDir, 0755); err != nil {
		return nil, err
	}
	storagePath := filepath.Join(u.storageDir, fmt.Sprintf("model-%s.json", uuid.NewString()))
	if err := result.Model.Save(storagePath); err != nil {
		return nil, err
	}

	metrics, err := json.Marshal(result.Metrics)
	if err != nil {
		os.Remove(storagePath)
		return nil, err
	}

	version := &model.ModelVersion{
		Name:        promotion.ActiveModelName,
		Type:        promotion.ActiveModelType,
		StoragePath: storagePath,
		Metrics:     string(metrics),
	}
	if err := u.promoRepo.CreateModelVersion(version); err != nil {
		os.Remove(storagePath)
		return nil, err
	}
	return version, nil
}

// TrainBootstrap melatih dengan seed set sintetis saat belum ada label historis.
func (u *TrainerUsecase) TrainBootstrap() (*model.ModelVersion, error) {
	return u.Train(promotion.SyntheticSamples())
}
