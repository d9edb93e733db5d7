package repository

import (
	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type PromotionRepository interface {
	// LatestModelVersion mengembalikan (nil, nil) jika belum ada model tersimpan.
	LatestModelVersion(name string) (*model.ModelVersion, error)
	CreateModelVersion(version *model.ModelVersion) error
	CreateSnapshot(snapshot *model.FeatureSnapshot) error
	CreateRecommendation(rec *model.PromotionRecommendation) error
	GetRecommendations(karyawanID uint) ([]model.PromotionRecommendation, error)
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db}
}

func (r *promotionRepository) LatestModelVersion(name string) (*model.ModelVersion, error) {
	var version model.ModelVersion
	err := r.db.Where("name = ?", name).Order("version desc").First(&version).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *promotionRepository) CreateModelVersion(version *model.ModelVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var last model.ModelVersion
		err := tx.Where("name = ?", version.Name).Order("version desc").First(&last).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		version.Version = last.Version + 1
		return tx.Create(version).Error
	})
}

func (r *promotionRepository) CreateSnapshot(snapshot *model.FeatureSnapshot) error {
	return r.db.Create(snapshot).Error
}

func (r *promotionRepository) CreateRecommendation(rec *model.PromotionRecommendation) error {
	return r.db.Create(rec).Error
}

func (r *promotionRepository) GetRecommendations(karyawanID uint) ([]model.PromotionRecommendation, error) {
	var list []model.PromotionRecommendation
	q := r.db.Order("created_at desc")
	if karyawanID > 0 {
		q = q.Where("karyawan_id = ?", karyawanID)
	}
	err := q.Find(&list).Error
	return list, err
}
