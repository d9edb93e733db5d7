package model

import "gorm.io/gorm"

// ModelVersion menyimpan metadata model promosi yang sudah ditraining.
// Immutable; model aktif = version tertinggi untuk satu nama.
type ModelVersion struct {
	gorm.Model
	Name        string `json:"name" gorm:"index:idx_model_name_version"`
	Version     int    `json:"version" gorm:"index:idx_model_name_version"`
	Type        string `json:"type"`
	StoragePath string `json:"storage_path"`
	Metrics     string `json:"metrics" gorm:"type:text"` // JSON hasil evaluasi training
}

// FeatureSnapshot merekam vektor fitur persis seperti saat dipakai prediksi.
type FeatureSnapshot struct {
	gorm.Model
	KaryawanID     uint   `json:"karyawan_id"`
	ModelVersionID uint   `json:"model_version_id"`
	Features       string `json:"features" gorm:"type:text"` // JSON
}

type PromotionRecommendation struct {
	gorm.Model
	KaryawanID     uint    `json:"karyawan_id"`
	ModelVersionID uint    `json:"model_version_id"`
	Score          float64 `json:"score"`
	Recommend      bool    `json:"recommend"`
	Confidence     float64 `json:"confidence"`
	Probability    float64 `json:"probability"`
	Reasons        string  `json:"reasons" gorm:"type:text"` // JSON
}
