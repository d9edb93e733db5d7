package usecase

import (
	"encoding/json"

	"hris-backend/internal/model"
	"hris-backend/internal/promotion"
	"hris-backend/internal/repository"
)

// RecommendationResult adalah hasil satu kali scoring promosi untuk satu
// karyawan terhadap model aktif.
type RecommendationResult struct {
	KaryawanID   uint                  `json:"karyawan_id"`
	Nama         string                `json:"nama"`
	ModelVersion int                   `json:"model_version"`
	Prediction   promotion.Prediction  `json:"prediction"`
	Explanation  promotion.Explanation `json:"explanation"`
	Features     promotion.Features    `json:"features"`
}

// BatchEntry mengisolasi kegagalan per karyawan di batch: entry sukses dan
// entry error hidup berdampingan di satu list hasil.
type BatchEntry struct {
	KaryawanID uint                  `json:"karyawan_id"`
	Result     *RecommendationResult `json:"result,omitempty"`
	Error      string                `json:"error,omitempty"`
}

type RecommendationUsecase struct {
	promoRepo repository.PromotionRepository
	features  *FeatureUsecase
}

func NewRecommendationUsecase(promoRepo repository.PromotionRepository, features *FeatureUsecase) *RecommendationUsecase {
	return &RecommendationUsecase{promoRepo: promoRepo, features: features}
}

// ActiveModel memuat model version tertinggi beserta blob bobotnya.
// (nil, nil, nil) berarti belum ada model yang ditraining.
func (u *RecommendationUsecase) ActiveModel() (*promotion.Model, *model.ModelVersion, error) {
	meta, err := u.promoRepo.LatestModelVersion(promotion.ActiveModelName)
	if err != nil {
		return nil, nil, err
	}
	if meta == nil {
		return nil, nil, nil
	}
	loaded, err := promotion.Load(meta.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return loaded, meta, nil
}

// Recommend menskor satu karyawan dengan model aktif, menyimpan snapshot fitur
// dan recommendation sebagai audit trail. Tanpa model aktif hasilnya nil tanpa
// error; caller yang butuh hard failure cek nil sendiri.
func (u *RecommendationUsecase) Recommend(karyawanID uint, year int) (*RecommendationResult, error) {
	loaded, meta, err := u.ActiveModel()
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, nil
	}

	features, err := u.features.Extract(karyawanID, year)
	if err != nil {
		return nil, err
	}

	vector := promotion.Encode(*features)
	pred := loaded.Predict(vector)
	explanation := promotion.Explain(pred, vector, loaded.Importance())

	featureJSON, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	if err := u.promoRepo.CreateSnapshot(&model.FeatureSnapshot{
		KaryawanID:     features.KaryawanID,
		ModelVersionID: meta.ID,
		Features:       string(featureJSON),
	}); err != nil {
		return nil, err
	}

	top := make([]string, 0, len(explanation.KeyFactors))
	for _, f := range explanation.KeyFactors {
		top = append(top, f.Feature)
	}
	reasons, err := json.Marshal(map[string]interface{}{
		"top":            top,
		"explanation":    explanation.Summary,
		"recommendation": explanation.Recommendation,
	})
	if err != nil {
		return nil, err
	}
	if err := u.promoRepo.CreateRecommendation(&model.PromotionRecommendation{
		KaryawanID:     features.KaryawanID,
		ModelVersionID: meta.ID,
		Score:          pred.Score,
		Recommend:      pred.Label == promotion.LabelPromote,
		Confidence:     pred.Confidence,
		Probability:    pred.Probability,
		Reasons:        string(reasons),
	}); err != nil {
		return nil, err
	}

	return &RecommendationResult{
		KaryawanID:   features.KaryawanID,
		Nama:         features.Nama,
		ModelVersion: meta.Version,
		Prediction:   pred,
		Explanation:  explanation,
		Features:     *features,
	}, nil
}

// RecommendBatch menskor banyak karyawan; kegagalan satu karyawan jadi entry
// error di hasil, bukan membatalkan seluruh batch.
func (u *RecommendationUsecase) RecommendBatch(karyawanIDs []uint, year int) []BatchEntry {
	results := make([]BatchEntry, 0, len(karyawanIDs))
	for _, id := range karyawanIDs {
		rec, err := u.Recommend(id, year)
		if err != nil {
			results = append(results, BatchEntry{KaryawanID: id, Error: err.Error()})
			continue
		}
		if rec == nil {
			results = append(results, BatchEntry{KaryawanID: id, Error: "tidak ada model aktif"})
			continue
		}
		results = append(results, BatchEntry{KaryawanID: id, Result: rec})
	}
	return results
}
