package promotion

import (
	"errors"
	"time"
)

// Sample adalah satu contoh berlabel untuk training.
type Sample struct {
	Features Features `json:"features"`
	Label    string   `json:"label"` // PROMOTE / NO_PROMOTE
}

// Metrics adalah evaluasi kasar di data training sendiri (bukan validasi
// held-out): fraksi sampel yang label prediksinya cocok.
type Metrics struct {
	Accuracy           float64 `json:"accuracy"`
	TotalSamples       int     `json:"total_samples"`
	CorrectPredictions int     `json:"correct_predictions"`
	ModelType          string  `json:"model_type"`
}

type TrainResult struct {
	Model     *Model    `json:"-"`
	Metrics   Metrics   `json:"metrics"`
	TrainedAt time.Time `json:"trained_at"`
}

var ErrEmptyDataset = errors.New("training dataset kosong")

// Train menaksir bobot per fitur dengan estimator korelasi kasar:
//
//	weight[i] = Σ (feature[i] * label) / jumlah sampel, bias = 0
//
// Estimator ini dipertahankan apa adanya, bukan regresi logistik beneran.
func Train(samples []Sample) (*TrainResult, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}

	vectors := make([][]float64, len(samples))
	labels := make([]float64, len(samples))
	for i, s := range samples {
		vectors[i] = Encode(s.Features)
		if s.Label == LabelPromote {
			labels[i] = 1
		}
	}

	numFeatures := len(vectors[0])
	weights := make([]float64, numFeatures)
	for i := 0; i < numFeatures; i++ {
		sum := 0.0
		for j := range vectors {
			sum += vectors[j][i] * labels[j]
		}
		weights[i] = sum / float64(len(vectors))
	}

	model := &Model{
		Weights:      weights,
		Bias:         0,
		FeatureNames: FeatureNames(),
		loaded:       true,
	}

	correct := 0
	for i, vector := range vectors {
		pred := model.Predict(vector)
		predicted := 0.0
		if pred.Label == LabelPromote {
			predicted = 1
		}
		if predicted == labels[i] {
			correct++
		}
	}

	return &TrainResult{
		Model: model,
		Metrics: Metrics{
			Accuracy:           float64(correct) / float64(len(samples)),
			TotalSamples:       len(samples),
			CorrectPredictions: correct,
			ModelType:          ActiveModelType,
		},
		TrainedAt: time.Now(),
	}, nil
}

// SyntheticSamples adalah seed set bootstrap ketika belum ada label historis:
// beberapa profil high performer dan average performer yang masuk akal.
func SyntheticSamples() []Sample {
	return []Sample{
		{
			Features: Features{
				Departemen: "Technology", Pendidikan: "Magister", Gender: "Pria", JalurRekrut: "Wawancara",
				JumlahPelatihan: 4, Umur: 28, LamaBekerja: 3,
				KpiDiatas80: true, AdaPenghargaan: true, RataRataScorePelatihan: 88,
			},
			Label: LabelPromote,
		},
		{
			Features: Features{
				Departemen: "Finance", Pendidikan: "Magister", Gender: "Wanita", JalurRekrut: "Undangan",
				JumlahPelatihan: 6, Umur: 32, LamaBekerja: 5,
				KpiDiatas80: true, AdaPenghargaan: true, RataRataScorePelatihan: 85,
			},
			Label: LabelPromote,
		},
		{
			Features: Features{
				Departemen: "Operations", Pendidikan: "Sarjana", Gender: "Pria", JalurRekrut: "Wawancara",
				JumlahPelatihan: 2, Umur: 25, LamaBekerja: 2,
				KpiDiatas80: false, AdaPenghargaan: false, RataRataScorePelatihan: 70,
			},
			Label: LabelNoPromote,
		},
		{
			Features: Features{
				Departemen: "Sales & Marketing", Pendidikan: "Sarjana", Gender: "Wanita", JalurRekrut: "lainnya",
				JumlahPelatihan: 3, Umur: 30, LamaBekerja: 4,
				KpiDiatas80: false, AdaPenghargaan: false, RataRataScorePelatihan: 72,
			},
			Label: LabelNoPromote,
		},
	}
}
