package promotion

import (
	"encoding/json"
	"math"
	"os"
	"time"
)

const (
	ActiveModelName = "PromotionModel"
	ActiveModelType = "LinearSigmoid"

	LabelPromote   = "PROMOTE"
	LabelNoPromote = "NO_PROMOTE"
)

// Prediction adalah hasil satu kali scoring.
type Prediction struct {
	Score       float64 `json:"score"`
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Confidence  float64 `json:"confidence"` // 0 di decision boundary, 1 di ekstrem
}

type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// Model adalah scorer linear + sigmoid untuk rekomendasi promosi. Sebelum
// diload, Predict mengembalikan default NO_PROMOTE berconfidence nol, bukan
// error.
type Model struct {
	Weights      []float64
	Bias         float64
	FeatureNames []string
	loaded       bool
}

type modelFile struct {
	Weights      []float64           `json:"weights"`
	Bias         float64             `json:"bias"`
	FeatureNames []string            `json:"feature_names"`
	Importance   []FeatureImportance `json:"feature_importance"`
	Metadata     modelMetadata       `json:"metadata"`
}

type modelMetadata struct {
	Type      string `json:"type"`
	Version   string `json:"version"`
	CreatedAt string `json:"created_at"`
}

// Load membaca blob model dari path dan memvalidasi urutan fiturnya terhadap
// encoder di binary ini.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file modelFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if err := ValidateFeatureNames(file.FeatureNames); err != nil {
		return nil, err
	}
	return &Model{
		Weights:      file.Weights,
		Bias:         file.Bias,
		FeatureNames: file.FeatureNames,
		loaded:       true,
	}, nil
}

// Save menulis model sebagai JSON ke path.
func (m *Model) Save(path string) error {
	file := modelFile{
		Weights:      m.Weights,
		Bias:         m.Bias,
		FeatureNames: m.FeatureNames,
		Importance:   m.Importance(),
		Metadata: modelMetadata{
			Type:      ActiveModelType,
			Version:   "1.0.0",
			CreatedAt: time.Now().Format(time.RFC3339),
		},
	}
	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

func (m *Model) Loaded() bool {
	return m != nil && m.loaded
}

// Predict menghitung z = bias + Σ w·x lalu sigmoid. Label PROMOTE jika
// probabilitas >= 0.5; confidence = |p - 0.5| * 2.
func (m *Model) Predict(features []float64) Prediction {
	if !m.Loaded() {
		return Prediction{Label: LabelNoPromote}
	}
	z := m.Bias
	for i := 0; i < len(features) && i < len(m.Weights); i++ {
		z += features[i] * m.Weights[i]
	}
	probability := sigmoid(z)

	label := LabelNoPromote
	if probability >= 0.5 {
		label = LabelPromote
	}
	return Prediction{
		Score:       probability,
		Label:       label,
		Probability: probability,
		Confidence:  math.Abs(probability-0.5) * 2,
	}
}

// Importance adalah |weight| per fitur, urutan sama dengan FeatureNames.
func (m *Model) Importance() []FeatureImportance {
	importance := make([]FeatureImportance, len(m.Weights))
	for i, w := range m.Weights {
		name := ""
		if i < len(m.FeatureNames) {
			name = m.FeatureNames[i]
		}
		importance[i] = FeatureImportance{Feature: name, Importance: math.Abs(w)}
	}
	return importance
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
