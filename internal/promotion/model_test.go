package promotion

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func testModel(weights []float64, bias float64) *Model {
	return &Model{
		Weights:      weights,
		Bias:         bias,
		FeatureNames: FeatureNames(),
		loaded:       true,
	}
}

func zeroVector() []float64 {
	return make([]float64, len(featureNames))
}

func TestPredictUnloaded(t *testing.T) {
	var m *Model
	pred := m.Predict(zeroVector())
	if pred.Label != LabelNoPromote {
		t.Fatalf("expected NO_PROMOTE, got %s", pred.Label)
	}
	if pred.Confidence != 0 || pred.Probability != 0 {
		t.Fatalf("expected prediksi default nol, got %+v", pred)
	}
}

func TestPredictDecisionBoundary(t *testing.T) {
	// z = 0 -> p = 0.5: tepat di boundary label PROMOTE, confidence 0
	m := testModel(zeroVector(), 0)
	pred := m.Predict(zeroVector())
	if pred.Probability != 0.5 {
		t.Fatalf("expected probabilitas 0.5, got %v", pred.Probability)
	}
	if pred.Label != LabelPromote {
		t.Fatalf("expected PROMOTE di boundary, got %s", pred.Label)
	}
	if pred.Confidence != 0 {
		t.Fatalf("expected confidence 0 di boundary, got %v", pred.Confidence)
	}
}

func TestPredictMonotonic(t *testing.T) {
	weights := zeroVector()
	weights[5] = 1 // umur
	m := testModel(weights, 0)

	prev := -1.0
	for _, umur := range []float64{-3, 0, 1, 5, 20} {
		vector := zeroVector()
		vector[5] = umur
		pred := m.Predict(vector)
		if pred.Probability <= prev {
			t.Fatalf("probabilitas harus naik monoton, umur %v menghasilkan %v setelah %v",
				umur, pred.Probability, prev)
		}
		prev = pred.Probability
	}
}

func TestPredictLabels(t *testing.T) {
	weights := zeroVector()
	weights[5] = 1
	m := testModel(weights, 0)

	vector := zeroVector()
	vector[5] = 4
	if pred := m.Predict(vector); pred.Label != LabelPromote {
		t.Fatalf("expected PROMOTE untuk z positif, got %s", pred.Label)
	}
	vector[5] = -4
	pred := m.Predict(vector)
	if pred.Label != LabelNoPromote {
		t.Fatalf("expected NO_PROMOTE untuk z negatif, got %s", pred.Label)
	}
	if pred.Confidence <= 0.9 {
		t.Fatalf("expected confidence tinggi di ekstrem, got %v", pred.Confidence)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	weights := zeroVector()
	weights[0] = 0.25
	weights[9] = -1.5
	m := testModel(weights, 0.75)

	path := filepath.Join(t.TempDir(), "model.json")
	if err := m.Save(path); err != nil {
		t.Fatalf("save error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if !loaded.Loaded() {
		t.Fatalf("expected model loaded")
	}
	if loaded.Bias != m.Bias {
		t.Fatalf("bias mismatch: %v vs %v", loaded.Bias, m.Bias)
	}
	for i := range weights {
		if loaded.Weights[i] != weights[i] {
			t.Fatalf("weight %d mismatch: %v vs %v", i, loaded.Weights[i], weights[i])
		}
	}

	// Hasil prediksi identik setelah round-trip
	vector := zeroVector()
	vector[0] = 2
	vector[9] = 0.5
	if got, want := loaded.Predict(vector), m.Predict(vector); got != want {
		t.Fatalf("prediksi beda setelah load: %+v vs %+v", got, want)
	}
}

func TestLoadRejectsFeatureMismatch(t *testing.T) {
	bad := &Model{
		Weights:      zeroVector(),
		FeatureNames: []string{"cuma", "dua"},
		loaded:       true,
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := bad.Save(path); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error untuk urutan fitur mismatch")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "tidak-ada.json")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestImportance(t *testing.T) {
	weights := zeroVector()
	weights[2] = -0.8
	m := testModel(weights, 0)

	importance := m.Importance()
	if len(importance) != len(weights) {
		t.Fatalf("expected %d entri, got %d", len(weights), len(importance))
	}
	if importance[2].Feature != "gender" {
		t.Fatalf("expected fitur gender, got %s", importance[2].Feature)
	}
	if math.Abs(importance[2].Importance-0.8) > 1e-9 {
		t.Fatalf("expected importance |w| = 0.8, got %v", importance[2].Importance)
	}
}
