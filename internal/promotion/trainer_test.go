package promotion

import (
	"errors"
	"math"
	"testing"
)

func TestTrainEmptyDataset(t *testing.T) {
	if _, err := Train(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestTrainWeights(t *testing.T) {
	promote := Features{
		Departemen: "Technology", Pendidikan: "Magister", Gender: "Pria", JalurRekrut: "Wawancara",
		JumlahPelatihan: 4, Umur: 30, LamaBekerja: 6,
		KpiDiatas80: true, AdaPenghargaan: true, RataRataScorePelatihan: 88,
	}
	noPromote := Features{
		Departemen: "Finance", Pendidikan: "Sarjana", Gender: "Wanita", JalurRekrut: "lainnya",
		JumlahPelatihan: 1, Umur: 24, LamaBekerja: 1,
	}

	result, err := Train([]Sample{
		{Features: promote, Label: LabelPromote},
		{Features: noPromote, Label: LabelNoPromote},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// weight[i] = sum(x_i * label) / n; hanya sampel PROMOTE yang berkontribusi
	want := Encode(promote)
	for i, w := range result.Model.Weights {
		if math.Abs(w-want[i]/2) > 1e-9 {
			t.Fatalf("weight %d: expected %v, got %v", i, want[i]/2, w)
		}
	}
	if result.Model.Bias != 0 {
		t.Fatalf("expected bias 0, got %v", result.Model.Bias)
	}
	if !result.Model.Loaded() {
		t.Fatalf("expected model hasil training langsung loaded")
	}
}

func TestTrainMetrics(t *testing.T) {
	result, err := Train(SyntheticSamples())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := result.Metrics
	if m.TotalSamples != 4 {
		t.Fatalf("expected 4 sampel, got %d", m.TotalSamples)
	}
	if m.ModelType != ActiveModelType {
		t.Fatalf("expected model type %s, got %s", ActiveModelType, m.ModelType)
	}
	if m.Accuracy < 0 || m.Accuracy > 1 {
		t.Fatalf("accuracy di luar [0,1]: %v", m.Accuracy)
	}
	if want := float64(m.CorrectPredictions) / float64(m.TotalSamples); math.Abs(m.Accuracy-want) > 1e-9 {
		t.Fatalf("accuracy tidak konsisten: %v vs %v", m.Accuracy, want)
	}
	if result.TrainedAt.IsZero() {
		t.Fatalf("expected trained_at terisi")
	}
}
