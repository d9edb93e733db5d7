package promotion

import (
	"strings"
	"testing"
)

func TestExplainTopFactors(t *testing.T) {
	importance := []FeatureImportance{
		{Feature: "departemen", Importance: 0.05}, // di bawah ambang, dibuang
		{Feature: "pendidikan", Importance: 0.5},
		{Feature: "gender", Importance: 0.3},
		{Feature: "jalur_rekrut", Importance: 0.7},
		{Feature: "jumlah_pelatihan", Importance: 0.9},
		{Feature: "umur", Importance: 0.4},
	}
	vector := []float64{1, 2, 0, 1, 3, 25}

	explanation := Explain(Prediction{Label: LabelPromote, Confidence: 0.8}, vector, importance)

	if len(explanation.KeyFactors) != 3 {
		t.Fatalf("expected 3 faktor teratas, got %d", len(explanation.KeyFactors))
	}
	if explanation.KeyFactors[0].Feature != "jumlah_pelatihan" ||
		explanation.KeyFactors[1].Feature != "jalur_rekrut" ||
		explanation.KeyFactors[2].Feature != "pendidikan" {
		t.Fatalf("urutan faktor salah: %+v", explanation.KeyFactors)
	}
	if explanation.Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", explanation.Confidence)
	}
	if !strings.Contains(explanation.Summary, "potensi tinggi") {
		t.Fatalf("unexpected summary: %s", explanation.Summary)
	}
}

func TestExplainImpactSign(t *testing.T) {
	importance := []FeatureImportance{
		{Feature: "umur", Importance: 0.5},
		{Feature: "gender", Importance: 0.4},
	}
	// umur bernilai positif, gender nol
	explanation := Explain(Prediction{Label: LabelNoPromote}, []float64{20, 0}, importance)

	if explanation.KeyFactors[0].Impact != "positive" {
		t.Fatalf("expected impact positive untuk nilai positif, got %s", explanation.KeyFactors[0].Impact)
	}
	if explanation.KeyFactors[1].Impact != "negative" {
		t.Fatalf("expected impact negative untuk nilai nol, got %s", explanation.KeyFactors[1].Impact)
	}
}

func TestExplainRecommendationText(t *testing.T) {
	importance := []FeatureImportance{
		{Feature: "kpi_diatas_80", Importance: 0.6},
	}

	promote := Explain(Prediction{Label: LabelPromote}, []float64{1}, importance)
	if !strings.Contains(promote.Recommendation, "Pertimbangkan untuk promosi") {
		t.Fatalf("unexpected rekomendasi: %s", promote.Recommendation)
	}

	// Faktor negatif disebut di teks rekomendasi NO_PROMOTE
	noPromote := Explain(Prediction{Label: LabelNoPromote}, []float64{0}, importance)
	if !strings.Contains(noPromote.Recommendation, "kpi_diatas_80") {
		t.Fatalf("expected faktor negatif disebut, got: %s", noPromote.Recommendation)
	}
}
