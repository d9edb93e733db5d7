package promotion

import (
	"fmt"
	"sort"
	"strings"
)

type KeyFactor struct {
	Feature    string  `json:"feature"`
	Value      float64 `json:"value"`
	Importance float64 `json:"importance"`
	Impact     string  `json:"impact"` // positive / negative
}

type Explanation struct {
	Summary        string      `json:"summary"`
	Confidence     float64     `json:"confidence"`
	KeyFactors     []KeyFactor `json:"key_factors"`
	Recommendation string      `json:"recommendation"`
}

// Explain merangking fitur berdasarkan importance dan menyusun alasan yang
// bisa dibaca manusia. Maksimal tiga faktor teratas yang importance-nya
// melewati ambang 0.1 yang dilaporkan.
func Explain(pred Prediction, vector []float64, importance []FeatureImportance) Explanation {
	ranked := make([]KeyFactor, 0, len(importance))
	for i, imp := range importance {
		value := 0.0
		if i < len(vector) {
			value = vector[i]
		}
		ranked = append(ranked, KeyFactor{
			Feature:    imp.Feature,
			Value:      value,
			Importance: imp.Importance,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	factors := make([]KeyFactor, 0, 3)
	for _, f := range ranked {
		if len(factors) == 3 {
			break
		}
		if f.Importance <= 0.1 {
			continue
		}
		f.Impact = "negative"
		if f.Value*f.Importance > 0 {
			f.Impact = "positive"
		}
		factors = append(factors, f)
	}

	summary := "Karyawan perlu peningkatan kinerja untuk promosi"
	if pred.Label == LabelPromote {
		summary = "Karyawan memiliki potensi tinggi untuk promosi"
	}

	return Explanation{
		Summary:        summary,
		Confidence:     pred.Confidence,
		KeyFactors:     factors,
		Recommendation: recommendationText(pred, factors),
	}
}

func recommendationText(pred Prediction, factors []KeyFactor) string {
	if pred.Label == LabelPromote {
		return "Rekomendasi: Pertimbangkan untuk promosi. Karyawan menunjukkan performa yang baik."
	}
	var areas []string
	for _, f := range factors {
		if f.Impact == "negative" {
			areas = append(areas, f.Feature)
		}
	}
	return fmt.Sprintf("Rekomendasi: Fokus pada peningkatan %s sebelum pertimbangan promosi.",
		strings.Join(areas, ", "))
}
