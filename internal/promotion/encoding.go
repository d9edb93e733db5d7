package promotion

import "fmt"

// Tabel encoding kategorikal. Nilai yang tidak dikenal di-encode 0.
var (
	departemenEncoding = map[string]int{
		"Sales & Marketing": 1,
		"Operations":        2,
		"Technology":        3,
		"Analytics":         4,
		"R&D":               5,
		"Procurement":       6,
		"Finance":           7,
		"HR":                8,
		"Legal":             9,
	}
	pendidikanEncoding = map[string]int{
		"Magister":         3,
		"Sarjana":          2,
		"Dibawah Keduanya": 1,
	}
	jalurRekrutEncoding = map[string]int{
		"Wawancara": 1,
		"Undangan":  2,
		"lainnya":   3,
	}
	genderEncoding = map[string]int{
		"Pria":   1,
		"Wanita": 2,
	}
)

// featureNames adalah urutan kolom yang dipakai training; urutan vektor hasil
// Encode harus selalu konsisten dengan ini.
var featureNames = []string{
	"departemen",
	"pendidikan",
	"gender",
	"jalur_rekrut",
	"jumlah_pelatihan",
	"umur",
	"lama_bekerja",
	"kpi_diatas_80",
	"penghargaan",
	"rata_rata_score_pelatihan",
}

// FeatureNames mengembalikan salinan urutan fitur kanonik.
func FeatureNames() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return names
}

// Encode membangun vektor numerik dari Features dengan urutan featureNames.
func Encode(f Features) []float64 {
	boolToFloat := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}
	return []float64{
		float64(departemenEncoding[f.Departemen]),
		float64(pendidikanEncoding[f.Pendidikan]),
		float64(genderEncoding[f.Gender]),
		float64(jalurRekrutEncoding[f.JalurRekrut]),
		float64(f.JumlahPelatihan),
		float64(f.Umur),
		float64(f.LamaBekerja),
		boolToFloat(f.KpiDiatas80),
		boolToFloat(f.AdaPenghargaan),
		f.RataRataScorePelatihan,
	}
}

// ValidateFeatureNames memastikan urutan fitur model yang diload sama dengan
// urutan encoding di binary ini. Mismatch adalah salah konfigurasi yang harus
// ketahuan saat load, bukan diam-diam menghasilkan vektor nol.
func ValidateFeatureNames(names []string) error {
	if len(names) != len(featureNames) {
		return fmt.Errorf("model expects %d features, encoder provides %d", len(names), len(featureNames))
	}
	for i, name := range names {
		if name != featureNames[i] {
			return fmt.Errorf("feature order mismatch at index %d: model %q, encoder %q", i, name, featureNames[i])
		}
	}
	return nil
}
