package promotion

import "testing"

func TestEncodeOrderAndValues(t *testing.T) {
	features := Features{
		Departemen:             "Technology",
		Pendidikan:             "Magister",
		Gender:                 "Wanita",
		JalurRekrut:            "Undangan",
		JumlahPelatihan:        4,
		Umur:                   30,
		LamaBekerja:            5,
		KpiDiatas80:            true,
		AdaPenghargaan:         false,
		RataRataScorePelatihan: 85.5,
	}

	want := []float64{3, 3, 2, 2, 4, 30, 5, 1, 0, 85.5}
	got := Encode(features)
	if len(got) != len(want) {
		t.Fatalf("expected %d nilai, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d (%s): expected %v, got %v", i, featureNames[i], want[i], got[i])
		}
	}
}

func TestEncodeUnknownCategories(t *testing.T) {
	got := Encode(Features{
		Departemen:  "Divisi Misterius",
		Pendidikan:  "",
		Gender:      "?",
		JalurRekrut: "jalur belakang",
	})
	for i := 0; i < 4; i++ {
		if got[i] != 0 {
			t.Fatalf("expected kategori tak dikenal di-encode 0, index %d got %v", i, got[i])
		}
	}
}

func TestFeatureNamesCopy(t *testing.T) {
	names := FeatureNames()
	names[0] = "diubah"
	if featureNames[0] == "diubah" {
		t.Fatalf("FeatureNames harus mengembalikan salinan")
	}
}

func TestValidateFeatureNames(t *testing.T) {
	if err := ValidateFeatureNames(FeatureNames()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateFeatureNames([]string{"umur"}); err == nil {
		t.Fatalf("expected error untuk jumlah fitur beda")
	}

	swapped := FeatureNames()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if err := ValidateFeatureNames(swapped); err == nil {
		t.Fatalf("expected error untuk urutan fitur beda")
	}
}
