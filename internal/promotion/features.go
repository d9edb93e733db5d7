package promotion

// Features adalah vektor fitur satu karyawan untuk satu tahun target.
// Atribut kategorikal dibiarkan sebagai string di layer ini; encoding ke
// angka baru terjadi saat prediksi.
type Features struct {
	KaryawanID             uint    `json:"karyawan_id"`
	Nama                   string  `json:"nama"`
	Departemen             string  `json:"departemen"`
	Pendidikan             string  `json:"pendidikan"`
	Gender                 string  `json:"gender"`
	JalurRekrut            string  `json:"jalur_rekrut"`
	JumlahPelatihan        int     `json:"jumlah_pelatihan"`
	Umur                   int     `json:"umur"`
	LamaBekerja            int     `json:"lama_bekerja"`
	KpiDiatas80            bool    `json:"kpi_diatas_80"`
	AdaPenghargaan         bool    `json:"penghargaan"`
	RataRataScorePelatihan float64 `json:"rata_rata_score_pelatihan"`
}
