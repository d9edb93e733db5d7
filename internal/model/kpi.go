package model

import (
	"time"

	"gorm.io/gorm"
)

// Nama indikator yang dihitung struktural dari kehadiran/pelatihan,
// bukan lewat tabel indikator generik.
const (
	IndikatorPresensi  = "presensi"
	IndikatorPelatihan = "pelatihan"
)

type KpiIndicator struct {
	gorm.Model
	Nama         string  `json:"nama" gorm:"not null"`
	Deskripsi    string  `json:"deskripsi"`
	Bobot        float64 `json:"bobot"` // 0..1
	DepartemenID *uint   `json:"departemen_id"`

	Departemen *Departemen `json:"departemen" gorm:"foreignKey:DepartemenID"`
}

// Kpi adalah rekap skor tahunan per karyawan. Score adalah cache penjumlahan
// score detail; perhitungan KPI final bulanan tidak membaca cache ini.
type Kpi struct {
	gorm.Model
	KaryawanID uint    `json:"karyawan_id" gorm:"uniqueIndex:idx_kpi_karyawan_year"`
	Year       int     `json:"year" gorm:"uniqueIndex:idx_kpi_karyawan_year"`
	Score      float64 `json:"score"`

	KpiDetails []KpiDetail `json:"kpi_details" gorm:"foreignKey:KpiID"`
}

type KpiDetail struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	KpiID        uint     `json:"kpi_id"`
	IndikatorID  uint     `json:"indikator_id"`
	Target       float64  `json:"target"`
	Realisasi    *float64 `json:"realisasi"`
	Score        *float64 `json:"score"` // (realisasi/target) * bobot * 100
	PeriodeYear  int      `json:"periode_year"`
	PeriodeMonth int      `json:"periode_month"`

	Indikator KpiIndicator `json:"indikator" gorm:"foreignKey:IndikatorID"`
}
