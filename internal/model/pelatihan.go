package model

import (
	"time"

	"gorm.io/gorm"
)

type Pelatihan struct {
	gorm.Model
	Nama    string    `json:"nama" gorm:"not null"`
	Tanggal time.Time `json:"tanggal"`
	Lokasi  string    `json:"lokasi"`

	Peserta []PelatihanDetail `json:"peserta" gorm:"foreignKey:PelatihanID"`
}

type PelatihanDetail struct {
	gorm.Model
	KaryawanID  uint     `json:"karyawan_id"`
	PelatihanID uint     `json:"pelatihan_id"`
	Skor        *float64 `json:"skor"` // 0-100, nil jika belum dinilai

	// Periode eksplisit; 0 berarti ikut tanggal pelaksanaan pelatihan
	PeriodeYear  int `json:"periode_year"`
	PeriodeMonth int `json:"periode_month"`

	Pelatihan Pelatihan `json:"pelatihan" gorm:"foreignKey:PelatihanID"`
}
