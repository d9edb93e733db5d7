package model

import (
	"time"

	"gorm.io/gorm"
)

// Status kehadiran harian
const (
	StatusHadir     = "HADIR"
	StatusTerlambat = "TERLAMBAT"
	StatusIzin      = "IZIN"
	StatusSakit     = "SAKIT"
	StatusAlpa      = "ALPA"
)

type Kehadiran struct {
	gorm.Model
	KaryawanID uint   `json:"karyawan_id" gorm:"uniqueIndex:idx_kehadiran_karyawan_tanggal"`
	Tanggal    string `json:"tanggal" gorm:"uniqueIndex:idx_kehadiran_karyawan_tanggal"` // Format YYYY-MM-DD

	Status      string     `json:"status"` // HADIR/TERLAMBAT/IZIN/SAKIT/ALPA
	WaktuMasuk  *time.Time `json:"waktu_masuk"`
	WaktuKeluar *time.Time `json:"waktu_keluar"`
	Lokasi      string     `json:"lokasi"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Keterangan  string     `json:"keterangan"`

	// Kolom bantu untuk rekap bulanan (ikut diisi saat create/upsert)
	Bulan string `json:"bulan"` // "01".."12"
	Tahun string `json:"tahun"` // "2024"
}
