package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	IzinPending  = "PENDING"
	IzinApproved = "APPROVED"
	IzinRejected = "REJECTED"
)

// IzinRequest adalah pengajuan IZIN/SAKIT dari karyawan. Saat disetujui HR,
// record Kehadiran untuk tanggal tersebut dibuat/ditimpa dengan status sesuai jenis.
type IzinRequest struct {
	gorm.Model
	KaryawanID uint       `json:"karyawan_id"`
	Tanggal    string     `json:"tanggal"` // Format YYYY-MM-DD
	Jenis      string     `json:"jenis"`   // IZIN / SAKIT
	Keterangan string     `json:"keterangan"`
	FileURL    string     `json:"file_url"`
	Status     string     `json:"status" gorm:"default:PENDING"`
	ApprovedBy string     `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`

	Karyawan Karyawan `json:"karyawan" gorm:"foreignKey:KaryawanID"`
}
