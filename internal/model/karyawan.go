package model

import (
	"time"

	"gorm.io/gorm"
)

type Karyawan struct {
	gorm.Model
	UserID       uint       `json:"user_id"`
	Nama         string     `json:"nama" gorm:"not null"`
	Gender       string     `json:"gender"` // Pria / Wanita
	TanggalLahir *time.Time `json:"tanggal_lahir"`
	TanggalMasuk time.Time  `json:"tanggal_masuk"`
	Pendidikan   string     `json:"pendidikan"`   // Magister / Sarjana / Dibawah Keduanya
	JalurRekrut  string     `json:"jalur_rekrut"` // Wawancara / Undangan / lainnya

	// Relasi
	User            User              `json:"user" gorm:"foreignKey:UserID"`
	Departemen      []Departemen      `json:"departemen" gorm:"many2many:departemen_karyawan"`
	Jabatan         []Jabatan         `json:"jabatan" gorm:"many2many:jabatan_karyawan"`
	Kehadiran       []Kehadiran       `json:"kehadiran"`
	Kpi             []Kpi             `json:"kpi"`
	Rating          []Rating          `json:"rating"`
	PelatihanDetail []PelatihanDetail `json:"pelatihan_detail"`
	Penghargaan     []Penghargaan     `json:"penghargaan" gorm:"many2many:penghargaan_karyawan"`
}

type Rating struct {
	gorm.Model
	KaryawanID uint    `json:"karyawan_id"`
	Year       int     `json:"year"`
	Score      float64 `json:"score"`
}
