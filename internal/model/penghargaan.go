package model

import "gorm.io/gorm"

type Penghargaan struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"not null"`
	Tahun     int    `json:"tahun"`
	Deskripsi string `json:"deskripsi"`

	Karyawan []Karyawan `json:"karyawan" gorm:"many2many:penghargaan_karyawan"`
}
