package model

import "gorm.io/gorm"

type Departemen struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"unique;not null"`
	Deskripsi string `json:"deskripsi"`
}

type Jabatan struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"unique;not null"`
	Deskripsi string `json:"deskripsi"`
}
