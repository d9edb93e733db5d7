package model

import "gorm.io/gorm"

const (
	RoleHR       = "HR"
	RoleKaryawan = "KARYAWAN"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:KARYAWAN"` // HR / KARYAWAN
}
