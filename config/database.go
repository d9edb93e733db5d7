package config

import (
	"fmt"

	"hris-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DATABASE_DSN",
		"root:@tcp(127.0.0.1:3306)/hris_db?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(
		&model.User{},
		&model.Karyawan{},
		&model.Departemen{},
		&model.Jabatan{},
		&model.Kehadiran{},
		&model.KpiIndicator{},
		&model.Kpi{},
		&model.KpiDetail{},
		&model.Pelatihan{},
		&model.PelatihanDetail{},
		&model.Penghargaan{},
		&model.IzinRequest{},
		&model.Rating{},
		&model.ModelVersion{},
		&model.FeatureSnapshot{},
		&model.PromotionRecommendation{},
	)

	DB = db
}
