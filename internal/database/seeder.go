package database

import (
	"log"
	"time"

	"hris-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Departemen
	departemen := []model.Departemen{
		{Nama: "Sales & Marketing"},
		{Nama: "Customer Service"},
		{Nama: "Technology"},
		{Nama: "Finance"},
		{Nama: "Operations"},
		{Nama: "HR"},
		{Nama: "Procurement"},
		{Nama: "Business Development"},
		{Nama: "Legal"},
	}
	for _, d := range departemen {
		db.FirstOrCreate(&d, model.Departemen{Nama: d.Nama})
	}

	// 2. Seed Jabatan
	jabatan := []model.Jabatan{
		{Nama: "Staf"},
		{Nama: "Supervisor"},
		{Nama: "Manager"},
	}
	for _, j := range jabatan {
		db.FirstOrCreate(&j, model.Jabatan{Nama: j.Nama})
	}

	// 3. Seed Indikator KPI bawaan
	indikator := []model.KpiIndicator{
		{Nama: "Kedisiplinan", Deskripsi: "Ketaatan terhadap aturan kerja", Bobot: 0.3},
		{Nama: "Kualitas Kerja", Deskripsi: "Mutu hasil pekerjaan", Bobot: 0.4},
		{Nama: "Kerja Sama", Deskripsi: "Kolaborasi dengan rekan kerja", Bobot: 0.3},
	}
	for _, ind := range indikator {
		db.FirstOrCreate(&ind, model.KpiIndicator{Nama: ind.Nama})
	}

	// 4. Seed akun HR pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	adminUser := model.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		Role:     model.RoleHR,
	}
	result := db.FirstOrCreate(&adminUser, model.User{Username: adminUser.Username})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "admin123"
		db.Model(&adminUser).Update("password", string(hashedPassword))
		log.Println("Seeding akun HR berhasil!")
	}

	// 5. Seed satu karyawan contoh beserta akunnya
	karyawanUser := model.User{
		Username: "budi",
		Email:    "budi@example.com",
		Password: string(hashedPassword),
		Role:     model.RoleKaryawan,
	}
	db.FirstOrCreate(&karyawanUser, model.User{Username: karyawanUser.Username})

	lahir := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	karyawan := model.Karyawan{
		UserID:       karyawanUser.ID,
		Nama:         "Budi Santoso",
		Gender:       "Pria",
		TanggalLahir: &lahir,
		TanggalMasuk: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
		Pendidikan:   "Sarjana",
		JalurRekrut:  "Wawancara",
	}
	db.FirstOrCreate(&karyawan, model.Karyawan{UserID: karyawanUser.ID})

	var tech model.Departemen
	if err := db.Where("nama = ?", "Technology").First(&tech).Error; err == nil {
		db.Model(&karyawan).Association("Departemen").Append(&tech)
	}

	log.Println("Seeding selesai!")
}
