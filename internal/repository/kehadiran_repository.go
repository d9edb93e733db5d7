package repository

import (
	"fmt"

	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type KehadiranRepository interface {
	Create(kehadiran *model.Kehadiran) error
	Update(kehadiran *model.Kehadiran) error
	GetByDate(karyawanID uint, tanggal string) (*model.Kehadiran, error)
	GetByMonth(karyawanID uint, year, month int) ([]model.Kehadiran, error)
	GetHistory(karyawanID uint) ([]model.Kehadiran, error)
	CountByStatusInMonth(year, month int) (map[string]int64, error)
}

type kehadiranRepository struct {
	db *gorm.DB
}

func NewKehadiranRepository(db *gorm.DB) KehadiranRepository {
	return &kehadiranRepository{db}
}

func (r *kehadiranRepository) Create(kehadiran *model.Kehadiran) error {
	return r.db.Create(kehadiran).Error
}

func (r *kehadiranRepository) Update(kehadiran *model.Kehadiran) error {
	return r.db.Save(kehadiran).Error
}

func (r *kehadiranRepository) GetByDate(karyawanID uint, tanggal string) (*model.Kehadiran, error) {
	var kehadiran model.Kehadiran
	err := r.db.Where("karyawan_id = ? AND tanggal = ?", karyawanID, tanggal).First(&kehadiran).Error
	if err != nil {
		return nil, err
	}
	return &kehadiran, nil
}

func (r *kehadiranRepository) GetByMonth(karyawanID uint, year, month int) ([]model.Kehadiran, error) {
	var list []model.Kehadiran
	err := r.db.Where("karyawan_id = ? AND tahun = ? AND bulan = ?",
		karyawanID, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)).Find(&list).Error
	return list, err
}

func (r *kehadiranRepository) GetHistory(karyawanID uint) ([]model.Kehadiran, error) {
	var list []model.Kehadiran
	err := r.db.Where("karyawan_id = ?", karyawanID).Order("tanggal desc").Find(&list).Error
	return list, err
}

func (r *kehadiranRepository) CountByStatusInMonth(year, month int) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.Kehadiran{}).
		Where("tahun = ? AND bulan = ?", fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)).
		Group("status").Select("status, count(*) as count").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// upsertKehadiran membuat record kehadiran untuk (karyawan, tanggal) atau
// menimpa statusnya jika sudah ada. Waktu masuk/keluar yang sudah terisi tidak
// disentuh. Menerima *gorm.DB supaya bisa dipakai di dalam maupun di luar
// transaksi.
func upsertKehadiran(db *gorm.DB, kehadiran *model.Kehadiran) error {
	var existing model.Kehadiran
	err := db.Where("karyawan_id = ? AND tanggal = ?", kehadiran.KaryawanID, kehadiran.Tanggal).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(kehadiran).Error
	}
	if err != nil {
		return err
	}
	existing.Status = kehadiran.Status
	if kehadiran.Keterangan != "" {
		existing.Keterangan = kehadiran.Keterangan
	}
	return db.Save(&existing).Error
}
