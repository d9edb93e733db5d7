package repository

import (
	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type KaryawanRepository interface {
	Create(karyawan *model.Karyawan) error
	GetAll() ([]model.Karyawan, error)
	GetByID(id uint) (*model.Karyawan, error)
	GetByUserID(userID uint) (*model.Karyawan, error)
	GetAllIDs() ([]uint, error)
	GetIDsByDepartemen(departemenID uint) ([]uint, error)
	GetForFeatures(id uint, year int) (*model.Karyawan, error)
	GetAllForFeatures(year int) ([]model.Karyawan, error)
	Update(karyawan *model.Karyawan) error
	Delete(id uint) error
}

type karyawanRepository struct {
	db *gorm.DB
}

func NewKaryawanRepository(db *gorm.DB) KaryawanRepository {
	return &karyawanRepository{db}
}

func (r *karyawanRepository) Create(karyawan *model.Karyawan) error {
	return r.db.Create(karyawan).Error
}

func (r *karyawanRepository) GetAll() ([]model.Karyawan, error) {
	var list []model.Karyawan
	err := r.db.Preload("Departemen").Preload("Jabatan").Preload("User").Find(&list).Error
	return list, err
}

func (r *karyawanRepository) GetByID(id uint) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.Preload("Departemen").Preload("Jabatan").Preload("User").First(&karyawan, id).Error
	if err != nil {
		return nil, err
	}
	return &karyawan, nil
}

func (r *karyawanRepository) GetByUserID(userID uint) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.Where("user_id = ?", userID).First(&karyawan).Error
	if err != nil {
		return nil, err
	}
	return &karyawan, nil
}

func (r *karyawanRepository) GetAllIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Karyawan{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *karyawanRepository) GetIDsByDepartemen(departemenID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("departemen_karyawan").
		Where("departemen_id = ?", departemenID).
		Pluck("karyawan_id", &ids).Error
	return ids, err
}

// GetForFeatures memuat karyawan beserta relasi yang dibutuhkan ekstraksi fitur:
// departemen, KPI tahunan, penghargaan tahun target, dan seluruh detail pelatihan.
func (r *karyawanRepository) GetForFeatures(id uint, year int) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.
		Preload("Departemen").
		Preload("Kpi", "year = ?", year).
		Preload("Penghargaan", "tahun = ?", year).
		Preload("PelatihanDetail.Pelatihan").
		First(&karyawan, id).Error
	if err != nil {
		return nil, err
	}
	return &karyawan, nil
}

func (r *karyawanRepository) GetAllForFeatures(year int) ([]model.Karyawan, error) {
	var list []model.Karyawan
	err := r.db.
		Preload("Departemen").
		Preload("Kpi", "year = ?", year).
		Preload("Penghargaan", "tahun = ?", year).
		Preload("PelatihanDetail.Pelatihan").
		Find(&list).Error
	return list, err
}

func (r *karyawanRepository) Update(karyawan *model.Karyawan) error {
	return r.db.Save(karyawan).Error
}

// Delete menghapus karyawan beserta seluruh record turunannya dalam satu
// transaksi, supaya tidak ada sisa record yatim.
func (r *karyawanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var kpiIDs []uint
		if err := tx.Model(&model.Kpi{}).Where("karyawan_id = ?", id).Pluck("id", &kpiIDs).Error; err != nil {
			return err
		}
		if len(kpiIDs) > 0 {
			if err := tx.Where("kpi_id IN ?", kpiIDs).Delete(&model.KpiDetail{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("karyawan_id = ?", id).Delete(&model.Kpi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("karyawan_id = ?", id).Delete(&model.Kehadiran{}).Error; err != nil {
			return err
		}
		if err := tx.Where("karyawan_id = ?", id).Delete(&model.PelatihanDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("karyawan_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("karyawan_id = ?", id).Delete(&model.IzinRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM penghargaan_karyawan WHERE karyawan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM departemen_karyawan WHERE karyawan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM jabatan_karyawan WHERE karyawan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Karyawan{}, id).Error
	})
}
