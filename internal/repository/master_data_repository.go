package repository

import (
	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type MasterDataRepository interface {
	CreateDepartemen(departemen *model.Departemen) error
	GetAllDepartemen() ([]model.Departemen, error)
	GetDepartemenByID(id uint) (*model.Departemen, error)
	UpdateDepartemen(departemen *model.Departemen) error
	DeleteDepartemen(id uint) error
	AssignKaryawanToDepartemen(departemenID uint, karyawan *model.Karyawan) error

	CreateJabatan(jabatan *model.Jabatan) error
	GetAllJabatan() ([]model.Jabatan, error)
	GetJabatanByID(id uint) (*model.Jabatan, error)
	UpdateJabatan(jabatan *model.Jabatan) error
	DeleteJabatan(id uint) error
	AssignKaryawanToJabatan(jabatanID uint, karyawan *model.Karyawan) error
}

type masterDataRepository struct {
	db *gorm.DB
}

func NewMasterDataRepository(db *gorm.DB) MasterDataRepository {
	return &masterDataRepository{db}
}

func (r *masterDataRepository) CreateDepartemen(departemen *model.Departemen) error {
	return r.db.Create(departemen).Error
}

func (r *masterDataRepository) GetAllDepartemen() ([]model.Departemen, error) {
	var list []model.Departemen
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *masterDataRepository) GetDepartemenByID(id uint) (*model.Departemen, error) {
	var departemen model.Departemen
	err := r.db.First(&departemen, id).Error
	if err != nil {
		return nil, err
	}
	return &departemen, nil
}

func (r *masterDataRepository) UpdateDepartemen(departemen *model.Departemen) error {
	return r.db.Save(departemen).Error
}

func (r *masterDataRepository) DeleteDepartemen(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM departemen_karyawan WHERE departemen_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Departemen{}, id).Error
	})
}

func (r *masterDataRepository) AssignKaryawanToDepartemen(departemenID uint, karyawan *model.Karyawan) error {
	var departemen model.Departemen
	if err := r.db.First(&departemen, departemenID).Error; err != nil {
		return err
	}
	return r.db.Model(karyawan).Association("Departemen").Append(&departemen)
}

func (r *masterDataRepository) CreateJabatan(jabatan *model.Jabatan) error {
	return r.db.Create(jabatan).Error
}

func (r *masterDataRepository) GetAllJabatan() ([]model.Jabatan, error) {
	var list []model.Jabatan
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *masterDataRepository) GetJabatanByID(id uint) (*model.Jabatan, error) {
	var jabatan model.Jabatan
	err := r.db.First(&jabatan, id).Error
	if err != nil {
		return nil, err
	}
	return &jabatan, nil
}

func (r *masterDataRepository) UpdateJabatan(jabatan *model.Jabatan) error {
	return r.db.Save(jabatan).Error
}

func (r *masterDataRepository) DeleteJabatan(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM jabatan_karyawan WHERE jabatan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Jabatan{}, id).Error
	})
}

func (r *masterDataRepository) AssignKaryawanToJabatan(jabatanID uint, karyawan *model.Karyawan) error {
	var jabatan model.Jabatan
	if err := r.db.First(&jabatan, jabatanID).Error; err != nil {
		return err
	}
	return r.db.Model(karyawan).Association("Jabatan").Append(&jabatan)
}
