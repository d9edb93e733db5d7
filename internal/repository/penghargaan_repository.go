package repository

import (
	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type PenghargaanRepository interface {
	Create(penghargaan *model.Penghargaan) error
	GetAll(tahun int) ([]model.Penghargaan, error)
	GetByID(id uint) (*model.Penghargaan, error)
	Update(penghargaan *model.Penghargaan) error
	Delete(id uint) error
	AssignKaryawan(penghargaanID uint, karyawan *model.Karyawan) error
}

type penghargaanRepository struct {
	db *gorm.DB
}

func NewPenghargaanRepository(db *gorm.DB) PenghargaanRepository {
	return &penghargaanRepository{db}
}

func (r *penghargaanRepository) Create(penghargaan *model.Penghargaan) error {
	return r.db.Create(penghargaan).Error
}

func (r *penghargaanRepository) GetAll(tahun int) ([]model.Penghargaan, error) {
	var list []model.Penghargaan
	q := r.db.Preload("Karyawan").Order("tahun desc")
	if tahun > 0 {
		q = q.Where("tahun = ?", tahun)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *penghargaanRepository) GetByID(id uint) (*model.Penghargaan, error) {
	var penghargaan model.Penghargaan
	err := r.db.Preload("Karyawan").First(&penghargaan, id).Error
	if err != nil {
		return nil, err
	}
	return &penghargaan, nil
}

func (r *penghargaanRepository) Update(penghargaan *model.Penghargaan) error {
	return r.db.Save(penghargaan).Error
}

func (r *penghargaanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM penghargaan_karyawan WHERE penghargaan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Penghargaan{}, id).Error
	})
}

func (r *penghargaanRepository) AssignKaryawan(penghargaanID uint, karyawan *model.Karyawan) error {
	var penghargaan model.Penghargaan
	if err := r.db.First(&penghargaan, penghargaanID).Error; err != nil {
		return err
	}
	return r.db.Model(&penghargaan).Association("Karyawan").Append(karyawan)
}
