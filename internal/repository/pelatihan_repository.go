package repository

import (
	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type PelatihanRepository interface {
	Create(pelatihan *model.Pelatihan) error
	GetAll() ([]model.Pelatihan, error)
	GetByID(id uint) (*model.Pelatihan, error)
	Update(pelatihan *model.Pelatihan) error
	Delete(id uint) error

	AddPeserta(detail *model.PelatihanDetail) error
	UpdatePeserta(detail *model.PelatihanDetail) error
	GetPesertaByID(id uint) (*model.PelatihanDetail, error)
	GetDetailsByKaryawan(karyawanID uint) ([]model.PelatihanDetail, error)
}

type pelatihanRepository struct {
	db *gorm.DB
}

func NewPelatihanRepository(db *gorm.DB) PelatihanRepository {
	return &pelatihanRepository{db}
}

func (r *pelatihanRepository) Create(pelatihan *model.Pelatihan) error {
	return r.db.Create(pelatihan).Error
}

func (r *pelatihanRepository) GetAll() ([]model.Pelatihan, error) {
	var list []model.Pelatihan
	err := r.db.Preload("Peserta").Order("tanggal desc").Find(&list).Error
	return list, err
}

func (r *pelatihanRepository) GetByID(id uint) (*model.Pelatihan, error) {
	var pelatihan model.Pelatihan
	err := r.db.Preload("Peserta").First(&pelatihan, id).Error
	if err != nil {
		return nil, err
	}
	return &pelatihan, nil
}

func (r *pelatihanRepository) Update(pelatihan *model.Pelatihan) error {
	return r.db.Save(pelatihan).Error
}

func (r *pelatihanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pelatihan_id = ?", id).Delete(&model.PelatihanDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pelatihan{}, id).Error
	})
}

func (r *pelatihanRepository) AddPeserta(detail *model.PelatihanDetail) error {
	return r.db.Create(detail).Error
}

func (r *pelatihanRepository) UpdatePeserta(detail *model.PelatihanDetail) error {
	return r.db.Save(detail).Error
}

func (r *pelatihanRepository) GetPesertaByID(id uint) (*model.PelatihanDetail, error) {
	var detail model.PelatihanDetail
	err := r.db.Preload("Pelatihan").First(&detail, id).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetDetailsByKaryawan memuat seluruh keikutsertaan pelatihan seorang karyawan
// beserta sesi pelatihannya. Filter periode dilakukan di layer KPI karena
// periode bisa eksplisit atau ikut tanggal sesi.
func (r *pelatihanRepository) GetDetailsByKaryawan(karyawanID uint) ([]model.PelatihanDetail, error) {
	var list []model.PelatihanDetail
	err := r.db.Preload("Pelatihan").Where("karyawan_id = ?", karyawanID).Find(&list).Error
	return list, err
}
