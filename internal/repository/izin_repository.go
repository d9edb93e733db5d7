package repository

import (
	"time"

	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type IzinRepository interface {
	Create(izin *model.IzinRequest) error
	GetByID(id uint) (*model.IzinRequest, error)
	GetByKaryawan(karyawanID uint) ([]model.IzinRequest, error)
	GetAll(status string) ([]model.IzinRequest, error)
	// Decide menyimpan keputusan HR dan, bila disetujui, membuat/menimpa
	// record kehadiran untuk tanggal izin dalam transaksi yang sama.
	Decide(izin *model.IzinRequest, status, decidedBy string) error
}

type izinRepository struct {
	db *gorm.DB
}

func NewIzinRepository(db *gorm.DB) IzinRepository {
	return &izinRepository{db}
}

func (r *izinRepository) Create(izin *model.IzinRequest) error {
	return r.db.Create(izin).Error
}

func (r *izinRepository) GetByID(id uint) (*model.IzinRequest, error) {
	var izin model.IzinRequest
	err := r.db.First(&izin, id).Error
	if err != nil {
		return nil, err
	}
	return &izin, nil
}

func (r *izinRepository) GetByKaryawan(karyawanID uint) ([]model.IzinRequest, error) {
	var list []model.IzinRequest
	err := r.db.Where("karyawan_id = ?", karyawanID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *izinRepository) GetAll(status string) ([]model.IzinRequest, error) {
	var list []model.IzinRequest
	q := r.db.Preload("Karyawan").Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *izinRepository) Decide(izin *model.IzinRequest, status, decidedBy string) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		izin.Status = status
		izin.ApprovedBy = decidedBy
		izin.ApprovedAt = &now
		if err := tx.Save(izin).Error; err != nil {
			return err
		}
		if status != model.IzinApproved {
			return nil
		}

		// Materialisasi kehadiran untuk tanggal izin
		statusKehadiran := model.StatusIzin
		if izin.Jenis == "SAKIT" {
			statusKehadiran = model.StatusSakit
		}
		tanggal, err := time.Parse("2006-01-02", izin.Tanggal)
		if err != nil {
			return err
		}

		return upsertKehadiran(tx, &model.Kehadiran{
			KaryawanID: izin.KaryawanID,
			Tanggal:    izin.Tanggal,
			Status:     statusKehadiran,
			Keterangan: izin.Keterangan,
			Bulan:      tanggal.Format("01"),
			Tahun:      tanggal.Format("2006"),
		})
	})
}
