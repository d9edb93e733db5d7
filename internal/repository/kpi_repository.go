package repository

import (
	"hris-backend/internal/model"

	"gorm.io/gorm"
)

type KpiRepository interface {
	// Indikator
	CreateIndicator(ind *model.KpiIndicator) error
	GetIndicators(departemenID *uint) ([]model.KpiIndicator, error)
	GetIndicatorByID(id uint) (*model.KpiIndicator, error)
	UpdateIndicator(ind *model.KpiIndicator) error
	DeleteIndicator(id uint) error
	CountDetailsByIndicator(indikatorID uint) (int64, error)

	// KPI tahunan + detail
	GetAll(year int, karyawanID uint) ([]model.Kpi, error)
	GetByID(id uint) (*model.Kpi, error)
	GetByKaryawanYear(karyawanID uint, year int) (*model.Kpi, error)
	GetByKaryawan(karyawanID uint) ([]model.Kpi, error)
	CreateWithDetails(kpi *model.Kpi, details []model.KpiDetail) error
	ReplaceDetails(kpiID uint, year int, details []model.KpiDetail) error
	DeleteWithDetails(kpiID uint) error

	AddDetail(detail *model.KpiDetail) error
	UpdateDetail(detail *model.KpiDetail) error
	DeleteDetail(detailID string) error
	GetDetailByID(detailID string) (*model.KpiDetail, error)
	GetDetailsByPeriode(karyawanID uint, year, month int) ([]model.KpiDetail, error)
	GetDetailPeriods(karyawanID uint) ([]Periode, error)

	// Rating (read-only, warisan data lama)
	GetAllRatings() ([]model.Rating, error)
	GetRatingsByKaryawan(karyawanID uint) ([]model.Rating, error)
}

type kpiRepository struct {
	db *gorm.DB
}

func NewKpiRepository(db *gorm.DB) KpiRepository {
	return &kpiRepository{db}
}

func (r *kpiRepository) CreateIndicator(ind *model.KpiIndicator) error {
	return r.db.Create(ind).Error
}

func (r *kpiRepository) GetIndicators(departemenID *uint) ([]model.KpiIndicator, error) {
	var list []model.KpiIndicator
	q := r.db.Order("created_at desc")
	if departemenID != nil {
		q = q.Where("departemen_id = ?", *departemenID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *kpiRepository) GetIndicatorByID(id uint) (*model.KpiIndicator, error) {
	var ind model.KpiIndicator
	err := r.db.First(&ind, id).Error
	if err != nil {
		return nil, err
	}
	return &ind, nil
}

func (r *kpiRepository) UpdateIndicator(ind *model.KpiIndicator) error {
	return r.db.Save(ind).Error
}

func (r *kpiRepository) DeleteIndicator(id uint) error {
	return r.db.Delete(&model.KpiIndicator{}, id).Error
}

func (r *kpiRepository) CountDetailsByIndicator(indikatorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.KpiDetail{}).Where("indikator_id = ?", indikatorID).Count(&count).Error
	return count, err
}

func (r *kpiRepository) GetAll(year int, karyawanID uint) ([]model.Kpi, error) {
	var list []model.Kpi
	q := r.db.Preload("KpiDetails.Indikator").Order("year desc")
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	if karyawanID > 0 {
		q = q.Where("karyawan_id = ?", karyawanID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *kpiRepository) GetByID(id uint) (*model.Kpi, error) {
	var kpi model.Kpi
	err := r.db.Preload("KpiDetails.Indikator").First(&kpi, id).Error
	if err != nil {
		return nil, err
	}
	return &kpi, nil
}

func (r *kpiRepository) GetByKaryawanYear(karyawanID uint, year int) (*model.Kpi, error) {
	var kpi model.Kpi
	err := r.db.Where("karyawan_id = ? AND year = ?", karyawanID, year).First(&kpi).Error
	if err != nil {
		return nil, err
	}
	return &kpi, nil
}

func (r *kpiRepository) GetByKaryawan(karyawanID uint) ([]model.Kpi, error) {
	var list []model.Kpi
	err := r.db.Preload("KpiDetails.Indikator").
		Where("karyawan_id = ?", karyawanID).Order("year desc").Find(&list).Error
	return list, err
}

func (r *kpiRepository) CreateWithDetails(kpi *model.Kpi, details []model.KpiDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(kpi).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].KpiID = kpi.ID
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		return recomputeScore(tx, kpi.ID)
	})
}

// ReplaceDetails mengganti seluruh detail sebuah KPI (hapus semua, buat ulang)
// dalam satu transaksi. Gagal di tengah berarti state lama tetap utuh.
func (r *kpiRepository) ReplaceDetails(kpiID uint, year int, details []model.KpiDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if year > 0 {
			if err := tx.Model(&model.Kpi{}).Where("id = ?", kpiID).Update("year", year).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("kpi_id = ?", kpiID).Delete(&model.KpiDetail{}).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].KpiID = kpiID
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		return recomputeScore(tx, kpiID)
	})
}

func (r *kpiRepository) DeleteWithDetails(kpiID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kpi_id = ?", kpiID).Delete(&model.KpiDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Kpi{}, kpiID).Error
	})
}

func (r *kpiRepository) AddDetail(detail *model.KpiDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		return recomputeScore(tx, detail.KpiID)
	})
}

func (r *kpiRepository) UpdateDetail(detail *model.KpiDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(detail).Error; err != nil {
			return err
		}
		return recomputeScore(tx, detail.KpiID)
	})
}

func (r *kpiRepository) DeleteDetail(detailID string) error {
	var detail model.KpiDetail
	if err := r.db.First(&detail, "id = ?", detailID).Error; err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.KpiDetail{}, "id = ?", detailID).Error; err != nil {
			return err
		}
		return recomputeScore(tx, detail.KpiID)
	})
}

func (r *kpiRepository) GetDetailByID(detailID string) (*model.KpiDetail, error) {
	var detail model.KpiDetail
	err := r.db.Preload("Indikator").First(&detail, "id = ?", detailID).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetDetailsByPeriode mengambil seluruh detail KPI milik satu karyawan pada
// satu periode (tahun, bulan), lengkap dengan indikatornya.
func (r *kpiRepository) GetDetailsByPeriode(karyawanID uint, year, month int) ([]model.KpiDetail, error) {
	var list []model.KpiDetail
	err := r.db.Preload("Indikator").
		Joins("JOIN kpis ON kpis.id = kpi_details.kpi_id").
		Where("kpis.karyawan_id = ? AND kpi_details.periode_year = ? AND kpi_details.periode_month = ?",
			karyawanID, year, month).
		Find(&list).Error
	return list, err
}

// Periode adalah pasangan tahun-bulan yang punya detail KPI.
type Periode struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *kpiRepository) GetDetailPeriods(karyawanID uint) ([]Periode, error) {
	var periods []Periode
	err := r.db.Model(&model.KpiDetail{}).
		Joins("JOIN kpis ON kpis.id = kpi_details.kpi_id").
		Where("kpis.karyawan_id = ?", karyawanID).
		Select("DISTINCT kpi_details.periode_year as year, kpi_details.periode_month as month").
		Order("year desc, month desc").
		Scan(&periods).Error
	return periods, err
}

func (r *kpiRepository) GetAllRatings() ([]model.Rating, error) {
	var list []model.Rating
	err := r.db.Order("year desc").Find(&list).Error
	return list, err
}

func (r *kpiRepository) GetRatingsByKaryawan(karyawanID uint) ([]model.Rating, error) {
	var list []model.Rating
	err := r.db.Where("karyawan_id = ?", karyawanID).Order("year desc").Find(&list).Error
	return list, err
}

// recomputeScore menjumlah ulang score seluruh detail menjadi cache Kpi.Score.
func recomputeScore(tx *gorm.DB, kpiID uint) error {
	var details []model.KpiDetail
	if err := tx.Where("kpi_id = ?", kpiID).Find(&details).Error; err != nil {
		return err
	}
	total := 0.0
	for _, d := range details {
		if d.Score != nil {
			total += *d.Score
		}
	}
	return tx.Model(&model.Kpi{}).Where("id = ?", kpiID).Update("score", total).Error
}
