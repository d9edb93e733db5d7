package handler

import (
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type KpiHandler struct {
	repo         repository.KpiRepository
	karyawanRepo repository.KaryawanRepository
}

func NewKpiHandler(repo repository.KpiRepository, karyawanRepo repository.KaryawanRepository) *KpiHandler {
	return &KpiHandler{repo: repo, karyawanRepo: karyawanRepo}
}

// --- Indikator ---

type IndicatorRequest struct {
	Nama         string  `json:"nama" validate:"required"`
	Deskripsi    string  `json:"deskripsi"`
	Bobot        float64 `json:"bobot" validate:"gte=0,lte=1"`
	DepartemenID *uint   `json:"departemen_id"`
}

func (h *KpiHandler) CreateIndicator(c *fiber.Ctx) error {
	var req IndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama wajib diisi dan bobot harus di antara 0 dan 1"})
	}

	ind := model.KpiIndicator{
		Nama:         req.Nama,
		Deskripsi:    req.Deskripsi,
		Bobot:        req.Bobot,
		DepartemenID: req.DepartemenID,
	}
	if err := h.repo.CreateIndicator(&ind); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan indikator"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Indikator berhasil dibuat", "data": ind})
}

func (h *KpiHandler) GetIndicators(c *fiber.Ctx) error {
	var departemenID *uint
	if v := c.QueryInt("departemen_id", 0); v > 0 {
		id := uint(v)
		departemenID = &id
	}

	list, err := h.repo.GetIndicators(departemenID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil indikator"})
	}
	return c.JSON(fiber.Map{"message": "Daftar indikator", "data": list})
}

func (h *KpiHandler) UpdateIndicator(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	ind, err := h.repo.GetIndicatorByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Indikator tidak ditemukan"})
	}

	var req IndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama wajib diisi dan bobot harus di antara 0 dan 1"})
	}

	ind.Nama = req.Nama
	ind.Deskripsi = req.Deskripsi
	ind.Bobot = req.Bobot
	ind.DepartemenID = req.DepartemenID
	if err := h.repo.UpdateIndicator(ind); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui indikator"})
	}
	return c.JSON(fiber.Map{"message": "Indikator berhasil diperbarui", "data": ind})
}

func (h *KpiHandler) DeleteIndicator(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetIndicatorByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Indikator tidak ditemukan"})
	}

	// Indikator yang sudah dipakai detail KPI tidak boleh dihapus
	count, err := h.repo.CountDetailsByIndicator(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa pemakaian indikator"})
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator masih dipakai oleh detail KPI"})
	}

	if err := h.repo.DeleteIndicator(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus indikator"})
	}
	return c.JSON(fiber.Map{"message": "Indikator berhasil dihapus"})
}

// --- KPI tahunan + detail ---

type KpiDetailRequest struct {
	IndikatorID  uint     `json:"indikator_id" validate:"required"`
	Target       float64  `json:"target" validate:"gt=0"`
	Realisasi    *float64 `json:"realisasi"`
	PeriodeYear  int      `json:"periode_year"`
	PeriodeMonth int      `json:"periode_month"`
}

type KpiRequest struct {
	KaryawanID uint               `json:"karyawan_id" validate:"required"`
	Year       int                `json:"year" validate:"required"`
	Details    []KpiDetailRequest `json:"details"`
}

// buildDetails mengubah request menjadi record detail bersama skornya.
// Score = (realisasi / target) * bobot * 100, kosong bila realisasi belum ada.
func (h *KpiHandler) buildDetails(reqs []KpiDetailRequest) ([]model.KpiDetail, error) {
	details := make([]model.KpiDetail, 0, len(reqs))
	for _, d := range reqs {
		ind, err := h.repo.GetIndicatorByID(d.IndikatorID)
		if err != nil {
			return nil, err
		}
		detail := model.KpiDetail{
			ID:           uuid.New().String(),
			IndikatorID:  d.IndikatorID,
			Target:       d.Target,
			Realisasi:    d.Realisasi,
			PeriodeYear:  d.PeriodeYear,
			PeriodeMonth: d.PeriodeMonth,
		}
		if d.Realisasi != nil && d.Target > 0 {
			score := (*d.Realisasi / d.Target) * ind.Bobot * 100
			detail.Score = &score
		}
		details = append(details, detail)
	}
	return details, nil
}

func (h *KpiHandler) Create(c *fiber.Ctx) error {
	var req KpiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Karyawan dan tahun wajib diisi"})
	}
	if _, err := h.karyawanRepo.GetByID(req.KaryawanID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	if existing, _ := h.repo.GetByKaryawanYear(req.KaryawanID, req.Year); existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "KPI untuk karyawan dan tahun tersebut sudah ada"})
	}

	details, err := h.buildDetails(req.Details)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator tidak ditemukan"})
	}

	kpi := model.Kpi{KaryawanID: req.KaryawanID, Year: req.Year}
	if err := h.repo.CreateWithDetails(&kpi, details); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan KPI"})
	}

	created, err := h.repo.GetByID(kpi.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil KPI"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "KPI berhasil dibuat", "data": created})
}

func (h *KpiHandler) GetAll(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	karyawanID := uint(c.QueryInt("karyawan_id", 0))

	list, err := h.repo.GetAll(year, karyawanID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data KPI"})
	}
	return c.JSON(fiber.Map{"message": "Daftar KPI", "data": list})
}

func (h *KpiHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	kpi, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KPI tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Detail KPI", "data": kpi})
}

// Update mengganti tahun dan seluruh detail KPI sekaligus.
func (h *KpiHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KPI tidak ditemukan"})
	}

	var req struct {
		Year    int                `json:"year"`
		Details []KpiDetailRequest `json:"details"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	details, err := h.buildDetails(req.Details)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator tidak ditemukan"})
	}
	if err := h.repo.ReplaceDetails(uint(id), req.Year, details); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui KPI"})
	}

	updated, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil KPI"})
	}
	return c.JSON(fiber.Map{"message": "KPI berhasil diperbarui", "data": updated})
}

func (h *KpiHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KPI tidak ditemukan"})
	}
	if err := h.repo.DeleteWithDetails(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus KPI"})
	}
	return c.JSON(fiber.Map{"message": "KPI berhasil dihapus"})
}

func (h *KpiHandler) AddDetail(c *fiber.Ctx) error {
	kpiID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(kpiID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KPI tidak ditemukan"})
	}

	var req KpiDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator wajib diisi dan target harus lebih dari 0"})
	}

	details, err := h.buildDetails([]KpiDetailRequest{req})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator tidak ditemukan"})
	}
	detail := details[0]
	detail.KpiID = uint(kpiID)

	if err := h.repo.AddDetail(&detail); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah detail KPI"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Detail KPI berhasil ditambahkan", "data": detail})
}

func (h *KpiHandler) UpdateDetail(c *fiber.Ctx) error {
	detailID := c.Params("detailId")
	detail, err := h.repo.GetDetailByID(detailID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Detail KPI tidak ditemukan"})
	}

	var req KpiDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator wajib diisi dan target harus lebih dari 0"})
	}

	ind, err := h.repo.GetIndicatorByID(req.IndikatorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Indikator tidak ditemukan"})
	}

	detail.IndikatorID = req.IndikatorID
	detail.Target = req.Target
	detail.Realisasi = req.Realisasi
	detail.PeriodeYear = req.PeriodeYear
	detail.PeriodeMonth = req.PeriodeMonth
	detail.Score = nil
	if req.Realisasi != nil && req.Target > 0 {
		score := (*req.Realisasi / req.Target) * ind.Bobot * 100
		detail.Score = &score
	}

	if err := h.repo.UpdateDetail(detail); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui detail KPI"})
	}
	return c.JSON(fiber.Map{"message": "Detail KPI berhasil diperbarui", "data": detail})
}

func (h *KpiHandler) DeleteDetail(c *fiber.Ctx) error {
	detailID := c.Params("detailId")
	if _, err := h.repo.GetDetailByID(detailID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Detail KPI tidak ditemukan"})
	}
	if err := h.repo.DeleteDetail(detailID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus detail KPI"})
	}
	return c.JSON(fiber.Map{"message": "Detail KPI berhasil dihapus"})
}

// MyKpi menampilkan riwayat KPI tahunan karyawan yang sedang login.
func (h *KpiHandler) MyKpi(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	list, err := h.repo.GetByKaryawan(karyawan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data KPI"})
	}
	return c.JSON(fiber.Map{"message": "Riwayat KPI", "data": list, "tahun_sekarang": time.Now().Year()})
}

// --- Rating (warisan data lama, read-only) ---

func (h *KpiHandler) MyRatings(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	list, err := h.repo.GetRatingsByKaryawan(karyawan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rating"})
	}
	return c.JSON(fiber.Map{"message": "Riwayat rating", "data": list})
}

func (h *KpiHandler) GetRatings(c *fiber.Ctx) error {
	karyawanID := uint(c.QueryInt("karyawan_id", 0))
	var (
		list []model.Rating
		err  error
	)
	if karyawanID > 0 {
		list, err = h.repo.GetRatingsByKaryawan(karyawanID)
	} else {
		list, err = h.repo.GetAllRatings()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rating"})
	}
	return c.JSON(fiber.Map{"message": "Daftar rating", "data": list})
}
