package handler

import (
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PelatihanHandler struct {
	repo         repository.PelatihanRepository
	karyawanRepo repository.KaryawanRepository
}

func NewPelatihanHandler(repo repository.PelatihanRepository, karyawanRepo repository.KaryawanRepository) *PelatihanHandler {
	return &PelatihanHandler{repo: repo, karyawanRepo: karyawanRepo}
}

type PelatihanRequest struct {
	Nama    string `json:"nama" validate:"required"`
	Tanggal string `json:"tanggal" validate:"required"` // YYYY-MM-DD
	Lokasi  string `json:"lokasi"`
}

func (h *PelatihanHandler) Create(c *fiber.Ctx) error {
	var req PelatihanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan tanggal wajib diisi"})
	}
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
	}

	pelatihan := model.Pelatihan{Nama: req.Nama, Tanggal: tanggal, Lokasi: req.Lokasi}
	if err := h.repo.Create(&pelatihan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pelatihan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pelatihan berhasil dibuat", "data": pelatihan})
}

func (h *PelatihanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pelatihan"})
	}
	return c.JSON(fiber.Map{"message": "Daftar pelatihan", "data": list})
}

func (h *PelatihanHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	pelatihan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pelatihan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Detail pelatihan", "data": pelatihan})
}

func (h *PelatihanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	pelatihan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pelatihan tidak ditemukan"})
	}

	var req PelatihanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Nama != "" {
		pelatihan.Nama = req.Nama
	}
	if req.Tanggal != "" {
		tanggal, err := time.Parse("2006-01-02", req.Tanggal)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
		}
		pelatihan.Tanggal = tanggal
	}
	if req.Lokasi != "" {
		pelatihan.Lokasi = req.Lokasi
	}

	if err := h.repo.Update(pelatihan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui pelatihan"})
	}
	return c.JSON(fiber.Map{"message": "Pelatihan berhasil diperbarui", "data": pelatihan})
}

func (h *PelatihanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pelatihan tidak ditemukan"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus pelatihan"})
	}
	return c.JSON(fiber.Map{"message": "Pelatihan berhasil dihapus"})
}

// --- Peserta ---

type PesertaRequest struct {
	KaryawanID   uint     `json:"karyawan_id" validate:"required"`
	Skor         *float64 `json:"skor" validate:"omitempty,gte=0,lte=100"`
	PeriodeYear  int      `json:"periode_year"`
	PeriodeMonth int      `json:"periode_month" validate:"omitempty,gte=1,lte=12"`
}

func (h *PelatihanHandler) AddPeserta(c *fiber.Ctx) error {
	pelatihanID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(pelatihanID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pelatihan tidak ditemukan"})
	}

	var req PesertaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Karyawan wajib diisi dan skor di antara 0 dan 100"})
	}
	if _, err := h.karyawanRepo.GetByID(req.KaryawanID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	detail := model.PelatihanDetail{
		KaryawanID:   req.KaryawanID,
		PelatihanID:  uint(pelatihanID),
		Skor:         req.Skor,
		PeriodeYear:  req.PeriodeYear,
		PeriodeMonth: req.PeriodeMonth,
	}
	if err := h.repo.AddPeserta(&detail); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah peserta"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Peserta berhasil ditambahkan", "data": detail})
}

// UpdatePeserta memperbarui skor dan periode satu keikutsertaan pelatihan.
func (h *PelatihanHandler) UpdatePeserta(c *fiber.Ctx) error {
	pesertaID, err := c.ParamsInt("pesertaId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	detail, err := h.repo.GetPesertaByID(uint(pesertaID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Peserta tidak ditemukan"})
	}

	var req struct {
		Skor         *float64 `json:"skor" validate:"omitempty,gte=0,lte=100"`
		PeriodeYear  *int     `json:"periode_year"`
		PeriodeMonth *int     `json:"periode_month" validate:"omitempty,gte=1,lte=12"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Skor di antara 0 dan 100, bulan di antara 1 dan 12"})
	}

	if req.Skor != nil {
		detail.Skor = req.Skor
	}
	if req.PeriodeYear != nil {
		detail.PeriodeYear = *req.PeriodeYear
	}
	if req.PeriodeMonth != nil {
		detail.PeriodeMonth = *req.PeriodeMonth
	}

	if err := h.repo.UpdatePeserta(detail); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui peserta"})
	}
	return c.JSON(fiber.Map{"message": "Peserta berhasil diperbarui", "data": detail})
}

// MyPelatihan menampilkan riwayat pelatihan karyawan yang sedang login.
func (h *PelatihanHandler) MyPelatihan(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	list, err := h.repo.GetDetailsByKaryawan(karyawan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pelatihan"})
	}
	return c.JSON(fiber.Map{"message": "Riwayat pelatihan", "data": list})
}
