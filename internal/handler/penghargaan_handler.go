package handler

import (
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PenghargaanHandler struct {
	repo         repository.PenghargaanRepository
	karyawanRepo repository.KaryawanRepository
}

func NewPenghargaanHandler(repo repository.PenghargaanRepository, karyawanRepo repository.KaryawanRepository) *PenghargaanHandler {
	return &PenghargaanHandler{repo: repo, karyawanRepo: karyawanRepo}
}

type PenghargaanRequest struct {
	Nama      string `json:"nama" validate:"required"`
	Tahun     int    `json:"tahun" validate:"required"`
	Deskripsi string `json:"deskripsi"`
}

func (h *PenghargaanHandler) Create(c *fiber.Ctx) error {
	var req PenghargaanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan tahun wajib diisi"})
	}

	penghargaan := model.Penghargaan{Nama: req.Nama, Tahun: req.Tahun, Deskripsi: req.Deskripsi}
	if err := h.repo.Create(&penghargaan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan penghargaan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Penghargaan berhasil dibuat", "data": penghargaan})
}

func (h *PenghargaanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.QueryInt("tahun", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data penghargaan"})
	}
	return c.JSON(fiber.Map{"message": "Daftar penghargaan", "data": list})
}

func (h *PenghargaanHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	penghargaan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penghargaan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Detail penghargaan", "data": penghargaan})
}

func (h *PenghargaanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	penghargaan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penghargaan tidak ditemukan"})
	}

	var req PenghargaanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Nama != "" {
		penghargaan.Nama = req.Nama
	}
	if req.Tahun > 0 {
		penghargaan.Tahun = req.Tahun
	}
	if req.Deskripsi != "" {
		penghargaan.Deskripsi = req.Deskripsi
	}

	if err := h.repo.Update(penghargaan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui penghargaan"})
	}
	return c.JSON(fiber.Map{"message": "Penghargaan berhasil diperbarui", "data": penghargaan})
}

func (h *PenghargaanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Penghargaan tidak ditemukan"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus penghargaan"})
	}
	return c.JSON(fiber.Map{"message": "Penghargaan berhasil dihapus"})
}

// AssignKaryawan menautkan penghargaan ke seorang karyawan.
func (h *PenghargaanHandler) AssignKaryawan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req struct {
		KaryawanID uint `json:"karyawan_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Karyawan wajib diisi"})
	}

	karyawan, err := h.karyawanRepo.GetByID(req.KaryawanID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	if err := h.repo.AssignKaryawan(uint(id), karyawan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menautkan penghargaan"})
	}
	return c.JSON(fiber.Map{"message": "Penghargaan berhasil ditautkan ke karyawan"})
}
