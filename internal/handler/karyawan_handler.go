package handler

import (
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type KaryawanHandler struct {
	repo repository.KaryawanRepository
}

func NewKaryawanHandler(repo repository.KaryawanRepository) *KaryawanHandler {
	return &KaryawanHandler{repo: repo}
}

type KaryawanRequest struct {
	UserID       uint   `json:"user_id"`
	Nama         string `json:"nama" validate:"required"`
	Gender       string `json:"gender" validate:"omitempty,oneof=Pria Wanita"`
	TanggalLahir string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	TanggalMasuk string `json:"tanggal_masuk" validate:"required,datetime=2006-01-02"`
	Pendidikan   string `json:"pendidikan"`
	JalurRekrut  string `json:"jalur_rekrut"`
}

func (h *KaryawanHandler) Create(c *fiber.Ctx) error {
	var req KaryawanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tanggalMasuk, _ := time.Parse("2006-01-02", req.TanggalMasuk)
	karyawan := model.Karyawan{
		UserID:       req.UserID,
		Nama:         req.Nama,
		Gender:       req.Gender,
		TanggalMasuk: tanggalMasuk,
		Pendidikan:   req.Pendidikan,
		JalurRekrut:  req.JalurRekrut,
	}
	if req.TanggalLahir != "" {
		lahir, _ := time.Parse("2006-01-02", req.TanggalLahir)
		karyawan.TanggalLahir = &lahir
	}

	if err := h.repo.Create(&karyawan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan karyawan"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Karyawan berhasil dibuat",
		"data":    karyawan,
	})
}

func (h *KaryawanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	return c.JSON(fiber.Map{"message": "Data karyawan", "data": list})
}

func (h *KaryawanHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	karyawan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Karyawan ditemukan", "data": karyawan})
}

func (h *KaryawanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	karyawan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	var req KaryawanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.Nama != "" {
		karyawan.Nama = req.Nama
	}
	if req.Gender != "" {
		karyawan.Gender = req.Gender
	}
	if req.Pendidikan != "" {
		karyawan.Pendidikan = req.Pendidikan
	}
	if req.JalurRekrut != "" {
		karyawan.JalurRekrut = req.JalurRekrut
	}
	if req.TanggalLahir != "" {
		lahir, parseErr := time.Parse("2006-01-02", req.TanggalLahir)
		if parseErr == nil {
			karyawan.TanggalLahir = &lahir
		}
	}
	if req.TanggalMasuk != "" {
		masuk, parseErr := time.Parse("2006-01-02", req.TanggalMasuk)
		if parseErr == nil {
			karyawan.TanggalMasuk = masuk
		}
	}

	if err := h.repo.Update(karyawan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah karyawan"})
	}
	return c.JSON(fiber.Map{"message": "Karyawan berhasil diubah", "data": karyawan})
}

func (h *KaryawanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	// Hapus beserta seluruh record turunan dalam satu transaksi
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus karyawan"})
	}
	return c.JSON(fiber.Map{"message": "Karyawan berhasil dihapus"})
}
