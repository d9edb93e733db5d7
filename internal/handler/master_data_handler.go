package handler

import (
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type MasterDataHandler struct {
	repo         repository.MasterDataRepository
	karyawanRepo repository.KaryawanRepository
}

func NewMasterDataHandler(repo repository.MasterDataRepository, karyawanRepo repository.KaryawanRepository) *MasterDataHandler {
	return &MasterDataHandler{repo: repo, karyawanRepo: karyawanRepo}
}

type MasterDataRequest struct {
	Nama      string `json:"nama" validate:"required"`
	Deskripsi string `json:"deskripsi"`
}

type AssignKaryawanRequest struct {
	KaryawanID uint `json:"karyawan_id" validate:"required"`
}

// --- Departemen ---

func (h *MasterDataHandler) CreateDepartemen(c *fiber.Ctx) error {
	var req MasterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama wajib diisi"})
	}

	departemen := model.Departemen{Nama: req.Nama, Deskripsi: req.Deskripsi}
	if err := h.repo.CreateDepartemen(&departemen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan departemen"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Departemen berhasil dibuat", "data": departemen})
}

func (h *MasterDataHandler) GetAllDepartemen(c *fiber.Ctx) error {
	list, err := h.repo.GetAllDepartemen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data departemen"})
	}
	return c.JSON(fiber.Map{"message": "Daftar departemen", "data": list})
}

func (h *MasterDataHandler) UpdateDepartemen(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	departemen, err := h.repo.GetDepartemenByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Departemen tidak ditemukan"})
	}

	var req MasterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Nama != "" {
		departemen.Nama = req.Nama
	}
	if req.Deskripsi != "" {
		departemen.Deskripsi = req.Deskripsi
	}

	if err := h.repo.UpdateDepartemen(departemen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui departemen"})
	}
	return c.JSON(fiber.Map{"message": "Departemen berhasil diperbarui", "data": departemen})
}

func (h *MasterDataHandler) DeleteDepartemen(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetDepartemenByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Departemen tidak ditemukan"})
	}
	if err := h.repo.DeleteDepartemen(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus departemen"})
	}
	return c.JSON(fiber.Map{"message": "Departemen berhasil dihapus"})
}

func (h *MasterDataHandler) AssignKaryawanToDepartemen(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req AssignKaryawanRequest
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
	if err := h.repo.AssignKaryawanToDepartemen(uint(id), karyawan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menautkan karyawan ke departemen"})
	}
	return c.JSON(fiber.Map{"message": "Karyawan berhasil ditautkan ke departemen"})
}

// --- Jabatan ---

func (h *MasterDataHandler) CreateJabatan(c *fiber.Ctx) error {
	var req MasterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama wajib diisi"})
	}

	jabatan := model.Jabatan{Nama: req.Nama, Deskripsi: req.Deskripsi}
	if err := h.repo.CreateJabatan(&jabatan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jabatan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Jabatan berhasil dibuat", "data": jabatan})
}

func (h *MasterDataHandler) GetAllJabatan(c *fiber.Ctx) error {
	list, err := h.repo.GetAllJabatan()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
	}
	return c.JSON(fiber.Map{"message": "Daftar jabatan", "data": list})
}

func (h *MasterDataHandler) UpdateJabatan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	jabatan, err := h.repo.GetJabatanByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}

	var req MasterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Nama != "" {
		jabatan.Nama = req.Nama
	}
	if req.Deskripsi != "" {
		jabatan.Deskripsi = req.Deskripsi
	}

	if err := h.repo.UpdateJabatan(jabatan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui jabatan"})
	}
	return c.JSON(fiber.Map{"message": "Jabatan berhasil diperbarui", "data": jabatan})
}

func (h *MasterDataHandler) DeleteJabatan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetJabatanByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jabatan tidak ditemukan"})
	}
	if err := h.repo.DeleteJabatan(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jabatan"})
	}
	return c.JSON(fiber.Map{"message": "Jabatan berhasil dihapus"})
}

func (h *MasterDataHandler) AssignKaryawanToJabatan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req AssignKaryawanRequest
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
	if err := h.repo.AssignKaryawanToJabatan(uint(id), karyawan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menautkan karyawan ke jabatan"})
	}
	return c.JSON(fiber.Map{"message": "Karyawan berhasil ditautkan ke jabatan"})
}
