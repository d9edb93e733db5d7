package handler

import (
	"time"

	"hris-backend/internal/kpi"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// KpiBulananHandler menyajikan KPI final bulanan hasil perhitungan ulang
// dari record kehadiran, pelatihan, dan detail indikator.
type KpiBulananHandler struct {
	service      *kpi.Service
	karyawanRepo repository.KaryawanRepository
}

func NewKpiBulananHandler(service *kpi.Service, karyawanRepo repository.KaryawanRepository) *KpiBulananHandler {
	return &KpiBulananHandler{service: service, karyawanRepo: karyawanRepo}
}

func periodeFromQuery(c *fiber.Ctx) (int, int) {
	now := time.Now()
	return c.QueryInt("tahun", now.Year()), c.QueryInt("bulan", int(now.Month()))
}

// GetByKaryawan menghitung KPI final satu karyawan untuk periode
// ?tahun=&bulan= (default bulan berjalan).
func (h *KpiBulananHandler) GetByKaryawan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.karyawanRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	year, month := periodeFromQuery(c)
	summary, err := h.service.FinalKpi(uint(id), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung KPI"})
	}
	return c.JSON(fiber.Map{"message": "KPI bulanan", "data": summary})
}

// MyKpiBulanan menghitung KPI final karyawan yang sedang login.
func (h *KpiBulananHandler) MyKpiBulanan(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	year, month := periodeFromQuery(c)
	summary, err := h.service.FinalKpi(karyawan.ID, year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung KPI"})
	}
	return c.JSON(fiber.Map{"message": "KPI bulanan", "data": summary})
}

// MyHistory mengembalikan riwayat KPI bulanan karyawan yang sedang login,
// satu entri per periode yang punya detail indikator.
func (h *KpiBulananHandler) MyHistory(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	history, err := h.service.History(karyawan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung riwayat KPI"})
	}
	return c.JSON(fiber.Map{"message": "Riwayat KPI bulanan", "data": history})
}

// GetRataRataTahunan merata-ratakan KPI final 12 bulan satu karyawan untuk
// tahun ?tahun= (default tahun berjalan).
func (h *KpiBulananHandler) GetRataRataTahunan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.karyawanRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	year := c.QueryInt("tahun", time.Now().Year())
	rataRata, err := h.service.RataRataTahunan(uint(id), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung KPI"})
	}
	return c.JSON(fiber.Map{"message": "Rata-rata KPI tahunan", "data": fiber.Map{
		"karyawan_id": uint(id),
		"tahun":       year,
		"kpi_final":   rataRata,
	}})
}

// GetByDepartemen merekap KPI final sebuah departemen untuk satu periode.
func (h *KpiBulananHandler) GetByDepartemen(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	year, month := periodeFromQuery(c)
	rekap, err := h.service.DepartemenFinalKpi(uint(id), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung rekap departemen"})
	}
	return c.JSON(fiber.Map{"message": "Rekap KPI departemen", "data": rekap})
}
