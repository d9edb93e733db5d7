package handler

import (
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type KehadiranHandler struct {
	repo         repository.KehadiranRepository
	karyawanRepo repository.KaryawanRepository
}

func NewKehadiranHandler(repo repository.KehadiranRepository, karyawanRepo repository.KaryawanRepository) *KehadiranHandler {
	return &KehadiranHandler{repo: repo, karyawanRepo: karyawanRepo}
}

type CheckInRequest struct {
	Lokasi     string   `json:"lokasi"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Keterangan string   `json:"keterangan"`
}

// karyawanFromToken mencari karyawan milik user yang sedang login.
func (h *KehadiranHandler) karyawanFromToken(c *fiber.Ctx) (*model.Karyawan, error) {
	userID := uint(c.Locals("user_id").(float64))
	return h.karyawanRepo.GetByUserID(userID)
}

func (h *KehadiranHandler) CheckIn(c *fiber.Ctx) error {
	karyawan, err := h.karyawanFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	now := time.Now()
	tanggal := now.Format("2006-01-02")

	// Cek double check-in
	existing, _ := h.repo.GetByDate(karyawan.ID, tanggal)
	if existing != nil && existing.WaktuMasuk != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sudah melakukan check-in hari ini"})
	}
	if existing != nil && (existing.Status == model.StatusIzin || existing.Status == model.StatusSakit) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sedang dalam status Izin/Sakit hari ini"})
	}

	// Jam masuk kantor 08:00; setelah itu dihitung TERLAMBAT
	status := model.StatusHadir
	batasMasuk := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())
	if now.After(batasMasuk) {
		status = model.StatusTerlambat
	}

	kehadiran := model.Kehadiran{
		KaryawanID: karyawan.ID,
		Tanggal:    tanggal,
		Status:     status,
		WaktuMasuk: &now,
		Lokasi:     req.Lokasi,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Keterangan: req.Keterangan,
		Bulan:      now.Format("01"),
		Tahun:      now.Format("2006"),
	}

	if err := h.repo.Create(&kehadiran); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan absensi"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Check-in berhasil",
		"data":    kehadiran,
	})
}

func (h *KehadiranHandler) CheckOut(c *fiber.Ctx) error {
	karyawan, err := h.karyawanFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	now := time.Now()
	kehadiran, err := h.repo.GetByDate(karyawan.ID, now.Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda belum check-in hari ini"})
	}
	if kehadiran.WaktuKeluar != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Anda sudah check-out hari ini"})
	}

	kehadiran.WaktuKeluar = &now
	if err := h.repo.Update(kehadiran); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan check-out"})
	}

	return c.JSON(fiber.Map{"message": "Check-out berhasil", "data": kehadiran})
}

func (h *KehadiranHandler) GetHistory(c *fiber.Ctx) error {
	karyawan, err := h.karyawanFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	history, err := h.repo.GetHistory(karyawan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat"})
	}
	return c.JSON(fiber.Map{"message": "Riwayat kehadiran", "data": history})
}

// GetRekap menghitung jumlah kehadiran per status untuk satu bulan (HR).
func (h *KehadiranHandler) GetRekap(c *fiber.Ctx) error {
	year := c.QueryInt("tahun", time.Now().Year())
	month := c.QueryInt("bulan", int(time.Now().Month()))

	counts, err := h.repo.CountByStatusInMonth(year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekap"})
	}

	return c.JSON(fiber.Map{
		"message": "Rekap kehadiran bulanan",
		"tahun":   year,
		"bulan":   month,
		"data":    counts,
	})
}
