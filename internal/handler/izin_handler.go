package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/notifier"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IzinHandler struct {
	repo         repository.IzinRepository
	karyawanRepo repository.KaryawanRepository
	userRepo     repository.UserRepository
	notifier     *notifier.EmailNotifier
	uploadDir    string
}

func NewIzinHandler(repo repository.IzinRepository, karyawanRepo repository.KaryawanRepository, userRepo repository.UserRepository, notifier *notifier.EmailNotifier) *IzinHandler {
	return &IzinHandler{
		repo:         repo,
		karyawanRepo: karyawanRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		uploadDir:    "./uploads/izin",
	}
}

// Request menerima pengajuan izin/sakit via multipart form.
// Field: tanggal (YYYY-MM-DD), jenis (IZIN/SAKIT), keterangan, file (opsional).
func (h *IzinHandler) Request(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	tanggal := c.FormValue("tanggal")
	jenis := c.FormValue("jenis")
	keterangan := c.FormValue("keterangan")

	if _, err := time.Parse("2006-01-02", tanggal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
	}
	if jenis != "IZIN" && jenis != "SAKIT" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jenis harus IZIN atau SAKIT"})
	}

	fileURL := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyiapkan folder upload"})
		}
		filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
		dest := filepath.Join(h.uploadDir, filename)
		if err := c.SaveFile(file, dest); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file"})
		}
		fileURL = "/uploads/izin/" + filename
	}

	izin := model.IzinRequest{
		KaryawanID: karyawan.ID,
		Tanggal:    tanggal,
		Jenis:      jenis,
		Keterangan: keterangan,
		FileURL:    fileURL,
		Status:     model.IzinPending,
	}
	if err := h.repo.Create(&izin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pengajuan izin"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan izin berhasil dikirim",
		"data":    izin,
	})
}

func (h *IzinHandler) MyRequests(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	karyawan, err := h.karyawanRepo.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data karyawan tidak ditemukan"})
	}

	list, err := h.repo.GetByKaryawan(karyawan.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data izin"})
	}
	return c.JSON(fiber.Map{"message": "Daftar pengajuan izin", "data": list})
}

// List menampilkan semua pengajuan untuk HR, bisa difilter ?status=PENDING.
func (h *IzinHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data izin"})
	}
	return c.JSON(fiber.Map{"message": "Daftar pengajuan izin", "data": list})
}

func (h *IzinHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.IzinApproved)
}

func (h *IzinHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.IzinRejected)
}

func (h *IzinHandler) decide(c *fiber.Ctx, status string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	izin, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan izin tidak ditemukan"})
	}
	if izin.Status != model.IzinPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pengajuan sudah diproses"})
	}

	decidedBy, _ := c.Locals("username").(string)
	if err := h.repo.Decide(izin, status, decidedBy); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses keputusan"})
	}

	// Kirim notifikasi email ke karyawan (best effort, tidak menggagalkan request)
	if karyawan, err := h.karyawanRepo.GetByID(izin.KaryawanID); err == nil {
		if user, err := h.userRepo.GetByID(karyawan.UserID); err == nil && user.Email != "" {
			_ = h.notifier.SendIzinDecision(user.Email, karyawan.Nama, izin.Tanggal, izin.Jenis, status)
		}
	}

	message := "Pengajuan izin disetujui"
	if status == model.IzinRejected {
		message = "Pengajuan izin ditolak"
	}
	return c.JSON(fiber.Map{"message": message, "data": izin})
}
