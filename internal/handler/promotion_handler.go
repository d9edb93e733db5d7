package handler

import (
	"encoding/json"
	"time"

	"hris-backend/internal/model"
	"hris-backend/internal/promotion"
	"hris-backend/internal/repository"
	"hris-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PromotionHandler struct {
	recommendation *usecase.RecommendationUsecase
	trainer        *usecase.TrainerUsecase
	promoRepo      repository.PromotionRepository
	karyawanRepo   repository.KaryawanRepository
}

func NewPromotionHandler(
	recommendation *usecase.RecommendationUsecase,
	trainer *usecase.TrainerUsecase,
	promoRepo repository.PromotionRepository,
	karyawanRepo repository.KaryawanRepository,
) *PromotionHandler {
	return &PromotionHandler{
		recommendation: recommendation,
		trainer:        trainer,
		promoRepo:      promoRepo,
		karyawanRepo:   karyawanRepo,
	}
}

// Recommend menskor satu karyawan dengan model aktif untuk tahun ?year=.
func (h *PromotionHandler) Recommend(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.karyawanRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	year := c.QueryInt("year", time.Now().Year())
	result, err := h.recommendation.Recommend(uint(id), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung rekomendasi"})
	}
	if result == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Belum ada model yang ditraining"})
	}
	return c.JSON(fiber.Map{"message": "Rekomendasi promosi", "data": result})
}

type RecommendBatchRequest struct {
	KaryawanIDs  []uint `json:"karyawan_ids"`
	DepartemenID uint   `json:"departemen_id"`
	Year         int    `json:"year"`
}

// RecommendBatch menskor banyak karyawan sekaligus. Tanpa karyawan_ids dan
// departemen_id, seluruh karyawan ikut diskor. Kegagalan per karyawan jadi
// entry error, bukan membatalkan batch.
func (h *PromotionHandler) RecommendBatch(c *fiber.Ctx) error {
	var req RecommendBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	ids := req.KaryawanIDs
	if len(ids) == 0 {
		var err error
		if req.DepartemenID > 0 {
			ids, err = h.karyawanRepo.GetIDsByDepartemen(req.DepartemenID)
		} else {
			ids, err = h.karyawanRepo.GetAllIDs()
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar karyawan"})
		}
	}

	results := h.recommendation.RecommendBatch(ids, year)
	return c.JSON(fiber.Map{
		"message": "Rekomendasi promosi batch",
		"tahun":   year,
		"total":   len(results),
		"data":    results,
	})
}

// ModelInfo menampilkan metadata model aktif beserta bobot fitur terurutnya.
func (h *PromotionHandler) ModelInfo(c *fiber.Ctx) error {
	loaded, meta, err := h.recommendation.ActiveModel()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memuat model"})
	}
	if meta == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Belum ada model yang ditraining"})
	}

	var metrics promotion.Metrics
	_ = json.Unmarshal([]byte(meta.Metrics), &metrics)

	return c.JSON(fiber.Map{
		"message": "Info model promosi",
		"data": fiber.Map{
			"name":               meta.Name,
			"type":               meta.Type,
			"version":            meta.Version,
			"created_at":         meta.CreatedAt,
			"metrics":            metrics,
			"feature_importance": loaded.Importance(),
		},
	})
}

type TrainRequest struct {
	Samples []promotion.Sample `json:"samples"`
}

// Train melatih versi model baru. Tanpa samples di body, dipakai seed set
// sintetis bootstrap.
func (h *PromotionHandler) Train(c *fiber.Ctx) error {
	var req TrainRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
		}
	}

	var (
		version *model.ModelVersion
		err     error
	)
	if len(req.Samples) > 0 {
		version, err = h.trainer.Train(req.Samples)
	} else {
		version, err = h.trainer.TrainBootstrap()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal melatih model"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Model berhasil dilatih", "data": version})
}

// History menampilkan riwayat rekomendasi tersimpan, bisa difilter ?karyawan_id.
func (h *PromotionHandler) History(c *fiber.Ctx) error {
	list, err := h.promoRepo.GetRecommendations(uint(c.QueryInt("karyawan_id", 0)))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat rekomendasi"})
	}
	return c.JSON(fiber.Map{"message": "Riwayat rekomendasi promosi", "data": list})
}
