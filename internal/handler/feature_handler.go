package handler

import (
	"time"

	"hris-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// FeatureHandler menyajikan vektor fitur promosi, bahan baku model rekomendasi.
type FeatureHandler struct {
	usecase *usecase.FeatureUsecase
}

func NewFeatureHandler(u *usecase.FeatureUsecase) *FeatureHandler {
	return &FeatureHandler{usecase: u}
}

func (h *FeatureHandler) GetAll(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	features, err := h.usecase.ExtractAll(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengekstrak fitur karyawan"})
	}
	return c.JSON(fiber.Map{"message": "Fitur karyawan", "tahun": year, "data": features})
}

func (h *FeatureHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	year := c.QueryInt("year", time.Now().Year())
	features, err := h.usecase.Extract(uint(id), year)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Fitur karyawan", "tahun": year, "data": features})
}
