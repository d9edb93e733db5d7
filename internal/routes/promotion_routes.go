package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"
	"hris-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPromotionRoutes(app *fiber.App, db *gorm.DB, modelStorageDir string) {
	promoRepo := repository.NewPromotionRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	features := usecase.NewFeatureUsecase(karyawanRepo)
	recommendation := usecase.NewRecommendationUsecase(promoRepo, features)
	trainer := usecase.NewTrainerUsecase(promoRepo, modelStorageDir)
	hdl := handler.NewPromotionHandler(recommendation, trainer, promoRepo, karyawanRepo)

	api := app.Group("/api/promotion", middleware.Auth, middleware.Role(model.RoleHR))
	api.Get("/model", hdl.ModelInfo)
	api.Post("/train", hdl.Train)
	api.Get("/recommendations", hdl.History)
	api.Post("/recommend-batch", hdl.RecommendBatch)
	api.Post("/recommend/:id", hdl.Recommend)
}
