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

func SetupFeatureRoutes(app *fiber.App, db *gorm.DB) {
	uc := usecase.NewFeatureUsecase(repository.NewKaryawanRepository(db))
	hdl := handler.NewFeatureHandler(uc)

	api := app.Group("/api/karyawan-features", middleware.Auth, middleware.Role(model.RoleHR))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
}
