package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/repository"
	"hris-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewAuthHandler(uc)

	app.Post("/api/register", hdl.Register)
	app.Post("/api/login", hdl.Login)
}
