package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKehadiranRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKehadiranRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	hdl := handler.NewKehadiranHandler(repo, karyawanRepo)

	api := app.Group("/api/kehadiran", middleware.Auth)
	api.Post("/check-in", hdl.CheckIn)
	api.Post("/check-out", hdl.CheckOut)
	api.Get("/history", hdl.GetHistory)

	// Rekap bulanan seluruh karyawan (HR)
	api.Get("/rekap", middleware.Role(model.RoleHR), hdl.GetRekap)
}
