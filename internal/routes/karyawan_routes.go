package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKaryawanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKaryawanRepository(db)
	hdl := handler.NewKaryawanHandler(repo)

	// Kelola data karyawan (HR)
	admin := app.Group("/api/karyawan", middleware.Auth, middleware.Role(model.RoleHR))
	admin.Post("/", hdl.Create)
	admin.Get("/", hdl.GetAll)
	admin.Get("/:id", hdl.GetByID)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
