package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPenghargaanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPenghargaanRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	hdl := handler.NewPenghargaanHandler(repo, karyawanRepo)

	api := app.Group("/api/penghargaan", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/penghargaan", middleware.Auth, middleware.Role(model.RoleHR))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
	admin.Post("/:id/karyawan", hdl.AssignKaryawan)
}
