package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/notifier"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupIzinRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewIzinRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewIzinHandler(repo, karyawanRepo, userRepo, notifier.NewEmailNotifier())

	api := app.Group("/api/izin", middleware.Auth)
	api.Post("/", hdl.Request)
	api.Get("/my", hdl.MyRequests)

	// Review pengajuan (HR)
	api.Get("/", middleware.Role(model.RoleHR), hdl.List)
	api.Put("/:id/approve", middleware.Role(model.RoleHR), hdl.Approve)
	api.Put("/:id/reject", middleware.Role(model.RoleHR), hdl.Reject)
}
