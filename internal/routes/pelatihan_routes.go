package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPelatihanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPelatihanRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	hdl := handler.NewPelatihanHandler(repo, karyawanRepo)

	api := app.Group("/api/pelatihan", middleware.Auth)
	api.Get("/my", hdl.MyPelatihan)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	admin := app.Group("/api/pelatihan", middleware.Auth, middleware.Role(model.RoleHR))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
	admin.Post("/:id/peserta", hdl.AddPeserta)
	admin.Put("/peserta/:pesertaId", hdl.UpdatePeserta)
}
