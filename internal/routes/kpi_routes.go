package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKpiRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKpiRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	hdl := handler.NewKpiHandler(repo, karyawanRepo)

	// Karyawan lihat KPI sendiri
	api := app.Group("/api/kpi", middleware.Auth)
	api.Get("/my", hdl.MyKpi)
	api.Get("/rating/my", hdl.MyRatings)

	// Kelola indikator (HR)
	indikator := app.Group("/api/kpi/indikator", middleware.Auth, middleware.Role(model.RoleHR))
	indikator.Post("/", hdl.CreateIndicator)
	indikator.Get("/", hdl.GetIndicators)
	indikator.Put("/:id", hdl.UpdateIndicator)
	indikator.Delete("/:id", hdl.DeleteIndicator)

	// Rating warisan data lama (HR)
	api.Get("/rating", middleware.Role(model.RoleHR), hdl.GetRatings)

	// Kelola KPI tahunan + detail (HR)
	admin := app.Group("/api/kpi", middleware.Auth, middleware.Role(model.RoleHR))
	admin.Post("/", hdl.Create)
	admin.Get("/", hdl.GetAll)
	admin.Get("/:id", hdl.GetByID)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
	admin.Post("/:id/detail", hdl.AddDetail)
	admin.Put("/detail/:detailId", hdl.UpdateDetail)
	admin.Delete("/detail/:detailId", hdl.DeleteDetail)
}
