package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/kpi"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKpiBulananRoutes(app *fiber.App, db *gorm.DB) {
	karyawanRepo := repository.NewKaryawanRepository(db)
	service := kpi.NewService(
		repository.NewKehadiranRepository(db),
		repository.NewPelatihanRepository(db),
		repository.NewKpiRepository(db),
		karyawanRepo,
	)
	hdl := handler.NewKpiBulananHandler(service, karyawanRepo)

	api := app.Group("/api/kpi-bulanan", middleware.Auth)
	api.Get("/my", hdl.MyKpiBulanan)
	api.Get("/my/history", hdl.MyHistory)

	// Laporan per karyawan dan per departemen (HR)
	api.Get("/karyawan/:id", middleware.Role(model.RoleHR), hdl.GetByKaryawan)
	api.Get("/karyawan/:id/rata-rata", middleware.Role(model.RoleHR), hdl.GetRataRataTahunan)
	api.Get("/departemen/:id", middleware.Role(model.RoleHR), hdl.GetByDepartemen)
}
