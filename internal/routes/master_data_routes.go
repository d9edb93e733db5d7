package routes

import (
	"hris-backend/internal/handler"
	"hris-backend/internal/middleware"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMasterDataRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewMasterDataRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	hdl := handler.NewMasterDataHandler(repo, karyawanRepo)

	departemen := app.Group("/api/departemen", middleware.Auth)
	departemen.Get("/", hdl.GetAllDepartemen)
	departemen.Post("/", middleware.Role(model.RoleHR), hdl.CreateDepartemen)
	departemen.Put("/:id", middleware.Role(model.RoleHR), hdl.UpdateDepartemen)
	departemen.Delete("/:id", middleware.Role(model.RoleHR), hdl.DeleteDepartemen)
	departemen.Post("/:id/karyawan", middleware.Role(model.RoleHR), hdl.AssignKaryawanToDepartemen)

	jabatan := app.Group("/api/jabatan", middleware.Auth)
	jabatan.Get("/", hdl.GetAllJabatan)
	jabatan.Post("/", middleware.Role(model.RoleHR), hdl.CreateJabatan)
	jabatan.Put("/:id", middleware.Role(model.RoleHR), hdl.UpdateJabatan)
	jabatan.Delete("/:id", middleware.Role(model.RoleHR), hdl.DeleteJabatan)
	jabatan.Post("/:id/karyawan", middleware.Role(model.RoleHR), hdl.AssignKaryawanToJabatan)
}
