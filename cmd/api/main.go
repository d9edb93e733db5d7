package main

import (
	"fmt"

	"hris-backend/config"
	"hris-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Lampiran izin/sakit bisa diakses via http://localhost:3000/uploads/...
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupKaryawanRoutes(app, config.DB)
	routes.SetupMasterDataRoutes(app, config.DB)
	routes.SetupKehadiranRoutes(app, config.DB)
	routes.SetupIzinRoutes(app, config.DB)
	routes.SetupKpiRoutes(app, config.DB)
	routes.SetupKpiBulananRoutes(app, config.DB)
	routes.SetupFeatureRoutes(app, config.DB)
	routes.SetupPelatihanRoutes(app, config.DB)
	routes.SetupPenghargaanRoutes(app, config.DB)
	routes.SetupPromotionRoutes(app, config.DB, config.GetEnv("MODEL_STORAGE_DIR", "./storage/models"))

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
