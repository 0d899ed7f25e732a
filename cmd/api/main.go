package main

import (
	"log"
	"time"

	"peoplepulse/config"
	"peoplepulse/internal/mailer"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/routes"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDB()
	db := config.DB

	// One resolver for the whole process so invalidations reach every
	// route group.
	ttl := time.Duration(config.GetEnvAsInt("SESSION_CACHE_TTL_SECONDS", 60)) * time.Second
	resolver := session.NewResolver(
		repository.NewMemberRepository(db),
		repository.NewTenantRepository(db),
		ttl,
	)
	mail := mailer.New()

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	// Company logos are served straight from disk.
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, db, resolver)
	routes.SetupMemberRoutes(app, db, resolver, mail)
	routes.SetupAttendanceRoutes(app, db, resolver)
	routes.SetupLeaveRoutes(app, db, resolver)
	routes.SetupPayrollRoutes(app, db, resolver)
	routes.SetupTenantRoutes(app, db, resolver)
	routes.SetupAnnouncementRoutes(app, db, resolver)
	routes.SetupNotificationRoutes(app, db, resolver)
	routes.SetupReportRoutes(app, db, resolver)

	port := config.GetEnv("PORT", "3000")
	log.Println("PeoplePulse HR API listening on :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
