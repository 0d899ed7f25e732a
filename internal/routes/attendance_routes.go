package routes

import (
	"peoplepulse/internal/handler"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	repo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(repo)

	api := app.Group("/api/attendance", middleware.Auth, middleware.Session(resolver))
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/today", hdl.GetToday)
	api.Get("/history", hdl.GetHistory)
}
