package routes

import (
	"peoplepulse/internal/handler"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	repo := repository.NewNotificationRepository(db)
	hdl := handler.NewNotificationHandler(repo)

	api := app.Group("/api/notifications", middleware.Auth, middleware.Session(resolver))
	api.Get("/", hdl.GetAll)
	api.Put("/read-all", hdl.MarkAllRead)
	api.Put("/:id/read", hdl.MarkRead)
}
