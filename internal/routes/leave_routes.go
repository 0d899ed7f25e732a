package routes

import (
	"peoplepulse/internal/handler"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	repo := repository.NewLeaveRepository(db)
	notifications := repository.NewNotificationRepository(db)
	hdl := handler.NewLeaveHandler(db, repo, notifications)

	api := app.Group("/api/leave", middleware.Auth, middleware.Session(resolver))
	api.Post("/", hdl.Apply)
	api.Get("/", hdl.GetMine)
	api.Get("/balance", hdl.GetBalance)

	admin := app.Group("/api/admin/leave", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin, model.RoleHR))
	admin.Get("/", hdl.GetAll)
	admin.Post("/:id/decide", hdl.Decide)
}
