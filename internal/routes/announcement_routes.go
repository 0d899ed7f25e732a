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

func SetupAnnouncementRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	repo := repository.NewAnnouncementRepository(db)
	hdl := handler.NewAnnouncementHandler(repo)

	api := app.Group("/api/announcements", middleware.Auth, middleware.Session(resolver))
	api.Get("/", hdl.GetAll)

	admin := app.Group("/api/admin/announcements", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin, model.RoleHR))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Deactivate)
}
