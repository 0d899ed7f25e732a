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

func SetupTenantRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	repo := repository.NewTenantRepository(db)
	hdl := handler.NewTenantHandler(repo, resolver)

	admin := app.Group("/api/admin", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin))
	admin.Put("/tenant", hdl.Update)
	admin.Post("/tenant/logo", hdl.UploadLogo)

	// Platform-maintenance listing and lifecycle, owner only.
	owner := app.Group("/api/admin/tenants", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner))
	owner.Get("/", hdl.List)
	owner.Delete("/:id", hdl.Deactivate)
	owner.Post("/:id/restore", hdl.Restore)
}
