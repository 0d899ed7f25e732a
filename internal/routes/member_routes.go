package routes

import (
	"peoplepulse/internal/handler"
	"peoplepulse/internal/mailer"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMemberRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver, mail *mailer.Mailer) {
	members := repository.NewMemberRepository(db)
	users := repository.NewUserRepository(db)
	hdl := handler.NewMemberHandler(db, members, users, resolver, mail)

	api := app.Group("/api", middleware.Auth, middleware.Session(resolver))
	api.Get("/members", hdl.GetDirectory)
	api.Get("/members/:id", hdl.GetMember)
	api.Get("/profile", hdl.GetProfile)
	api.Put("/profile", hdl.UpdateProfile)

	admin := app.Group("/api/admin/members", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin, model.RoleHR))
	admin.Post("/invite", hdl.Invite)
	admin.Get("/orphaned", hdl.GetOrphaned)
	admin.Delete("/orphaned/:id", hdl.DeleteOrphaned)

	manage := app.Group("/api/admin/members", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin))
	manage.Put("/:id", hdl.UpdateMember)
	manage.Delete("/:id", hdl.DeleteMember)
}
