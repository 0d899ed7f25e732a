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

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	repo := repository.NewPayrollRepository(db)
	members := repository.NewMemberRepository(db)
	attendance := repository.NewAttendanceRepository(db)
	hdl := handler.NewPayrollHandler(db, repo, members, attendance)

	api := app.Group("/api/salary", middleware.Auth, middleware.Session(resolver))
	api.Get("/", hdl.GetMine)

	admin := app.Group("/api/admin/payroll", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin))
	admin.Post("/", hdl.Generate)
	admin.Get("/", hdl.GetAll)
}
