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

func SetupReportRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	members := repository.NewMemberRepository(db)
	attendance := repository.NewAttendanceRepository(db)
	leave := repository.NewLeaveRepository(db)
	announcements := repository.NewAnnouncementRepository(db)
	hdl := handler.NewReportHandler(members, attendance, leave, announcements)

	admin := app.Group("/api/admin", middleware.Auth, middleware.Session(resolver),
		middleware.Role(model.RoleOwner, model.RoleAdmin, model.RoleHR))
	admin.Get("/dashboard", hdl.GetDashboard)
	admin.Get("/reports/attendance", hdl.GetAttendanceReport)
}
