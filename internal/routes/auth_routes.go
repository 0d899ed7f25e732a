package routes

import (
	"peoplepulse/internal/handler"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, resolver *session.Resolver) {
	users := repository.NewUserRepository(db)
	members := repository.NewMemberRepository(db)

	authHdl := handler.NewAuthHandler(users, resolver)
	onboardingHdl := handler.NewOnboardingHandler(db, members, resolver)

	// Public
	app.Post("/api/auth/register", authHdl.Register)
	app.Post("/api/auth/login", authHdl.Login)

	// Authenticated but membership-free: the route guard endpoints. The
	// session middleware is deliberately absent here so identities without
	// a company can still reach them.
	api := app.Group("/api", middleware.Auth)
	api.Get("/session", authHdl.GetSession)
	api.Post("/auth/logout", authHdl.Logout)
	api.Put("/auth/password", authHdl.ChangePassword)
	api.Post("/onboarding", onboardingHdl.Complete)
}
