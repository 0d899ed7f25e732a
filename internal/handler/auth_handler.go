package handler

import (
	"time"

	"peoplepulse/config"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users    repository.UserRepository
	resolver *session.Resolver
}

func NewAuthHandler(users repository.UserRepository, resolver *session.Resolver) *AuthHandler {
	return &AuthHandler{users: users, resolver: resolver}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := model.User{Email: req.Email, Password: string(hashed)}
	if err := h.users.Create(&user); err != nil {
		// Unique index on email; the usual failure here is a duplicate.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "An account with this email already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created, please log in",
		"data":    fiber.Map{"id": user.ID, "email": user.Email},
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	// Auth-state change: drop any stale snapshot before resolving.
	h.resolver.Invalidate(user.ID)
	snap := h.resolver.Resolve(user.ID, user.Email)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"session": snap,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.resolver.Invalidate(middleware.UserID(c))
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GetSession is the route-guard endpoint: it returns the resolved snapshot
// without requiring a membership, so the frontend can branch between
// dashboard, onboarding and login.
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	snap := h.resolver.Resolve(middleware.UserID(c), middleware.Email(c))
	return c.JSON(fiber.Map{"data": snap})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	user, err := h.users.FindByID(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := h.users.UpdatePassword(user.ID, string(hashed)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password updated"})
}

func generateToken(user *model.User) (string, error) {
	expireHours := config.GetEnvAsInt("JWT_EXPIRE_HOURS", 24)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Duration(expireHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
