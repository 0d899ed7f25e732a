package handler

import (
	"strings"
	"time"

	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingHandler owns the terminal "complete" action of the signup
// wizard. The step-by-step state machine lives in the client; the server
// receives the reviewed payload in one shot and commits it atomically.
type OnboardingHandler struct {
	db       *gorm.DB
	members  repository.MemberRepository
	resolver *session.Resolver
}

func NewOnboardingHandler(db *gorm.DB, members repository.MemberRepository, resolver *session.Resolver) *OnboardingHandler {
	return &OnboardingHandler{db: db, members: members, resolver: resolver}
}

type OnboardingCompanyInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OnboardingPersonalInfo struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type CompleteOnboardingRequest struct {
	Company  OnboardingCompanyInfo  `json:"company" validate:"required"`
	Personal OnboardingPersonalInfo `json:"personal" validate:"required"`
}

// Complete creates the tenant, the owner membership and the first-year
// leave balance in one transaction, so a failure partway through leaves no
// orphaned rows. Always creates a fresh tenant: reusing an existing company
// by name would let a stranger onboard into it.
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	email := middleware.Email(c)

	if _, err := h.members.FindByUserID(userID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Account already belongs to a company"})
	}

	var req CompleteOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	employeeID := strings.TrimSpace(req.Personal.EmployeeID)
	if employeeID == "" {
		employeeID = newEmployeeID()
	}
	hireDate := req.Personal.HireDate
	if hireDate == "" {
		hireDate = time.Now().Format("2006-01-02")
	}

	var member model.Member
	err := h.db.Transaction(func(tx *gorm.DB) error {
		tenant := model.Tenant{
			Name:     req.Company.Name,
			Email:    req.Company.Email,
			Phone:    req.Company.Phone,
			Address:  req.Company.Address,
			IsActive: true,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		member = model.Member{
			UserID:     userID,
			TenantID:   tenant.ID,
			EmployeeID: employeeID,
			FirstName:  req.Personal.FirstName,
			LastName:   req.Personal.LastName,
			Email:      email,
			Department: req.Personal.Department,
			Position:   req.Personal.Position,
			HireDate:   hireDate,
			Role:       model.RoleOwner,
			Phone:      req.Personal.Phone,
			Address:    req.Personal.Address,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		balance := model.NewLeaveBalance(member.ID, time.Now().Year())
		return tx.Create(&balance).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete onboarding: " + err.Error()})
	}

	// Membership changed: recompute the snapshot on next resolve.
	h.resolver.Invalidate(userID)
	snap := h.resolver.Resolve(userID, email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Onboarding complete",
		"session": snap,
	})
}

func newEmployeeID() string {
	return "EMP-" + strings.ToUpper(uuid.NewString()[:8])
}
