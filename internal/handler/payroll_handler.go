package handler

import (
	"fmt"
	"time"

	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PayrollHandler struct {
	db         *gorm.DB
	repo       repository.PayrollRepository
	members    repository.MemberRepository
	attendance repository.AttendanceRepository
}

func NewPayrollHandler(db *gorm.DB, repo repository.PayrollRepository, members repository.MemberRepository, attendance repository.AttendanceRepository) *PayrollHandler {
	return &PayrollHandler{db: db, repo: repo, members: members, attendance: attendance}
}

type GenerateSlipRequest struct {
	MemberID   uint    `json:"member_id" validate:"required"`
	Month      int     `json:"month" validate:"required,min=1,max=12"`
	Year       int     `json:"year" validate:"required,min=2000"`
	Basic      float64 `json:"basic" validate:"gte=0"`
	Allowances float64 `json:"allowances" validate:"gte=0"`
	Deductions float64 `json:"deductions" validate:"gte=0"`
}

// Generate creates an immutable slip for one member and period. Net is
// exactly basic + allowances - deductions with no floor. Slip and the
// member's notification commit together.
func (h *PayrollHandler) Generate(c *fiber.Ctx) error {
	snap := middleware.Current(c)

	var req GenerateSlipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	member, err := h.members.FindByTenantAndID(snap.TenantID, req.MemberID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
	}

	if _, err := h.repo.GetByPeriod(member.ID, req.Month, req.Year); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A salary slip for this period already exists"})
	}

	daysPresent, daysAbsent := h.attendanceCounts(member.ID, req.Month, req.Year)

	slip := model.SalarySlip{
		MemberID:    member.ID,
		Month:       req.Month,
		Year:        req.Year,
		Basic:       req.Basic,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		Net:         req.Basic + req.Allowances - req.Deductions,
		DaysPresent: daysPresent,
		DaysAbsent:  daysAbsent,
		GeneratedAt: time.Now(),
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&slip).Error; err != nil {
			return err
		}
		notification := model.Notification{
			MemberID: member.ID,
			Title:    "Salary slip generated",
			Message:  fmt.Sprintf("Your salary slip for %02d/%d is available.", req.Month, req.Year),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate salary slip"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Salary slip generated",
		"data":    slip,
	})
}

func (h *PayrollHandler) GetMine(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	slips, err := h.repo.ListByMember(snap.MemberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch salary slips"})
	}
	return c.JSON(fiber.Map{"data": slips})
}

func (h *PayrollHandler) GetAll(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	month := c.QueryInt("month")
	year := c.QueryInt("year")

	slips, err := h.repo.ListByTenant(snap.TenantID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch salary slips"})
	}
	return c.JSON(fiber.Map{"data": slips})
}

func (h *PayrollHandler) attendanceCounts(memberID uint, month, year int) (present, absent int) {
	records, err := h.attendance.GetByMonth(memberID, month, year)
	if err != nil {
		return 0, 0
	}
	for _, r := range records {
		switch {
		case r.Status == model.AttendanceAbsent:
			absent++
		case r.CheckIn != nil:
			present++
		}
	}
	return present, absent
}
