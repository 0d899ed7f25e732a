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

type LeaveHandler struct {
	db            *gorm.DB
	repo          repository.LeaveRepository
	notifications repository.NotificationRepository
}

func NewLeaveHandler(db *gorm.DB, repo repository.LeaveRepository, notifications repository.NotificationRepository) *LeaveHandler {
	return &LeaveHandler{db: db, repo: repo, notifications: notifications}
}

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=casual sick earned"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	snap := middleware.Current(c)

	var req ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	// Server-side range check: an inverted range is rejected, never inserted.
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must not be before start date"})
	}

	request := model.LeaveRequest{
		MemberID:      snap.MemberID,
		LeaveType:     req.LeaveType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DaysRequested: leaveDays(start, end),
		Reason:        req.Reason,
		Status:        model.LeavePending,
	}
	if err := h.repo.CreateRequest(&request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit leave request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Leave request submitted",
		"data":    request,
	})
}

func (h *LeaveHandler) GetMine(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	list, err := h.repo.ListByMember(snap.MemberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// GetBalance returns the current-year balance with the derived available
// counters. Seeds a default row for members created before balances were
// part of the invite transaction.
func (h *LeaveHandler) GetBalance(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	year := time.Now().Year()

	balance, err := h.repo.GetBalance(snap.MemberID, year)
	if err != nil {
		seeded := model.NewLeaveBalance(snap.MemberID, year)
		balance = &seeded
		if err := h.repo.CreateBalance(balance); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave balance"})
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"balance": balance,
			"available": fiber.Map{
				"casual": balance.CasualTotal - balance.CasualUsed,
				"sick":   balance.SickTotal - balance.SickUsed,
				"earned": balance.EarnedTotal - balance.EarnedUsed,
			},
		},
	})
}

func (h *LeaveHandler) GetAll(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	list, err := h.repo.ListByTenant(snap.TenantID, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type DecideLeaveRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// Decide approves or rejects a pending request and notifies the requester
// in the same transaction. Leave balance counters are intentionally not
// touched here; see DESIGN.md.
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var req DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	request, err := h.repo.GetRequestByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if request.Member.TenantID != snap.TenantID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if request.Status != model.LeavePending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Leave request has already been decided"})
	}

	now := time.Now()
	approver := snap.MemberID

	err = h.db.Transaction(func(tx *gorm.DB) error {
		request.Status = req.Decision
		request.ApprovedBy = &approver
		request.ApprovedAt = &now
		if err := tx.Save(request).Error; err != nil {
			return err
		}

		notification := model.Notification{
			MemberID: request.MemberID,
			Title:    "Leave request " + req.Decision,
			Message: fmt.Sprintf("Your %s leave request for %s to %s has been %s.",
				request.LeaveType, request.StartDate, request.EndDate, req.Decision),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave request"})
	}

	return c.JSON(fiber.Map{"message": "Leave request " + req.Decision, "data": request})
}

// leaveDays counts calendar days inclusive of both endpoints.
func leaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
