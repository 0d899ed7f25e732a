package handler

import (
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) GetAll(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	list, err := h.repo.ListByMember(snap.MemberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id"})
	}

	if err := h.repo.MarkRead(snap.MemberID, uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notification"})
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	if err := h.repo.MarkAllRead(snap.MemberID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notifications"})
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
