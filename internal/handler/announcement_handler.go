package handler

import (
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AnnouncementHandler struct {
	repo repository.AnnouncementRepository
}

func NewAnnouncementHandler(repo repository.AnnouncementRepository) *AnnouncementHandler {
	return &AnnouncementHandler{repo: repo}
}

func (h *AnnouncementHandler) GetAll(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	list, err := h.repo.ListActiveByTenant(snap.TenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch announcements"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	snap := middleware.Current(c)

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	announcement := model.Announcement{
		TenantID: snap.TenantID,
		AuthorID: snap.MemberID,
		Title:    req.Title,
		Content:  req.Content,
		IsActive: true,
	}
	if err := h.repo.Create(&announcement); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create announcement"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Announcement published", "data": announcement})
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid announcement id"})
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	announcement, err := h.repo.GetByID(uint(id))
	if err != nil || announcement.TenantID != snap.TenantID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	if err := h.repo.Update(announcement); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update announcement"})
	}

	return c.JSON(fiber.Map{"message": "Announcement updated", "data": announcement})
}

// Deactivate hides an announcement from the feed without deleting it.
func (h *AnnouncementHandler) Deactivate(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid announcement id"})
	}

	announcement, err := h.repo.GetByID(uint(id))
	if err != nil || announcement.TenantID != snap.TenantID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}

	announcement.IsActive = false
	if err := h.repo.Update(announcement); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate announcement"})
	}

	return c.JSON(fiber.Map{"message": "Announcement deactivated"})
}
