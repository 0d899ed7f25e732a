package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"peoplepulse/internal/middleware"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
)

type TenantHandler struct {
	repo     repository.TenantRepository
	resolver *session.Resolver
}

func NewTenantHandler(repo repository.TenantRepository, resolver *session.Resolver) *TenantHandler {
	return &TenantHandler{repo: repo, resolver: resolver}
}

// List hides soft-deleted tenants unless include_inactive is passed.
func (h *TenantHandler) List(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "true"
	tenants, err := h.repo.List(includeInactive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch companies"})
	}
	return c.JSON(fiber.Map{"data": tenants})
}

type UpdateTenantRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *TenantHandler) Update(c *fiber.Ctx) error {
	snap := middleware.Current(c)

	var req UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	tenant, err := h.repo.FindByID(snap.TenantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	if req.Name != "" {
		tenant.Name = req.Name
	}
	if req.Email != "" {
		tenant.Email = req.Email
	}
	if req.Phone != "" {
		tenant.Phone = req.Phone
	}
	if req.Address != "" {
		tenant.Address = req.Address
	}
	if err := h.repo.Update(tenant); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update company"})
	}

	h.resolver.Invalidate(snap.UserID)
	return c.JSON(fiber.Map{"message": "Company updated", "data": tenant})
}

func (h *TenantHandler) UploadLogo(c *fiber.Ctx) error {
	snap := middleware.Current(c)

	file, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Logo file is required"})
	}

	uploadDir := "./uploads/logos"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	filename := fmt.Sprintf("%d_%d_%s", snap.TenantID, time.Now().Unix(), filepath.Base(file.Filename))
	path := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(file, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store logo"})
	}

	tenant, err := h.repo.FindByID(snap.TenantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	tenant.LogoURL = "/uploads/logos/" + filename
	if err := h.repo.Update(tenant); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update company"})
	}

	h.resolver.Invalidate(snap.UserID)
	return c.JSON(fiber.Map{"message": "Logo uploaded", "data": fiber.Map{"logo_url": tenant.LogoURL}})
}

// Deactivate soft-deletes a tenant: hidden from default listings, members
// resolve to "needs onboarding", restorable at any time.
func (h *TenantHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company id"})
	}
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	if err := h.repo.SetActive(uint(id), false); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate company"})
	}

	// Every member of this tenant now resolves differently.
	h.resolver.InvalidateAll()
	return c.JSON(fiber.Map{"message": "Company deactivated"})
}

func (h *TenantHandler) Restore(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company id"})
	}
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	if err := h.repo.SetActive(uint(id), true); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to restore company"})
	}

	h.resolver.InvalidateAll()
	return c.JSON(fiber.Map{"message": "Company restored"})
}
