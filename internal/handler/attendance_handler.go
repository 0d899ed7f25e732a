package handler

import (
	"math"
	"time"

	"peoplepulse/config"
	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	now := time.Now()
	today := now.Format("2006-01-02")

	// Pre-check for readability; the unique (member, date) index is what
	// actually closes the concurrent double check-in race.
	existing, _ := h.repo.GetByDate(snap.MemberID, today)
	if existing != nil && existing.CheckIn != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked in today"})
	}

	status := model.AttendancePresent
	if isLate(now) {
		status = model.AttendanceLate
	}

	if existing != nil {
		existing.CheckIn = &now
		existing.Status = status
		if err := h.repo.Update(existing); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record check-in"})
		}
		return c.JSON(fiber.Map{"message": "Checked in", "data": existing})
	}

	record := model.AttendanceRecord{
		MemberID: snap.MemberID,
		Date:     today,
		CheckIn:  &now,
		Status:   status,
	}
	if err := h.repo.Create(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked in today"})
	}

	return c.JSON(fiber.Map{"message": "Checked in", "data": record})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	now := time.Now()
	today := now.Format("2006-01-02")

	record, err := h.repo.GetByDate(snap.MemberID, today)
	if err != nil {
		// Checkout before checkin must fail and must not create a record.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No check-in found for today"})
	}
	if record.CheckIn == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No check-in found for today"})
	}
	if record.CheckOut != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked out today"})
	}

	record.CheckOut = &now
	record.TotalHours = workedHours(*record.CheckIn, now)
	if err := h.repo.Update(record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record check-out"})
	}

	return c.JSON(fiber.Map{"message": "Checked out", "data": record})
}

func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	record, err := h.repo.GetByDate(snap.MemberID, time.Now().Format("2006-01-02"))
	if err != nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": record})
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	records, err := h.repo.GetHistory(snap.MemberID, c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"data": records})
}

// workedHours is check-out minus check-in in fractional hours, fixed to
// two decimals.
func workedHours(in, out time.Time) float64 {
	return math.Round(out.Sub(in).Hours()*100) / 100
}

func isLate(now time.Time) bool {
	cutoff, err := time.Parse("15:04", config.WorkStart())
	if err != nil {
		return false
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), cutoff.Hour(), cutoff.Minute(), 0, 0, now.Location())
	return now.After(start)
}
