package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"time"

	"peoplepulse/internal/middleware"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	members       repository.MemberRepository
	attendance    repository.AttendanceRepository
	leave         repository.LeaveRepository
	announcements repository.AnnouncementRepository
}

func NewReportHandler(members repository.MemberRepository, attendance repository.AttendanceRepository, leave repository.LeaveRepository, announcements repository.AnnouncementRepository) *ReportHandler {
	return &ReportHandler{members: members, attendance: attendance, leave: leave, announcements: announcements}
}

// GetDashboard returns the admin landing counters.
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	today := time.Now().Format("2006-01-02")

	memberCount, _ := h.members.CountByTenant(snap.TenantID)
	presentToday, _ := h.attendance.CountPresentOnDate(snap.TenantID, today)
	pendingLeave, _ := h.leave.CountPendingByTenant(snap.TenantID)
	activeAnnouncements, _ := h.announcements.CountActiveByTenant(snap.TenantID)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"members":              memberCount,
			"present_today":        presentToday,
			"pending_leave":        pendingLeave,
			"active_announcements": activeAnnouncements,
		},
	})
}

type attendanceReportRow struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Present    int     `json:"present"`
	Late       int     `json:"late"`
	Absent     int     `json:"absent"`
	TotalHours float64 `json:"total_hours"`
}

// GetAttendanceReport builds the per-member monthly summary. With
// format=csv it streams a properly escaped CSV download instead of JSON.
func (h *ReportHandler) GetAttendanceReport(c *fiber.Ctx) error {
	snap := middleware.Current(c)
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if month < 1 || month > 12 || year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid month and year are required"})
	}

	members, err := h.members.ListByTenant(snap.TenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch members"})
	}

	rows := make([]attendanceReportRow, 0, len(members))
	for _, member := range members {
		records, err := h.attendance.GetByMonth(member.ID, month, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance"})
		}

		row := attendanceReportRow{
			EmployeeID: member.EmployeeID,
			Name:       member.FirstName + " " + member.LastName,
		}
		for _, r := range records {
			switch r.Status {
			case model.AttendanceLate:
				row.Late++
			case model.AttendanceAbsent:
				row.Absent++
			default:
				if r.CheckIn != nil {
					row.Present++
				}
			}
			row.TotalHours += r.TotalHours
		}
		row.TotalHours = math.Round(row.TotalHours*100) / 100
		rows = append(rows, row)
	}

	if c.Query("format") == "csv" {
		return h.sendCSV(c, rows, month, year)
	}
	return c.JSON(fiber.Map{"data": rows})
}

func (h *ReportHandler) sendCSV(c *fiber.Ctx, rows []attendanceReportRow, month, year int) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"employee_id", "name", "present", "late", "absent", "total_hours"})
	for _, row := range rows {
		w.Write([]string{
			row.EmployeeID,
			row.Name,
			fmt.Sprintf("%d", row.Present),
			fmt.Sprintf("%d", row.Late),
			fmt.Sprintf("%d", row.Absent),
			fmt.Sprintf("%.2f", row.TotalHours),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build CSV"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="attendance_%04d_%02d.csv"`, year, month))
	return c.Send(buf.Bytes())
}
