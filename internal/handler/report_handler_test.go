package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"peoplepulse/internal/model"

	qt "github.com/frankban/quicktest"
)

func seedAttendance(t *testing.T, env *testEnv, memberID uint, date string, status string, hours float64) {
	t.Helper()
	checkIn, _ := time.Parse("2006-01-02 15:04", date+" 09:00")
	checkOut := checkIn.Add(time.Duration(hours * float64(time.Hour)))
	record := model.AttendanceRecord{
		MemberID:   memberID,
		Date:       date,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		TotalHours: hours,
		Status:     status,
	}
	if err := env.db.Create(&record).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
}

func TestAttendanceReportSummary(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	tenant, owner, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	employee, _ := env.addMember(t, tenant.ID, "employee@acme.test", model.RoleEmployee)

	seedAttendance(t, env, owner.ID, "2024-03-01", model.AttendancePresent, 8)
	seedAttendance(t, env, owner.ID, "2024-03-04", model.AttendanceLate, 7.5)
	seedAttendance(t, env, employee.ID, "2024-03-01", model.AttendancePresent, 8)
	// Out-of-period record must not leak into the report.
	seedAttendance(t, env, owner.ID, "2024-04-01", model.AttendancePresent, 8)

	resp, body := env.request(t, http.MethodGet, "/api/admin/reports/attendance?month=3&year=2024", ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	rows := body["data"].([]any)
	c.Assert(rows, qt.HasLen, 2)

	var ownerRow map[string]any
	for _, raw := range rows {
		row := raw.(map[string]any)
		if row["employee_id"] == owner.EmployeeID {
			ownerRow = row
		}
	}
	c.Assert(ownerRow, qt.IsNotNil)
	c.Assert(ownerRow["present"], qt.Equals, float64(1))
	c.Assert(ownerRow["late"], qt.Equals, float64(1))
	c.Assert(ownerRow["total_hours"], qt.Equals, 15.5)
}

func TestAttendanceReportCSVEscapesFields(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, owner, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)

	// Commas in names must survive the export intact.
	owner.LastName = `Smith, Jr. "The Boss"`
	c.Assert(env.db.Save(&owner).Error, qt.IsNil)
	seedAttendance(t, env, owner.ID, "2024-03-01", model.AttendancePresent, 8)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports/attendance?month=3&year=2024&format=csv", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	resp, err := env.app.Test(req, -1)
	c.Assert(err, qt.IsNil)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(resp.Header.Get("Content-Type"), qt.Contains, "text/csv")

	raw, _ := io.ReadAll(resp.Body)
	csvBody := string(raw)
	c.Assert(strings.HasPrefix(csvBody, "employee_id,name,present,late,absent,total_hours"), qt.IsTrue)
	// RFC 4180: embedded commas/quotes force a quoted field with doubled quotes.
	c.Assert(csvBody, qt.Contains, `"Test Smith, Jr. ""The Boss"""`)
}
