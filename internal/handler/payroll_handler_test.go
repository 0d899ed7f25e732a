package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"peoplepulse/internal/model"

	qt "github.com/frankban/quicktest"
)

func TestGenerateSlipNetComputation(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	tenant, _, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	employee, _ := env.addMember(t, tenant.ID, "employee@acme.test", model.RoleEmployee)

	payload := fmt.Sprintf(
		`{"member_id":%d,"month":3,"year":2024,"basic":50000,"allowances":5000,"deductions":2000}`,
		employee.ID)
	resp, _ := env.request(t, http.MethodPost, "/api/admin/payroll/", ownerToken, payload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)

	var slip model.SalarySlip
	c.Assert(env.db.Where("member_id = ?", employee.ID).First(&slip).Error, qt.IsNil)
	c.Assert(slip.Net, qt.Equals, float64(53000))
	c.Assert(slip.Month, qt.Equals, 3)
	c.Assert(slip.Year, qt.Equals, 2024)

	// The slip notification reached the member.
	var notifications int64
	env.db.Model(&model.Notification{}).Where("member_id = ?", employee.ID).Count(&notifications)
	c.Assert(notifications, qt.Equals, int64(1))
}

func TestGenerateSlipDuplicatePeriodRejected(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	tenant, _, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	employee, _ := env.addMember(t, tenant.ID, "employee@acme.test", model.RoleEmployee)

	payload := fmt.Sprintf(
		`{"member_id":%d,"month":4,"year":2024,"basic":40000,"allowances":0,"deductions":0}`,
		employee.ID)
	resp, _ := env.request(t, http.MethodPost, "/api/admin/payroll/", ownerToken, payload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)

	resp, body := env.request(t, http.MethodPost, "/api/admin/payroll/", ownerToken, payload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusConflict)
	c.Assert(body["error"], qt.Equals, "A salary slip for this period already exists")
}

func TestGenerateSlipRejectsNegativeAmounts(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	tenant, _, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	employee, _ := env.addMember(t, tenant.ID, "employee@acme.test", model.RoleEmployee)

	payload := fmt.Sprintf(
		`{"member_id":%d,"month":5,"year":2024,"basic":-100,"allowances":0,"deductions":0}`,
		employee.ID)
	resp, _ := env.request(t, http.MethodPost, "/api/admin/payroll/", ownerToken, payload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
}

func TestGenerateSlipCrossTenantMemberRejected(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, _, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	otherTenant, _, _ := env.newCompany(t, "Globex", "owner@globex.test", model.RoleOwner)
	outsider, _ := env.addMember(t, otherTenant.ID, "employee@globex.test", model.RoleEmployee)

	payload := fmt.Sprintf(
		`{"member_id":%d,"month":6,"year":2024,"basic":1000,"allowances":0,"deductions":0}`,
		outsider.ID)
	resp, _ := env.request(t, http.MethodPost, "/api/admin/payroll/", ownerToken, payload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusNotFound)
}
