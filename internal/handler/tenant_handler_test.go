package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"peoplepulse/internal/model"

	qt "github.com/frankban/quicktest"
)

func tenantNames(body map[string]any) []string {
	var names []string
	for _, item := range body["data"].([]any) {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	return names
}

func TestTenantSoftDeleteListingAndRestore(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, _, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	other, _, _ := env.newCompany(t, "Globex", "owner@globex.test", model.RoleOwner)

	// Deactivate Globex.
	resp, _ := env.request(t, http.MethodDelete, fmt.Sprintf("/api/admin/tenants/%d", other.ID), ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	// Hidden from the default listing.
	resp, body := env.request(t, http.MethodGet, "/api/admin/tenants/", ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(tenantNames(body), qt.DeepEquals, []string{"Acme"})

	// Visible with include_inactive.
	resp, body = env.request(t, http.MethodGet, "/api/admin/tenants/?include_inactive=true", ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(tenantNames(body), qt.DeepEquals, []string{"Acme", "Globex"})

	// Restorable back to active.
	resp, _ = env.request(t, http.MethodPost, fmt.Sprintf("/api/admin/tenants/%d/restore", other.ID), ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	resp, body = env.request(t, http.MethodGet, "/api/admin/tenants/", ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(tenantNames(body), qt.DeepEquals, []string{"Acme", "Globex"})
}

func TestDeactivatedTenantMembersNeedOnboarding(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, _, ownerToken := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	other, _, _ := env.newCompany(t, "Globex", "owner@globex.test", model.RoleOwner)
	_, employeeToken := env.addMember(t, other.ID, "employee@globex.test", model.RoleEmployee)

	resp, _ := env.request(t, http.MethodDelete, fmt.Sprintf("/api/admin/tenants/%d", other.ID), ownerToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	// Identity and role survive, but the member is routed to onboarding
	// instead of being treated as logged out.
	resp, body := env.request(t, http.MethodGet, "/api/session", employeeToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	data := body["data"].(map[string]any)
	c.Assert(data["role"], qt.Equals, model.RoleEmployee)
	c.Assert(data["needs_onboarding"], qt.Equals, true)
	c.Assert(data["tenant"], qt.IsNil)

	// Data routes are guarded.
	resp, body = env.request(t, http.MethodGet, "/api/attendance/history", employeeToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusForbidden)
	c.Assert(body["needs_onboarding"], qt.Equals, true)
}

func TestTenantRoutesRequireOwnerRole(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	tenant, _, _ := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)
	_, adminToken := env.addMember(t, tenant.ID, "admin@acme.test", model.RoleAdmin)

	resp, _ := env.request(t, http.MethodGet, "/api/admin/tenants/", adminToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusForbidden)
}
