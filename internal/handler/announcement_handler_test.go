package handler_test

import (
	"net/http"
	"testing"

	"peoplepulse/internal/model"

	qt "github.com/frankban/quicktest"
)

func TestAnnouncementLifecycle(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	tenant, _, hrToken := env.newCompany(t, "Acme", "hr@acme.test", model.RoleHR)
	_, employeeToken := env.addMember(t, tenant.ID, "employee@acme.test", model.RoleEmployee)

	// Employees cannot publish.
	resp, _ := env.request(t, http.MethodPost, "/api/admin/announcements/", employeeToken,
		`{"title":"Nope","content":"not allowed"}`)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusForbidden)

	resp, body := env.request(t, http.MethodPost, "/api/admin/announcements/", hrToken,
		`{"title":"Office closed","content":"Closed on Friday for maintenance."}`)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
	id := uint(body["data"].(map[string]any)["ID"].(float64))

	// Visible in the tenant feed.
	resp, body = env.request(t, http.MethodGet, "/api/announcements/", employeeToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(body["data"].([]any), qt.HasLen, 1)

	// Deactivation hides it without deleting.
	resp, _ = env.request(t, http.MethodDelete, "/api/admin/announcements/"+itoa(id), hrToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	resp, body = env.request(t, http.MethodGet, "/api/announcements/", employeeToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(body["data"].([]any), qt.HasLen, 0)

	var count int64
	env.db.Model(&model.Announcement{}).Count(&count)
	c.Assert(count, qt.Equals, int64(1))
}

func TestAnnouncementsAreTenantScoped(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, _, acmeToken := env.newCompany(t, "Acme", "hr@acme.test", model.RoleHR)
	_, _, globexToken := env.newCompany(t, "Globex", "hr@globex.test", model.RoleHR)

	resp, _ := env.request(t, http.MethodPost, "/api/admin/announcements/", globexToken,
		`{"title":"Globex only","content":"internal"}`)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)

	resp, body := env.request(t, http.MethodGet, "/api/announcements/", acmeToken, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(body["data"].([]any), qt.HasLen, 0)
}

func TestNotificationsMarkRead(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, member, token := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)

	for _, title := range []string{"one", "two"} {
		n := model.Notification{MemberID: member.ID, Title: title, Message: "m"}
		c.Assert(env.db.Create(&n).Error, qt.IsNil)
	}

	resp, body := env.request(t, http.MethodGet, "/api/notifications/", token, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	list := body["data"].([]any)
	c.Assert(list, qt.HasLen, 2)
	first := uint(list[0].(map[string]any)["ID"].(float64))

	resp, _ = env.request(t, http.MethodPut, "/api/notifications/"+itoa(first)+"/read", token, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	var unread int64
	env.db.Model(&model.Notification{}).Where("member_id = ? AND is_read = ?", member.ID, false).Count(&unread)
	c.Assert(unread, qt.Equals, int64(1))

	resp, _ = env.request(t, http.MethodPut, "/api/notifications/read-all", token, "")
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	env.db.Model(&model.Notification{}).Where("member_id = ? AND is_read = ?", member.ID, false).Count(&unread)
	c.Assert(unread, qt.Equals, int64(0))
}
