package handler_test

import (
	"net/http"
	"testing"

	"peoplepulse/internal/model"

	qt "github.com/frankban/quicktest"
)

const onboardingPayload = `{
	"company": {"name": "Acme Widgets", "email": "hello@acme.test"},
	"personal": {"first_name": "Olivia", "last_name": "Owner", "department": "Management", "position": "CEO"}
}`

func TestOnboardingCreatesTenantMembershipAndBalance(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, token := env.newUser(t, "founder@acme.test")

	resp, body := env.request(t, http.MethodPost, "/api/onboarding", token, onboardingPayload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)

	// Exactly one tenant and one membership-role binding afterwards.
	var tenants, members, balances int64
	env.db.Model(&model.Tenant{}).Count(&tenants)
	env.db.Model(&model.Member{}).Where("user_id = ?", user.ID).Count(&members)
	env.db.Model(&model.LeaveBalance{}).Count(&balances)
	c.Assert(tenants, qt.Equals, int64(1))
	c.Assert(members, qt.Equals, int64(1))
	c.Assert(balances, qt.Equals, int64(1))

	var member model.Member
	c.Assert(env.db.Where("user_id = ?", user.ID).First(&member).Error, qt.IsNil)
	c.Assert(member.Role, qt.Equals, model.RoleOwner)

	session := body["session"].(map[string]any)
	c.Assert(session["role"], qt.Equals, model.RoleOwner)
	c.Assert(session["needs_onboarding"], qt.Equals, false)
}

func TestOnboardingRollsBackOnPartialFailure(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, token := env.newUser(t, "founder@acme.test")

	// Force the last step of the transaction to fail.
	c.Assert(env.db.Migrator().DropTable(&model.LeaveBalance{}), qt.IsNil)

	resp, _ := env.request(t, http.MethodPost, "/api/onboarding", token, onboardingPayload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusInternalServerError)

	// No orphaned tenant or member survives the rollback.
	var tenants, members int64
	env.db.Model(&model.Tenant{}).Count(&tenants)
	env.db.Model(&model.Member{}).Count(&members)
	c.Assert(tenants, qt.Equals, int64(0))
	c.Assert(members, qt.Equals, int64(0))
}

func TestOnboardingRejectsExistingMembership(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, _, token := env.newCompany(t, "Acme", "owner@acme.test", model.RoleOwner)

	resp, _ := env.request(t, http.MethodPost, "/api/onboarding", token, onboardingPayload)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusConflict)
}
