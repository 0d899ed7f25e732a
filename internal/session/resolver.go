package session

import (
	"errors"
	"sync"
	"time"

	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"

	"gorm.io/gorm"
)

// Snapshot is the read-only identity/role/tenant triple every handler
// trusts. A zero Role means unresolved: the identity exists but has no
// membership row, and must never fall back to a default role.
type Snapshot struct {
	UserID          uint          `json:"user_id"`
	Email           string        `json:"email"`
	MemberID        uint          `json:"member_id,omitempty"`
	Role            string        `json:"role,omitempty"`
	TenantID        uint          `json:"tenant_id,omitempty"`
	Tenant          *model.Tenant `json:"tenant,omitempty"`
	NeedsOnboarding bool          `json:"needs_onboarding"`
}

func (s Snapshot) HasMembership() bool {
	return s.MemberID != 0 && s.Role != ""
}

// HasTenant reports whether the caller resolved to an active tenant. A
// member whose tenant was soft-deleted keeps identity and role but fails
// this check, which routes them to onboarding rather than to login.
func (s Snapshot) HasTenant() bool {
	return s.Tenant != nil
}

type cacheEntry struct {
	snap    Snapshot
	expires time.Time
}

// Resolver turns an authenticated user id into a Snapshot via the
// membership row and the active tenant record. Results are cached per user
// until the TTL passes or an auth/membership event invalidates them; the
// resolver itself only ever reads.
type Resolver struct {
	members repository.MemberRepository
	tenants repository.TenantRepository
	ttl     time.Duration

	mu    sync.Mutex
	cache map[uint]cacheEntry
}

func NewResolver(members repository.MemberRepository, tenants repository.TenantRepository, ttl time.Duration) *Resolver {
	return &Resolver{
		members: members,
		tenants: tenants,
		ttl:     ttl,
		cache:   make(map[uint]cacheEntry),
	}
}

// Resolve never returns an error: fetch failures degrade to an unresolved
// snapshot so callers only distinguish "no membership" from "no tenant".
func (r *Resolver) Resolve(userID uint, email string) Snapshot {
	if snap, ok := r.cached(userID); ok {
		return snap
	}

	snap := Snapshot{UserID: userID, Email: email}

	// 1. Membership lookup keyed by identity. Absent is a terminal state:
	// the caller is authenticated but must onboard.
	member, err := r.members.FindByUserID(userID)
	if err != nil {
		snap.NeedsOnboarding = true
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.store(userID, snap)
		}
		return snap
	}

	snap.MemberID = member.ID
	snap.Role = member.Role
	snap.TenantID = member.TenantID

	// 2. The tenant must exist and be active. A soft-deleted tenant keeps
	// identity and role in the snapshot but routes to onboarding.
	tenant, err := r.tenants.FindActiveByID(member.TenantID)
	if err != nil {
		snap.NeedsOnboarding = true
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.store(userID, snap)
		}
		return snap
	}

	snap.Tenant = tenant
	r.store(userID, snap)
	return snap
}

// Invalidate drops one user's cached snapshot. Called on login, logout,
// onboarding completion and membership mutations.
func (r *Resolver) Invalidate(userID uint) {
	r.mu.Lock()
	delete(r.cache, userID)
	r.mu.Unlock()
}

// InvalidateAll drops every cached snapshot. Used when a tenant is
// deactivated or restored, which can change any member's resolution.
func (r *Resolver) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[uint]cacheEntry)
	r.mu.Unlock()
}

func (r *Resolver) cached(userID uint) (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[userID]
	if !ok || time.Now().After(entry.expires) {
		return Snapshot{}, false
	}
	return entry.snap, true
}

func (r *Resolver) store(userID uint, snap Snapshot) {
	if r.ttl <= 0 {
		return
	}
	r.mu.Lock()
	r.cache[userID] = cacheEntry{snap: snap, expires: time.Now().Add(r.ttl)}
	r.mu.Unlock()
}
