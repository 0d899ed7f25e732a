package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"peoplepulse/config"
	"peoplepulse/internal/mailer"
	"peoplepulse/internal/model"
	"peoplepulse/internal/repository"
	"peoplepulse/internal/routes"
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	resolver *session.Resolver
}

// newTestEnv wires the full route surface against a per-test in-memory
// sqlite database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	resolver := session.NewResolver(
		repository.NewMemberRepository(db),
		repository.NewTenantRepository(db),
		time.Minute,
	)
	mail := mailer.New()

	app := fiber.New()
	routes.SetupAuthRoutes(app, db, resolver)
	routes.SetupMemberRoutes(app, db, resolver, mail)
	routes.SetupAttendanceRoutes(app, db, resolver)
	routes.SetupLeaveRoutes(app, db, resolver)
	routes.SetupPayrollRoutes(app, db, resolver)
	routes.SetupTenantRoutes(app, db, resolver)
	routes.SetupAnnouncementRoutes(app, db, resolver)
	routes.SetupNotificationRoutes(app, db, resolver)
	routes.SetupReportRoutes(app, db, resolver)

	return &testEnv{app: app, db: db, resolver: resolver}
}

// newUser inserts an auth account directly and returns it with a valid
// bearer token.
func (e *testEnv) newUser(t *testing.T, email string) (model.User, string) {
	t.Helper()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := model.User{Email: email, Password: string(hashed)}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return user, token
}

// newCompany seeds a tenant plus a member bound to a fresh user.
func (e *testEnv) newCompany(t *testing.T, name, ownerEmail, role string) (model.Tenant, model.Member, string) {
	t.Helper()

	user, token := e.newUser(t, ownerEmail)

	tenant := model.Tenant{Name: name, IsActive: true}
	if err := e.db.Create(&tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}

	member := model.Member{
		UserID:     user.ID,
		TenantID:   tenant.ID,
		EmployeeID: "EMP-" + strings.ToUpper(role),
		FirstName:  "Test",
		LastName:   "User",
		Email:      ownerEmail,
		Role:       role,
	}
	if err := e.db.Create(&member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return tenant, member, token
}

// addMember attaches another member (with its own user) to an existing
// tenant.
func (e *testEnv) addMember(t *testing.T, tenantID uint, email, role string) (model.Member, string) {
	t.Helper()

	user, token := e.newUser(t, email)
	member := model.Member{
		UserID:    user.ID,
		TenantID:  tenantID,
		FirstName: "Extra",
		LastName:  "Member",
		Email:     email,
		Role:      role,
	}
	if err := e.db.Create(&member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return member, token
}

func (e *testEnv) request(t *testing.T, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "json") {
		json.Unmarshal(raw, &decoded)
	}
	if decoded == nil {
		decoded = map[string]any{"raw": string(raw)}
	}
	return resp, decoded
}
