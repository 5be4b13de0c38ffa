package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ymestates/realty/internal/auth"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Contact{},
		&models.Inquiry{},
		&models.TeamMember{},
		&models.Socials{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB closes the test database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("warning: failed to get sql.DB: %v", err)
		return
	}
	sqlDB.Close()
}

// TestContext bundles the pieces most handler tests need.
type TestContext struct {
	DB         *gorm.DB
	JWTService *auth.JWTService
	t          *testing.T
}

func NewTestContext(t *testing.T) *TestContext {
	t.Helper()
	return &TestContext{
		DB:         SetupTestDB(t),
		JWTService: CreateTestJWTService(),
		t:          t,
	}
}

func (tc *TestContext) Cleanup() {
	CleanupTestDB(tc.t, tc.DB)
}

// CreateTestUser creates an approved user with the given role
func CreateTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("testpassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Base: models.Base{
			ID: uuid.New(),
		},
		Email:        "test-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		IsApproved:   true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateUnapprovedTeamUser creates a team user still waiting for approval
func CreateUnapprovedTeamUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db, models.RoleTeam)
	if err := db.Model(user).Update("is_approved", false).Error; err != nil {
		t.Fatalf("failed to unapprove test user: %v", err)
	}
	user.IsApproved = false
	return user
}

// CreateTestProperty creates an active listing owned by the given user
func CreateTestProperty(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *models.Property {
	t.Helper()

	property := &models.Property{
		Base: models.Base{
			ID: uuid.New(),
		},
		Title:        "Test Villa",
		Description:  "A comfortable test villa",
		Price:        5000000,
		PropertyType: models.PropertyTypeVilla,
		Status:       models.PropertyStatusSale,
		Address: models.Address{
			City:    "Mumbai",
			State:   "Maharashtra",
			Country: "India",
		},
		Features: models.Features{
			Bedrooms:  3,
			Bathrooms: 2,
			Area:      1800,
		},
		Amenities: []string{"pool", "garden"},
		Images:    []string{},
		OwnerID:   ownerID,
		IsActive:  true,
	}

	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}

	return property
}

// CreateTestJWTService creates a JWT service for testing
func CreateTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret-key-for-testing", 24*time.Hour)
}

// GenerateTestToken generates a valid JWT token for the given user
func GenerateTestToken(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()

	token, err := jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return token
}

// AuthenticatedRequest creates an HTTP request with authentication
func AuthenticatedRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// UnauthenticatedRequest creates an HTTP request without authentication
func UnauthenticatedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	return AuthenticatedRequest(t, method, path, body, "")
}

// ParseJSONResponse parses the response body into the given struct
func ParseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response body: %v. Body: %s", err, rr.Body.String())
	}
}
