package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/database/models"
	"github.com/ymestates/realty/internal/testutil"
)

func identityEcho(t *testing.T, gotID *uuid.UUID, gotRole *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotID = middleware.GetUserID(r.Context())
		*gotRole = middleware.GetUserRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	tc := testutil.NewTestContext(t)
	t.Cleanup(tc.Cleanup)

	user := testutil.CreateTestUser(t, tc.DB, models.RoleUser)
	token := testutil.GenerateTestToken(t, tc.JWTService, user)

	var gotID uuid.UUID
	var gotRole string
	handler := middleware.Auth(tc.JWTService)(identityEcho(t, &gotID, &gotRole))

	t.Run("rejects missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.UnauthenticatedRequest(t, "GET", "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "GET", "/me", nil, "garbage"))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("attaches identity for valid token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "GET", "/me", nil, token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, user.ID, gotID)
		assert.Equal(t, models.RoleUser, gotRole)
	})
}

func TestOptionalAuth(t *testing.T) {
	tc := testutil.NewTestContext(t)
	t.Cleanup(tc.Cleanup)

	user := testutil.CreateTestUser(t, tc.DB, models.RoleUser)
	token := testutil.GenerateTestToken(t, tc.JWTService, user)

	var gotID uuid.UUID
	var gotRole string
	handler := middleware.OptionalAuth(tc.JWTService)(identityEcho(t, &gotID, &gotRole))

	t.Run("passes anonymous request through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.UnauthenticatedRequest(t, "POST", "/inquiries", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, uuid.Nil, gotID)
	})

	t.Run("passes invalid token through as anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/inquiries", nil, "garbage"))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, uuid.Nil, gotID)
	})

	t.Run("attaches identity when the token is valid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/inquiries", nil, token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, user.ID, gotID)
	})
}

func TestRequireRole(t *testing.T) {
	tc := testutil.NewTestContext(t)
	t.Cleanup(tc.Cleanup)

	var gotID uuid.UUID
	var gotRole string
	chain := func(roles ...string) http.Handler {
		return middleware.Auth(tc.JWTService)(
			middleware.RequireRole(tc.DB, roles...)(identityEcho(t, &gotID, &gotRole)))
	}

	t.Run("admits allowed role", func(t *testing.T) {
		admin := testutil.CreateTestUser(t, tc.DB, models.RoleAdmin)
		token := testutil.GenerateTestToken(t, tc.JWTService, admin)

		rr := httptest.NewRecorder()
		chain(models.RoleTeam, models.RoleAdmin).ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/properties", nil, token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, models.RoleAdmin, gotRole)
	})

	t.Run("rejects disallowed role", func(t *testing.T) {
		user := testutil.CreateTestUser(t, tc.DB, models.RoleUser)
		token := testutil.GenerateTestToken(t, tc.JWTService, user)

		rr := httptest.NewRecorder()
		chain(models.RoleTeam, models.RoleAdmin).ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/properties", nil, token))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("rejects unapproved team account", func(t *testing.T) {
		pending := testutil.CreateUnapprovedTeamUser(t, tc.DB)
		token := testutil.GenerateTestToken(t, tc.JWTService, pending)

		rr := httptest.NewRecorder()
		chain(models.RoleTeam, models.RoleAdmin).ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/properties", nil, token))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("uses the stored role over a stale token claim", func(t *testing.T) {
		demoted := testutil.CreateTestUser(t, tc.DB, models.RoleAdmin)
		// Token minted while the account was admin.
		token := testutil.GenerateTestToken(t, tc.JWTService, demoted)
		assert.NoError(t, tc.DB.Model(demoted).Update("role", models.RoleUser).Error)

		rr := httptest.NewRecorder()
		chain(models.RoleTeam, models.RoleAdmin).ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/properties", nil, token))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("rejects deleted account", func(t *testing.T) {
		ghost := testutil.CreateTestUser(t, tc.DB, models.RoleAdmin)
		token := testutil.GenerateTestToken(t, tc.JWTService, ghost)
		assert.NoError(t, tc.DB.Delete(ghost).Error)

		rr := httptest.NewRecorder()
		chain(models.RoleAdmin).ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/properties", nil, token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
