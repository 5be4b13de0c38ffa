package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymestates/realty/internal/api/handlers"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/database/models"
	"github.com/ymestates/realty/internal/testutil"
)

func setupTeamTestRouter(t *testing.T) (*chi.Mux, *testutil.TestContext) {
	t.Helper()
	tc := testutil.NewTestContext(t)
	t.Cleanup(tc.Cleanup)

	h := handlers.NewTeamHandler(tc.DB)

	r := chi.NewRouter()
	r.Route("/team", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tc.JWTService))
			r.Use(middleware.RequireRole(tc.DB, models.RoleTeam, models.RoleAdmin))
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})

	return r, tc
}

func TestTeamMembers(t *testing.T) {
	router, tc := setupTeamTestRouter(t)

	agent := testutil.CreateTestUser(t, tc.DB, models.RoleTeam)
	token := testutil.GenerateTestToken(t, tc.JWTService, agent)

	t.Run("public list starts empty", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.UnauthenticatedRequest(t, "GET", "/team", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Count int `json:"count"`
		}
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, 0, resp.Count)
	})

	t.Run("create requires an elevated role", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.UnauthenticatedRequest(t, "POST", "/team", map[string]string{
			"name": "Priya", "role": "Senior Agent",
		}))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("create validates required fields", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/team", map[string]string{
			"name": "Priya",
		}, token))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("full member lifecycle", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "POST", "/team", map[string]string{
			"name":  "Priya Shah",
			"role":  "Senior Agent",
			"email": "priya@ymestates.com",
		}, token))
		require.Equal(t, http.StatusCreated, rr.Code)

		var created struct {
			Data models.TeamMember `json:"data"`
		}
		testutil.ParseJSONResponse(t, rr, &created)
		path := "/team/" + created.Data.ID.String()

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "PUT", path, map[string]string{
			"bio": "Ten years in residential sales.",
		}, token))
		require.Equal(t, http.StatusOK, rr.Code)

		var member models.TeamMember
		require.NoError(t, tc.DB.First(&member, "id = ?", created.Data.ID).Error)
		assert.Equal(t, "Ten years in residential sales.", member.Bio)
		assert.Equal(t, "Priya Shah", member.Name)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "DELETE", path, nil, token))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "DELETE", path, nil, token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("update of unknown member returns 404", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, "PUT", "/team/"+uuid.NewString(),
			map[string]string{"bio": "x"}, token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
