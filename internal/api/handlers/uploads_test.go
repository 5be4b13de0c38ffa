package handlers_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymestates/realty/internal/api/handlers"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/database/models"
	"github.com/ymestates/realty/internal/storage"
	"github.com/ymestates/realty/internal/testutil"
)

func setupUploadTestRouter(t *testing.T) (*chi.Mux, *testutil.TestContext, string) {
	t.Helper()
	tc := testutil.NewTestContext(t)
	t.Cleanup(tc.Cleanup)

	dir := t.TempDir()
	store, err := storage.NewLocal(dir, "http://localhost:5011")
	require.NoError(t, err)

	h := handlers.NewUploadHandler(store)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tc.JWTService))
		r.Use(middleware.RequireRole(tc.DB, models.RoleTeam, models.RoleAdmin))
		r.Post("/upload", h.Upload)
	})

	return r, tc, dir
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, path, token string, files map[string][]byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, data := range files {
		part, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestUpload(t *testing.T) {
	router, tc, dir := setupUploadTestRouter(t)

	agent := testutil.CreateTestUser(t, tc.DB, models.RoleTeam)
	token := testutil.GenerateTestToken(t, tc.JWTService, agent)

	t.Run("requires authentication", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/upload", "", map[string][]byte{"a.png": pngBytes(t)}))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stores images and returns served urls", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/upload", token, map[string][]byte{
			"villa front.png": pngBytes(t),
			"villa-back.png":  pngBytes(t),
		}))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool     `json:"success"`
			URLs    []string `json:"urls"`
		}
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.True(t, resp.Success)
		require.Len(t, resp.URLs, 2)

		for _, u := range resp.URLs {
			assert.Contains(t, u, "http://localhost:5011/uploads/")
			name := filepath.Base(u)
			// Spaces in client filenames are sanitized away.
			assert.NotContains(t, name, " ")

			saved, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Equal(t, pngBytes(t), saved)
		}
	})

	t.Run("rejects non-image payloads", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/upload", token, map[string][]byte{
			"notes.txt": []byte("just some text pretending to be an image"),
		}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects empty form", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/upload", token, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects more than ten files", func(t *testing.T) {
		files := make(map[string][]byte, 11)
		img := pngBytes(t)
		for i := 0; i < 11; i++ {
			files[string(rune('a'+i))+".png"] = img
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, multipartRequest(t, "/upload", token, files))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
