package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymestates/realty/internal/storage"
	"github.com/ymestates/realty/pkg/config"
)

func TestLocalSave(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	local, err := storage.NewLocal(dir, "http://localhost:5011")
	require.NoError(t, err)

	t.Run("writes the file and returns its public url", func(t *testing.T) {
		url, err := local.Save(ctx, "photo.png", "image/png", strings.NewReader("fake image bytes"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5011/uploads/photo.png", url)

		data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(data))
	})

	t.Run("strips path traversal from names", func(t *testing.T) {
		url, err := local.Save(ctx, "../../etc/passwd.png", "image/png", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5011/uploads/passwd.png", url)

		_, err = os.Stat(filepath.Join(dir, "passwd.png"))
		assert.NoError(t, err)
	})
}

func TestNewBackendSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to local", func(t *testing.T) {
		store, err := storage.New(ctx, config.UploadConfig{Dir: t.TempDir()}, "http://localhost:5011")
		require.NoError(t, err)
		_, ok := store.(*storage.Local)
		assert.True(t, ok)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		_, err := storage.New(ctx, config.UploadConfig{Backend: "ftp"}, "http://localhost:5011")
		assert.Error(t, err)
	})
}
