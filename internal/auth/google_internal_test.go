package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newResolveTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestResolveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a plain user account for an unknown identity", func(t *testing.T) {
		db := newResolveTestDB(t)
		svc := &GoogleService{db: db}

		user, err := svc.resolveUser(ctx, "sub-1", "new@example.com", "New User", "https://pic")
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.True(t, user.IsApproved)
		assert.Equal(t, "sub-1", user.GoogleID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("matches by google id first", func(t *testing.T) {
		db := newResolveTestDB(t)
		svc := &GoogleService{db: db}

		existing := models.User{
			Name: "Linked", Email: "linked@example.com",
			GoogleID: "sub-2", Role: models.RoleTeam, IsApproved: true,
		}
		require.NoError(t, db.Create(&existing).Error)

		// A changed email at the provider must not create a second account.
		user, err := svc.resolveUser(ctx, "sub-2", "renamed@example.com", "Linked", "")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)

		var count int64
		db.Model(&models.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("links by email and preserves role and approval", func(t *testing.T) {
		db := newResolveTestDB(t)
		svc := &GoogleService{db: db}

		existing := models.User{
			Name: "Agent", Email: "agent@example.com",
			PasswordHash: "some-hash", Role: models.RoleTeam, IsApproved: false,
		}
		require.NoError(t, db.Create(&existing).Error)

		user, err := svc.resolveUser(ctx, "sub-3", "agent@example.com", "Agent", "https://pic")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		assert.Equal(t, "sub-3", user.GoogleID)
		assert.Equal(t, models.RoleTeam, user.Role)
		assert.False(t, user.IsApproved)
		assert.Equal(t, "some-hash", user.PasswordHash)
	})
}
