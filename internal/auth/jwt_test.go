package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymestates/realty/internal/auth"
	"github.com/ymestates/realty/internal/database/models"
)

func TestJWTService(t *testing.T) {
	service := auth.NewJWTService("test-secret-key", 24*time.Hour)
	userID := uuid.New()

	t.Run("generates valid token", func(t *testing.T) {
		token, err := service.GenerateToken(userID, "user@example.com", models.RoleUser)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, models.RoleUser, claims.Role)
		assert.Equal(t, "realty", claims.Issuer)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		shortLived := auth.NewJWTService("test-secret-key", 1*time.Millisecond)
		token, err := shortLived.GenerateToken(userID, "user@example.com", models.RoleUser)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = shortLived.ValidateToken(token)
		assert.Equal(t, auth.ErrExpiredToken, err)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := auth.NewJWTService("completely-different-secret", 24*time.Hour)
		token, err := other.GenerateToken(userID, "user@example.com", models.RoleUser)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		token, err := service.GenerateToken(userID, "user@example.com", models.RoleUser)
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "abcd"
		_, err = service.ValidateToken(tampered)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("carries each role through claims", func(t *testing.T) {
		for _, role := range []string{models.RoleUser, models.RoleTeam, models.RoleAdmin} {
			token, err := service.GenerateToken(userID, "user@example.com", role)
			require.NoError(t, err)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role)
		}
	})
}
