//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, businessID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(businessID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, businessID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -1*time.Minute)
	token, err := service.GenerateToken(businessID)
	require.NoError(t, err)
	return token
}
