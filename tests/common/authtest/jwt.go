//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/domain/user"
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the external identity provider would, so
// tests can call protected routes without a real provider.
type JWTHelper struct {
	verifier *jwt.Verifier
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{verifier: jwt.NewVerifier(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.verifier.SignToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.verifier.SignToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
