package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafftrack/stafftrack-go/internal/domain/auth"
	"github.com/stafftrack/stafftrack-go/internal/pkg/jwt"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
	"github.com/stafftrack/stafftrack-go/internal/repository/kv"
)

func newTestService(t *testing.T) auth.Service {
	t.Helper()
	userRepo := kv.NewUserRepository(kvstore.NewMemoryStore())

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = userRepo.Create(context.Background(), auth.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         auth.RoleAdmin,
	})
	require.NoError(t, err)

	return NewService(userRepo, jwt.NewJWTService("test-secret", "1h"))
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "Admin User", resp.User.Name)
	assert.Equal(t, auth.RoleAdmin, resp.User.Role)
}

func TestService_LoginWrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_LoginUnknownUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_LoginMissingFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
