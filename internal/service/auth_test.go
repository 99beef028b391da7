package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/sessionstore"
)

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, "  Worker@Example.com ", "password123", model.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "worker@example.com", user.Email)
	assert.Equal(t, model.RoleEmployee, user.Role)

	stored, err := env.store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	_, err = env.auth.Register(ctx, "worker@example.com", "otherpass", model.RoleAdmin)
	requireStatus(t, err, http.StatusConflict)
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), "a@example.com", "password123", model.Role("OWNER"))
	requireStatus(t, err, http.StatusBadRequest)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.user(t, "admin@example.com", model.RoleAdmin)

	_, err := env.auth.Login(ctx, "missing@example.com", "password123")
	requireStatus(t, err, http.StatusNotFound)

	_, err = env.auth.Login(ctx, "admin@example.com", "wrong-password")
	requireStatus(t, err, http.StatusUnauthorized)

	session, err := env.auth.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	identity, err := env.tokens.VerifySession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, identity.Role)

	me, err := env.auth.Me(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)
}

func TestAuthService_Logout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.user(t, "admin@example.com", model.RoleAdmin)

	session, err := env.auth.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	identity, err := env.tokens.VerifySession(ctx, session.Token)
	require.NoError(t, err)

	env.auth.Logout(ctx, identity)
	env.auth.Logout(ctx, nil)

	_, err = env.tokens.VerifySession(ctx, session.Token)
	requireStatus(t, err, http.StatusUnauthorized)
}

// unavailableStore refuses writes, like a Redis instance that went away.
type unavailableStore struct {
	*sessionstore.MemoryStore
}

func (unavailableStore) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func TestAuthService_LogoutSurvivesStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.user(t, "admin@example.com", model.RoleAdmin)

	revoked := unavailableStore{MemoryStore: sessionstore.NewMemoryStore()}
	t.Cleanup(func() { revoked.Close() })
	tokens := NewTokenService(TokenConfig{Secret: testSecret, Issuer: "test"}, revoked)
	auth := NewAuthService(env.store, tokens, bcrypt.MinCost, slog.New(slog.NewTextHandler(io.Discard, nil)))

	session, err := auth.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	identity, err := tokens.VerifySession(ctx, session.Token)
	require.NoError(t, err)

	assert.NotPanics(t, func() { auth.Logout(ctx, identity) })

	// The token could not be revoked, so it stays valid until it expires.
	_, err = tokens.VerifySession(ctx, session.Token)
	assert.NoError(t, err)
}
