package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inventory-rest-api/internal/metrics"
	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/internal/repository/repotest"
	"inventory-rest-api/internal/sessionstore"
	"inventory-rest-api/pkg/apierror"
)

const testSecret = "test-secret-0123456789abcdef"

type testEnv struct {
	store      *repository.SQLStore
	revoked    *sessionstore.MemoryStore
	metrics    *metrics.Metrics
	tokens     *TokenService
	auth       *AuthService
	membership *Membership
	stock      *StockService
	inventory  *InventoryService
	categories *CategoryService
	items      *ItemService
	operations *OperationService
	relations  *RelationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repotest.New(t)
	revoked := sessionstore.NewMemoryStore()
	t.Cleanup(func() { revoked.Close() })

	m := metrics.New()
	tokens := NewTokenService(TokenConfig{Secret: testSecret, Issuer: "test"}, revoked)
	membership := NewMembership(store)

	return &testEnv{
		store:      store,
		revoked:    revoked,
		metrics:    m,
		tokens:     tokens,
		auth:       NewAuthService(store, tokens, bcrypt.MinCost, logger),
		membership: membership,
		stock:      NewStockService(store, membership, m, logger),
		inventory:  NewInventoryService(store, membership),
		categories: NewCategoryService(store, membership),
		items:      NewItemService(store, store, membership),
		operations: NewOperationService(store, membership),
		relations:  NewRelationService(store, store, membership, logger),
	}
}

// user registers an account and returns an identity for it.
func (e *testEnv) user(t *testing.T, email string, role model.Role) *model.Identity {
	t.Helper()
	summary, err := e.auth.Register(context.Background(), email, "password123", role)
	require.NoError(t, err)
	return &model.Identity{UserID: summary.ID, Role: summary.Role}
}

// seeded is an inventory with one category and one item, owned by an admin.
type seeded struct {
	admin     *model.Identity
	inventory *model.Inventory
	category  *model.Category
	item      *model.Item
}

func (e *testEnv) seed(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()

	admin := e.user(t, "admin@example.com", model.RoleAdmin)
	inv, err := e.inventory.Create(ctx, admin, "Main warehouse")
	require.NoError(t, err)
	cat, err := e.categories.Create(ctx, admin, inv.ID, "Tools")
	require.NoError(t, err)
	item, err := e.items.Create(ctx, admin, inv.ID, cat.ID, "Hammer")
	require.NoError(t, err)

	return seeded{admin: admin, inventory: inv, category: cat, item: item}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := apierror.As(err)
	require.True(t, ok, "expected an API error, got %v", err)
	assert.Equal(t, status, apiErr.StatusCode, apiErr.Message)
}
