package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premstore-git/premium-store-api/models"
	"github.com/premstore-git/premium-store-api/store"
)

func newTestDirectory(t *testing.T) (*Directory, store.Store) {
	t.Helper()
	kv := store.NewMemoryStore()
	return NewDirectory(kv), kv
}

func testUser(id, email string) models.User {
	return models.User{
		ID:           id,
		Email:        email,
		Password:     "secret123",
		Name:         "Test User",
		CreatedAt:    time.Now(),
		IsNewUser:    true,
		DiscountUsed: false,
	}
}

func TestInitializeDefaultAdminIsIdempotent(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.InitializeDefaultAdmin(ctx))
	require.NoError(t, dir.InitializeDefaultAdmin(ctx))

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsAdmin)
	assert.Equal(t, models.AdminEmail, users[0].Email)
	assert.False(t, users[0].DiscountEligible())
}

func TestInitializeDefaultAdminSkipsExistingDirectory(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))
	require.NoError(t, dir.InitializeDefaultAdmin(ctx))

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.c", users[0].Email)
}

func TestRegisterEstablishesSession(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))

	current, err := dir.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "user-1", current.ID)
}

func TestRegisterDuplicateEmailLeavesDirectoryUntouched(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))

	err := dir.Register(ctx, testUser("user-2", "a@b.c"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user-1", users[0].ID)
}

func TestRegisterEmailComparisonIsCaseSensitive(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))
	// "A@b.c" is a distinct email under exact-match uniqueness.
	require.NoError(t, dir.Register(ctx, testUser("user-2", "A@b.c")))

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestLoginMatchesExactCredentials(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()
	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))
	require.NoError(t, dir.Logout(ctx))

	_, err := dir.Login(ctx, "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = dir.Login(ctx, "missing@b.c", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := dir.Login(ctx, "a@b.c", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	current, err := dir.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "user-1", current.ID)
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()
	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))
	require.NoError(t, store.SetJSON(ctx, kv, store.CartKey, models.Cart{
		Items: []models.CartItem{{Product: models.Product{ID: "prod-a", Price: 1000}, Quantity: 2}},
		Total: 2000, FinalTotal: 2000,
	}))

	require.NoError(t, dir.Logout(ctx))

	current, err := dir.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	var cart models.Cart
	found, err := store.GetJSON(ctx, kv, store.CartKey, &cart)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestMarkDiscountConsumedUpdatesListAndSession(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()
	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))

	require.NoError(t, dir.MarkDiscountConsumed(ctx, "user-1"))

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].DiscountUsed)
	assert.False(t, users[0].IsNewUser)

	current, err := dir.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.DiscountUsed)
	assert.False(t, current.IsNewUser)
}

func TestMarkDiscountConsumedLeavesOtherSessionAlone(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()
	require.NoError(t, dir.Register(ctx, testUser("user-1", "a@b.c")))
	require.NoError(t, dir.Register(ctx, testUser("user-2", "d@e.f")))

	// user-2 is now the session; consuming user-1's discount must not touch it.
	require.NoError(t, dir.MarkDiscountConsumed(ctx, "user-1"))

	current, err := dir.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "user-2", current.ID)
	assert.False(t, current.DiscountUsed)
}

func TestUsersRejectsCorruptDocument(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.UsersKey, `{"not":"a list"`))

	_, err := dir.Users(ctx)
	assert.ErrorIs(t, err, store.ErrCorruptState)
}
