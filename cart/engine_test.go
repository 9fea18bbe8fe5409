package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premstore-git/premium-store-api/models"
	"github.com/premstore-git/premium-store-api/store"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price, Stock: 10}
}

func newTestEngine(t *testing.T) (*Engine, store.Store) {
	t.Helper()
	kv := store.NewMemoryStore()
	return NewEngine(kv), kv
}

func setSessionUser(t *testing.T, kv store.Store, user models.User) {
	t.Helper()
	require.NoError(t, store.SetJSON(context.Background(), kv, store.CurrentUserKey, user))
}

func TestAddItemAppendsWithQuantityOne(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	cart, err := engine.AddItem(ctx, testProduct("prod-a", 1000))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-a", cart.Items[0].Product.ID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1000.0, cart.Total)
}

func TestAddItemTwiceIsNoOp(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddItem(ctx, testProduct("prod-a", 1000))
	require.NoError(t, err)

	_, err = engine.AddItem(ctx, testProduct("prod-a", 1000))
	assert.ErrorIs(t, err, ErrAlreadyInCart)

	cart, err := engine.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestSetQuantityZeroOrNegativeRemovesItem(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		engine, _ := newTestEngine(t)
		ctx := context.Background()

		_, err := engine.AddItem(ctx, testProduct("prod-a", 1000))
		require.NoError(t, err)

		cart, err := engine.SetQuantity(ctx, "prod-a", quantity)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Equal(t, 0.0, cart.Total)
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddItem(ctx, testProduct("prod-a", 1000))
	require.NoError(t, err)

	cart, err := engine.SetQuantity(ctx, "prod-zzz", 5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestTotalsTrackMutationSequence(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddItem(ctx, testProduct("prod-a", 99000))
	require.NoError(t, err)
	_, err = engine.AddItem(ctx, testProduct("prod-b", 29000))
	require.NoError(t, err)

	cart, err := engine.SetQuantity(ctx, "prod-b", 3)
	require.NoError(t, err)
	assert.Equal(t, 99000.0+3*29000.0, cart.Total)

	cart, err = engine.RemoveItem(ctx, "prod-a")
	require.NoError(t, err)
	assert.Equal(t, 3*29000.0, cart.Total)

	cart, err = engine.SetQuantity(ctx, "prod-b", 1)
	require.NoError(t, err)
	assert.Equal(t, 29000.0, cart.Total)
	assert.Equal(t, cart.Total-cart.Discount, cart.FinalTotal)
}

func TestDiscountAppliesOnlyToEligibleUser(t *testing.T) {
	cases := []struct {
		name         string
		isNewUser    bool
		discountUsed bool
		wantDiscount float64
	}{
		{"new user, discount unused", true, false, 29700},
		{"new user, discount already used", true, true, 0},
		{"returning user", false, false, 0},
		{"returning user, discount used", false, true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, kv := newTestEngine(t)
			ctx := context.Background()
			setSessionUser(t, kv, models.User{
				ID:           "user-1",
				IsNewUser:    tc.isNewUser,
				DiscountUsed: tc.discountUsed,
			})

			cart, err := engine.AddItem(ctx, testProduct("prod-a", 99000))
			require.NoError(t, err)

			assert.Equal(t, 99000.0, cart.Total)
			assert.Equal(t, tc.wantDiscount, cart.Discount)
			assert.Equal(t, cart.Total-tc.wantDiscount, cart.FinalTotal)
		})
	}
}

func TestNoSessionMeansNoDiscount(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	cart, err := engine.AddItem(ctx, testProduct("prod-a", 99000))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cart.Discount)
	assert.Equal(t, 99000.0, cart.FinalTotal)
}

func TestRefreshRecomputesAfterEligibilityChange(t *testing.T) {
	engine, kv := newTestEngine(t)
	ctx := context.Background()
	setSessionUser(t, kv, models.User{ID: "user-1", IsNewUser: true, DiscountUsed: false})

	cart, err := engine.AddItem(ctx, testProduct("prod-a", 99000))
	require.NoError(t, err)
	require.Equal(t, 29700.0, cart.Discount)

	// The discount figure is stale until the next recompute: the engine only
	// reads eligibility when totals are recalculated.
	setSessionUser(t, kv, models.User{ID: "user-1", IsNewUser: false, DiscountUsed: true})
	cart, err = engine.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 29700.0, cart.Discount)

	cart, err = engine.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cart.Discount)
	assert.Equal(t, 99000.0, cart.FinalTotal)
}

func TestClearResetsToCanonicalEmptyCart(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddItem(ctx, testProduct("prod-a", 1000))
	require.NoError(t, err)
	require.NoError(t, engine.Clear(ctx))

	cart, err := engine.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
	assert.Equal(t, 0.0, cart.Discount)
	assert.Equal(t, 0.0, cart.FinalTotal)
}

func TestUpdateTotalsIsIdempotent(t *testing.T) {
	user := models.User{ID: "user-1", IsNewUser: true}
	cart := models.Cart{Items: []models.CartItem{
		{Product: testProduct("prod-a", 99000), Quantity: 2},
	}}

	UpdateTotals(&cart, &user)
	first := cart
	UpdateTotals(&cart, &user)
	assert.Equal(t, first, cart)
}

func TestGetRejectsCorruptCartDocument(t *testing.T) {
	engine, kv := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.CartKey, "{not json"))

	_, err := engine.Get(ctx)
	assert.ErrorIs(t, err, store.ErrCorruptState)
}
