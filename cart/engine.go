package cart

import (
	"context"
	"errors"

	"github.com/premstore-git/premium-store-api/models"
	"github.com/premstore-git/premium-store-api/store"
)

// NewUserDiscount is the one-time discount rate granted to accounts that have
// never checked out before.
const NewUserDiscount = 0.30

// ErrAlreadyInCart is returned by AddItem when the product id is already
// present; the cart is left untouched.
var ErrAlreadyInCart = errors.New("product already in cart")

// Engine owns the active cart. Each mutation takes a fresh snapshot from the
// store, applies the change, recomputes the derived totals against the
// current session user, and writes the cart back whole.
//
// Eligibility is read at recompute time only: switching users while the cart
// is non-empty leaves a stale discount figure until the next mutation or an
// explicit Refresh. That matches the legacy storefront; call Refresh before
// showing checkout.
type Engine struct {
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// Get returns the current cart, defaulting to the canonical empty cart when
// none has been persisted yet.
func (e *Engine) Get(ctx context.Context) (models.Cart, error) {
	cart := models.EmptyCart()
	if _, err := store.GetJSON(ctx, e.store, store.CartKey, &cart); err != nil {
		return models.EmptyCart(), err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem puts a single unit of the product in the cart. The product is
// snapshotted into the line item; later catalog edits do not reach carts.
func (e *Engine) AddItem(ctx context.Context, product models.Product) (models.Cart, error) {
	cart, err := e.Get(ctx)
	if err != nil {
		return cart, err
	}
	for _, item := range cart.Items {
		if item.Product.ID == product.ID {
			return cart, ErrAlreadyInCart
		}
	}
	cart.Items = append(cart.Items, models.CartItem{Product: product, Quantity: 1})
	return e.save(ctx, cart)
}

// SetQuantity sets the quantity of the line item for productID. A quantity of
// zero or less removes the item. An absent productID is a silent no-op.
func (e *Engine) SetQuantity(ctx context.Context, productID string, quantity int) (models.Cart, error) {
	cart, err := e.Get(ctx)
	if err != nil {
		return cart, err
	}
	for i := range cart.Items {
		if cart.Items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		break
	}
	return e.save(ctx, cart)
}

// RemoveItem drops the line item for productID, if present.
func (e *Engine) RemoveItem(ctx context.Context, productID string) (models.Cart, error) {
	cart, err := e.Get(ctx)
	if err != nil {
		return cart, err
	}
	filtered := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}
	cart.Items = filtered
	return e.save(ctx, cart)
}

// Clear resets the cart to the canonical empty cart.
func (e *Engine) Clear(ctx context.Context) error {
	return store.SetJSON(ctx, e.store, store.CartKey, models.EmptyCart())
}

// Refresh recomputes and persists the totals without changing the items. Call
// it whenever the session user's eligibility may have changed since the last
// mutation, in particular right before checkout.
func (e *Engine) Refresh(ctx context.Context) (models.Cart, error) {
	cart, err := e.Get(ctx)
	if err != nil {
		return cart, err
	}
	return e.save(ctx, cart)
}

func (e *Engine) save(ctx context.Context, cart models.Cart) (models.Cart, error) {
	user, err := e.sessionUser(ctx)
	if err != nil {
		return cart, err
	}
	UpdateTotals(&cart, user)
	if err := store.SetJSON(ctx, e.store, store.CartKey, cart); err != nil {
		return cart, err
	}
	return cart, nil
}

// sessionUser reads the current session straight from the store. The engine
// never holds a user reference across calls; every recompute sees a fresh
// snapshot.
func (e *Engine) sessionUser(ctx context.Context) (*models.User, error) {
	var u models.User
	found, err := store.GetJSON(ctx, e.store, store.CurrentUserKey, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// UpdateTotals recomputes a cart's total, discount and finalTotal in place.
// The discount applies iff the given user is still eligible for the new-user
// discount; a nil user gets none. Idempotent.
func UpdateTotals(cart *models.Cart, user *models.User) {
	total := 0.0
	for _, item := range cart.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	cart.Total = total
	if user != nil && user.DiscountEligible() {
		cart.Discount = total * NewUserDiscount
	} else {
		cart.Discount = 0
	}
	cart.FinalTotal = cart.Total - cart.Discount
}
