package checkout

import (
	"context"
	"errors"

	"github.com/premstore-git/premium-store-api/account"
	"github.com/premstore-git/premium-store-api/cart"
	"github.com/premstore-git/premium-store-api/models"
)

// ErrEmptyCart is returned when checkout is attempted with nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// Order is the result of a completed checkout: the message to hand off and
// the contact channels it can be sent through. Nothing is persisted — there
// is no order history, the summary text is the whole artifact.
type Order struct {
	Summary  string          `json:"summary"`
	Contacts []ContactMethod `json:"contacts"`
}

// Orchestrator finalizes purchases. It consumes the discount and clears the
// cart; the two writes plus the directory update are best-effort sequential,
// since the store gives no cross-key atomicity.
type Orchestrator struct {
	directory *account.Directory
	engine    *cart.Engine
}

func NewOrchestrator(d *account.Directory, e *cart.Engine) *Orchestrator {
	return &Orchestrator{directory: d, engine: e}
}

// Preview recomputes the cart against the current session user — eligibility
// may have changed since the last mutation — and returns the order text that
// completing now would produce, without mutating anything else. An empty cart
// has nothing to order and is rejected the same way CompleteOrder rejects it.
func (o *Orchestrator) Preview(ctx context.Context) (models.Cart, Order, error) {
	c, err := o.engine.Refresh(ctx)
	if err != nil {
		return c, Order{}, err
	}
	if len(c.Items) == 0 {
		return c, Order{}, ErrEmptyCart
	}
	user, err := o.directory.CurrentUser(ctx)
	if err != nil {
		return c, Order{}, err
	}
	return c, Order{Summary: OrderMessage(c, user), Contacts: ContactMethods()}, nil
}

// CompleteOrder finalizes the purchase: the summary is generated first (the
// cart is gone afterwards), the session user's discount is consumed iff they
// were eligible, and the cart is always cleared.
func (o *Orchestrator) CompleteOrder(ctx context.Context) (Order, error) {
	c, err := o.engine.Refresh(ctx)
	if err != nil {
		return Order{}, err
	}
	if len(c.Items) == 0 {
		return Order{}, ErrEmptyCart
	}
	user, err := o.directory.CurrentUser(ctx)
	if err != nil {
		return Order{}, err
	}

	order := Order{Summary: OrderMessage(c, user), Contacts: ContactMethods()}

	if user != nil && user.DiscountEligible() {
		if err := o.directory.MarkDiscountConsumed(ctx, user.ID); err != nil {
			return Order{}, err
		}
	}
	if err := o.engine.Clear(ctx); err != nil {
		return Order{}, err
	}
	return order, nil
}
