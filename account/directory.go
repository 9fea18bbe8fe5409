package account

import (
	"context"
	"errors"

	"github.com/premstore-git/premium-store-api/models"
	"github.com/premstore-git/premium-store-api/store"
)

var (
	// ErrEmailTaken is returned by Register when the email already exists.
	// Email comparison is case-sensitive exact match, as in the legacy data.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login on any email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Directory owns the registered user list and the single current-session
// pointer. Every operation reads the full user list from the store, mutates it
// in memory, and writes it back whole; there is no concurrent-writer
// protection, matching the single-user design of the storefront.
type Directory struct {
	store store.Store
}

func NewDirectory(s store.Store) *Directory {
	return &Directory{store: s}
}

// InitializeDefaultAdmin seeds the fixed admin account when no users exist
// yet. Safe to call on every startup.
func (d *Directory) InitializeDefaultAdmin(ctx context.Context) error {
	_, found, err := d.store.Get(ctx, store.UsersKey)
	if err != nil || found {
		return err
	}
	return store.SetJSON(ctx, d.store, store.UsersKey, []models.User{models.DefaultAdmin()})
}

// Users returns a fresh snapshot of the registered user list.
func (d *Directory) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := store.GetJSON(ctx, d.store, store.UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register appends the candidate to the directory and establishes it as the
// current session. Fails with ErrEmailTaken without touching the stored list
// when the email is already present.
func (d *Directory) Register(ctx context.Context, candidate models.User) error {
	users, err := d.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == candidate.Email {
			return ErrEmailTaken
		}
	}
	users = append(users, candidate)
	if err := store.SetJSON(ctx, d.store, store.UsersKey, users); err != nil {
		return err
	}
	return store.SetJSON(ctx, d.store, store.CurrentUserKey, candidate)
}

// Login matches email and password exactly — plaintext compare, inherited
// from the legacy storefront and flagged rather than hardened — and on
// success sets the session to that user.
func (d *Directory) Login(ctx context.Context, email, password string) (models.User, error) {
	users, err := d.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := store.SetJSON(ctx, d.store, store.CurrentUserKey, u); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session and the cart together. Ending a session always
// resets the cart, so a following user never inherits someone else's items.
func (d *Directory) Logout(ctx context.Context) error {
	if err := d.store.Remove(ctx, store.CurrentUserKey); err != nil {
		return err
	}
	return store.SetJSON(ctx, d.store, store.CartKey, models.EmptyCart())
}

// CurrentUser returns the session user, or nil when nobody is logged in.
func (d *Directory) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	found, err := store.GetJSON(ctx, d.store, store.CurrentUserKey, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// MarkDiscountConsumed records that the user has spent the one-time new-user
// discount, updating both the directory list and, when it is the session
// user, the session copy. The two writes are sequential best-effort; the
// store offers no cross-key transaction.
func (d *Directory) MarkDiscountConsumed(ctx context.Context, userID string) error {
	users, err := d.Users(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].DiscountUsed = true
			users[i].IsNewUser = false
			if err := store.SetJSON(ctx, d.store, store.UsersKey, users); err != nil {
				return err
			}
			current, err := d.CurrentUser(ctx)
			if err != nil {
				return err
			}
			if current != nil && current.ID == userID {
				return store.SetJSON(ctx, d.store, store.CurrentUserKey, users[i])
			}
			return nil
		}
	}
	return nil
}
