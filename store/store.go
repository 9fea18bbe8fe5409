package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Stable storage keys. Saved state written by older deployments resolves
// against these names, so they must not change.
const (
	UsersKey       = "users"
	ProductsKey    = "products"
	CartKey        = "cart"
	CurrentUserKey = "current_user"
)

// ErrCorruptState is returned when a persisted document no longer parses as
// the expected schema. Corrupt documents are rejected, never silently
// defaulted.
var ErrCorruptState = errors.New("corrupt persisted state")

// Store is a string-keyed, string-valued persistent store. Writes to separate
// keys are independent: there is no transaction spanning two keys, so a crash
// between related writes can leave them inconsistent. Callers sequence
// cross-key writes best-effort.
type Store interface {
	// Get returns the value for key, with found=false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GetJSON reads key and unmarshals it into out. Returns found=false when the
// key is absent, and ErrCorruptState when the stored document does not parse.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("%w: key %q: %v", ErrCorruptState, key, err)
	}
	return true, nil
}

// SetJSON marshals v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal key %q: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
