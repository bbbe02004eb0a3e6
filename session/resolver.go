// Package session resolves the active identity from the stored session
// record and implements signup/login on top of it. It does not perform
// authorization: it is a convenience accessor over already-established
// session state.
package session

import (
	"context"
	"encoding/json"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// Fallback identity sentinels used when no session is present or the
// stored record is corrupt. Read paths tolerate these; mutating
// surfaces reject the request before reaching the data layer.
const (
	FallbackFirmID = "firm_0"
	FallbackUserID = "unknown"
)

// Resolver reads and writes the single-record session key. It
// satisfies repository.Identity.
type Resolver struct {
	kv store.KV
}

// NewResolver creates a resolver over the given store.
func NewResolver(kv store.KV) *Resolver {
	return &Resolver{kv: kv}
}

// Current returns the session user, or nil when no session exists or
// the stored record is corrupt.
func (r *Resolver) Current(ctx context.Context) *models.User {
	payload, err := r.kv.Get(ctx, store.SessionKey)
	if err != nil || len(payload) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil
	}
	return &user
}

// CurrentFirmID returns the active tenant id, or FallbackFirmID.
func (r *Resolver) CurrentFirmID(ctx context.Context) string {
	if u := r.Current(ctx); u != nil && u.FirmID != "" {
		return u.FirmID
	}
	return FallbackFirmID
}

// CurrentUserID returns the active user id, or FallbackUserID.
func (r *Resolver) CurrentUserID(ctx context.Context) string {
	if u := r.Current(ctx); u != nil && u.ID != "" {
		return u.ID
	}
	return FallbackUserID
}

// Set stores the session user.
func (r *Resolver) Set(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, store.SessionKey, payload)
}

// Clear removes the session.
func (r *Resolver) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, store.SessionKey)
}
