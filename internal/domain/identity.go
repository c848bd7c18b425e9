package domain

import (
	"context"
	"time"
)

// InvitationIdentity is the visitor identity held in the identity namespace.
type InvitationIdentity struct {
	UID        string    `json:"uid"`
	GuestName  string    `json:"guest_name"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// KeyValueStore is a string key/value backend (browser-style local storage).
// Get reports ok=false for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// AddressBar replaces the visible location without a reload.
type AddressBar interface {
	Replace(path string)
}
