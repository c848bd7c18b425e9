package services

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"sakeenah/internal/domain"
	"sakeenah/internal/namecodec"
)

// Storage keys of the identity namespace and the wishes snapshot.
const (
	KeyWeddingUID = "sakeenah_wedding_uid"
	KeyGuestName  = "sakeenah_guest_name"
	KeyGuestToken = "sakeenah_guest_token" // reserved, never written
	KeyTimestamp  = "sakeenah_timestamp"
	KeyWishes     = "sakeenah_wishes"
)

// DefaultIdentityTTL is how long a resolved identity survives without a write.
const DefaultIdentityTTL = 30 * 24 * time.Hour

var identityKeys = []string{KeyWeddingUID, KeyGuestName, KeyGuestToken, KeyTimestamp}

// IdentityStore owns the identity namespace of a KeyValueStore. All keys
// expire together once the last write is older than the TTL; expiry is
// checked lazily on every read. Storage failures are logged and never returned.
type IdentityStore struct {
	kv     domain.KeyValueStore
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewIdentityStore returns an IdentityStore over kv. A zero ttl means DefaultIdentityTTL;
// a nil now means time.Now.
func NewIdentityStore(kv domain.KeyValueStore, ttl time.Duration, now func() time.Time, logger *slog.Logger) *IdentityStore {
	if ttl <= 0 {
		ttl = DefaultIdentityTTL
	}
	if now == nil {
		now = time.Now
	}
	return &IdentityStore{kv: kv, ttl: ttl, now: now, logger: logger}
}

// UID returns the stored invitation UID, or "" when absent or expired.
func (s *IdentityStore) UID(ctx context.Context) string {
	return s.read(ctx, KeyWeddingUID)
}

// GuestName returns the stored guest name, or "" when absent or expired.
func (s *IdentityStore) GuestName(ctx context.Context) string {
	return s.read(ctx, KeyGuestName)
}

// Identity returns the whole namespace. The zero value means absent.
func (s *IdentityStore) Identity(ctx context.Context) domain.InvitationIdentity {
	ts, ok := s.lastWrite(ctx)
	if !ok || s.expired(ts) {
		s.Clear(ctx)
		return domain.InvitationIdentity{}
	}
	return domain.InvitationIdentity{
		UID:        s.get(ctx, KeyWeddingUID),
		GuestName:  s.get(ctx, KeyGuestName),
		ResolvedAt: ts,
	}
}

// HasIdentity reports whether a non-expired UID is stored.
func (s *IdentityStore) HasIdentity(ctx context.Context) bool {
	return s.UID(ctx) != ""
}

// SetUID stores uid and refreshes the timestamp. Empty values are ignored.
func (s *IdentityStore) SetUID(ctx context.Context, uid string) {
	s.write(ctx, KeyWeddingUID, uid)
}

// SetGuestName stores name and refreshes the timestamp. Empty values are ignored.
func (s *IdentityStore) SetGuestName(ctx context.Context, name string) {
	s.write(ctx, KeyGuestName, name)
}

// Clear removes every identity key.
func (s *IdentityStore) Clear(ctx context.Context) {
	for _, k := range identityKeys {
		if err := s.kv.Remove(ctx, k); err != nil {
			s.logger.WarnContext(ctx, "identity: remove failed", "key", k, "err", err)
		}
	}
}

func (s *IdentityStore) read(ctx context.Context, key string) string {
	ts, ok := s.lastWrite(ctx)
	if !ok || s.expired(ts) {
		s.Clear(ctx)
		return ""
	}
	return s.get(ctx, key)
}

func (s *IdentityStore) get(ctx context.Context, key string) string {
	v, _, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "identity: read failed", "key", key, "err", err)
		return ""
	}
	return v
}

func (s *IdentityStore) write(ctx context.Context, key, value string) {
	if value == "" {
		return
	}
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.logger.ErrorContext(ctx, "identity: write failed", "key", key, "err", err)
		return
	}
	stamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.kv.Set(ctx, KeyTimestamp, stamp); err != nil {
		s.logger.ErrorContext(ctx, "identity: write timestamp failed", "err", err)
	}
}

// lastWrite parses the timestamp key (milliseconds since the epoch).
func (s *IdentityStore) lastWrite(ctx context.Context) (time.Time, bool) {
	raw := s.get(ctx, KeyTimestamp)
	if raw == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func (s *IdentityStore) expired(ts time.Time) bool {
	return s.now().Sub(ts) > s.ttl
}

// PageLocation is the address a visitor arrived at.
type PageLocation struct {
	Path  string
	Query url.Values
}

// ParseLocation splits a request URI into a PageLocation.
func ParseLocation(u *url.URL) PageLocation {
	return PageLocation{Path: u.Path, Query: u.Query()}
}

// PathSegments returns the non-empty path segments.
func (l PageLocation) PathSegments() []string {
	var segs []string
	for _, s := range strings.Split(l.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// carriesIdentity reports whether the address exposes a uid or guest name.
func (l PageLocation) carriesIdentity() bool {
	if len(l.PathSegments()) > 0 {
		return true
	}
	return l.Query.Has("guest") || l.Query.Has("uid")
}

// Resolver decides which invitation and guest the current visitor represents.
type Resolver struct {
	store    *IdentityStore
	logger   *slog.Logger
	warnOnce sync.Once
}

// NewResolver returns a Resolver persisting into store.
func NewResolver(store *IdentityStore, logger *slog.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// ResolveUID returns the invitation UID for the visitor, trying in order the
// persisted UID, the first path segment, the "uid" query parameter and
// fallback. A UID found outside storage is persisted. It returns "" when no
// source yields one.
func (r *Resolver) ResolveUID(ctx context.Context, pathSegments []string, query url.Values, fallback string) string {
	if uid := r.store.UID(ctx); uid != "" {
		return uid
	}

	uid := ""
	for _, seg := range pathSegments {
		if seg = strings.TrimSpace(seg); seg != "" {
			uid = seg
			break
		}
	}
	if uid == "" {
		uid = strings.TrimSpace(query.Get("uid"))
	}
	if uid == "" {
		uid = strings.TrimSpace(fallback)
	}
	if uid == "" {
		r.warnOnce.Do(func() {
			r.logger.WarnContext(ctx, "no invitation UID found; provide /your-uid in the URL or set INVITATION_UID")
		})
		return ""
	}

	r.store.SetUID(ctx, uid)
	return uid
}

// ExtractAndStoreGuestName decodes the "guest" query parameter and stores it.
// Decode failures are logged and ignored.
func (r *Resolver) ExtractAndStoreGuestName(ctx context.Context, query url.Values) {
	encoded := query.Get("guest")
	if encoded == "" {
		return
	}
	name, err := namecodec.Decode(encoded)
	if err != nil {
		r.logger.WarnContext(ctx, "could not decode guest name", "err", err)
		return
	}
	r.store.SetGuestName(ctx, strings.TrimSpace(name))
}

// NormalizeURL replaces the visible address with "/" when loc exposed an
// identity and the identity has been captured in storage.
func (r *Resolver) NormalizeURL(ctx context.Context, loc PageLocation, bar domain.AddressBar) {
	if !loc.carriesIdentity() {
		return
	}
	if !r.store.HasIdentity(ctx) {
		return
	}
	bar.Replace("/")
}

// Resolve runs the full page-load flow and returns the resulting identity.
func (r *Resolver) Resolve(ctx context.Context, loc PageLocation, fallback string, bar domain.AddressBar) domain.InvitationIdentity {
	uid := r.ResolveUID(ctx, loc.PathSegments(), loc.Query, fallback)
	r.ExtractAndStoreGuestName(ctx, loc.Query)
	r.NormalizeURL(ctx, loc, bar)
	id := r.store.Identity(ctx)
	if uid != "" {
		id.UID = uid
	}
	return id
}
