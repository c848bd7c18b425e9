package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakeenah/internal/adapters/storage"
	"sakeenah/internal/namecodec"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeClock is a settable clock for expiry tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recordingBar captures address replacements.
type recordingBar struct{ replaced []string }

func (b *recordingBar) Replace(path string) { b.replaced = append(b.replaced, path) }

// failingKV fails every operation.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("permission denied")
}
func (failingKV) Set(context.Context, string, string) error { return errors.New("quota exceeded") }
func (failingKV) Remove(context.Context, string) error      { return errors.New("permission denied") }

func newIdentityFixture() (*storage.MemoryStore, *fakeClock, *IdentityStore, *Resolver) {
	kv := storage.NewMemoryStore()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewIdentityStore(kv, 0, clock.Now, discardLogger)
	return kv, clock, store, NewResolver(store, discardLogger)
}

func TestIdentityStore_RoundTripWithinTTL(t *testing.T) {
	ctx := context.Background()
	_, clock, store, _ := newIdentityFixture()

	store.SetUID(ctx, "afreen-hridhin-2025")
	clock.Advance(29 * 24 * time.Hour)

	assert.Equal(t, "afreen-hridhin-2025", store.UID(ctx))
}

func TestIdentityStore_ExpiryClearsAllKeys(t *testing.T) {
	ctx := context.Background()
	kv, clock, store, _ := newIdentityFixture()

	store.SetUID(ctx, "afreen-hridhin-2025")
	store.SetGuestName(ctx, "Aisha")
	require.NoError(t, kv.Set(ctx, KeyGuestToken, "tok"))
	clock.Advance(30*24*time.Hour + time.Millisecond)

	assert.Equal(t, "", store.UID(ctx))
	for _, k := range []string{KeyWeddingUID, KeyGuestName, KeyGuestToken, KeyTimestamp} {
		_, ok, err := kv.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, "key %s should be cleared", k)
	}
}

func TestIdentityStore_ExactlyTTLIsNotExpired(t *testing.T) {
	ctx := context.Background()
	_, clock, store, _ := newIdentityFixture()

	store.SetGuestName(ctx, "Aisha")
	clock.Advance(30 * 24 * time.Hour)

	assert.Equal(t, "Aisha", store.GuestName(ctx))
}

func TestIdentityStore_WriteRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	kv, clock, store, _ := newIdentityFixture()

	store.SetUID(ctx, "uid-1")
	clock.Advance(20 * 24 * time.Hour)
	store.SetGuestName(ctx, "Aisha")
	clock.Advance(20 * 24 * time.Hour)

	id := store.Identity(ctx)
	assert.Equal(t, "uid-1", id.UID)
	assert.Equal(t, "Aisha", id.GuestName)
	assert.Equal(t, clock.t.Add(-20*24*time.Hour).UnixMilli(), id.ResolvedAt.UnixMilli())

	raw, _, _ := kv.Get(ctx, KeyTimestamp)
	assert.Equal(t, strconv.FormatInt(id.ResolvedAt.UnixMilli(), 10), raw)
}

func TestIdentityStore_MissingOrBadTimestampIsExpired(t *testing.T) {
	ctx := context.Background()
	kv, _, store, _ := newIdentityFixture()

	require.NoError(t, kv.Set(ctx, KeyWeddingUID, "orphan"))
	assert.Equal(t, "", store.UID(ctx))
	_, ok, _ := kv.Get(ctx, KeyWeddingUID)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, KeyWeddingUID, "orphan"))
	require.NoError(t, kv.Set(ctx, KeyTimestamp, "yesterday"))
	assert.Equal(t, "", store.UID(ctx))
}

func TestIdentityStore_EmptyWritesIgnored(t *testing.T) {
	ctx := context.Background()
	kv, _, store, _ := newIdentityFixture()

	store.SetUID(ctx, "")
	store.SetGuestName(ctx, "")

	_, ok, _ := kv.Get(ctx, KeyTimestamp)
	assert.False(t, ok)
}

func TestIdentityStore_StorageErrorsAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := NewIdentityStore(failingKV{}, time.Hour, nil, discardLogger)

	require.NotPanics(t, func() {
		store.SetUID(ctx, "uid")
		store.SetGuestName(ctx, "Aisha")
		store.Clear(ctx)
	})
	assert.Equal(t, "", store.UID(ctx))
	assert.False(t, store.HasIdentity(ctx))
}

func TestResolver_ResolveUID_Priority(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   string
		segments []string
		query    url.Values
		fallback string
		want     string
	}{
		{"path", "", []string{"afreen-hridhin-2025"}, url.Values{}, "env-uid", "afreen-hridhin-2025"},
		{"empty segments skipped", "", []string{"", "second"}, url.Values{}, "", "second"},
		{"query when no path", "", nil, url.Values{"uid": {"query-uid"}}, "env-uid", "query-uid"},
		{"fallback last", "", nil, url.Values{}, "env-uid", "env-uid"},
		{"stored beats everything", "xyz", []string{"new-uid"}, url.Values{"uid": {"q"}}, "env-uid", "xyz"},
		{"nothing", "", nil, url.Values{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, store, resolver := newIdentityFixture()
			store.SetUID(ctx, tt.stored)

			got := resolver.ResolveUID(ctx, tt.segments, tt.query, tt.fallback)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, store.UID(ctx))
		})
	}
}

func TestResolver_PersistedWinsAfterTenDays(t *testing.T) {
	ctx := context.Background()
	_, clock, store, resolver := newIdentityFixture()

	store.SetUID(ctx, "xyz")
	clock.Advance(10 * 24 * time.Hour)

	assert.Equal(t, "xyz", resolver.ResolveUID(ctx, []string{"new-uid"}, url.Values{}, ""))
}

func TestResolver_ExpiredIdentityReResolvesFromURL(t *testing.T) {
	ctx := context.Background()
	_, clock, store, resolver := newIdentityFixture()

	store.SetUID(ctx, "old-uid")
	clock.Advance(31 * 24 * time.Hour)

	assert.Equal(t, "new-uid", resolver.ResolveUID(ctx, []string{"new-uid"}, url.Values{}, ""))
	assert.Equal(t, "new-uid", store.UID(ctx))
}

func TestResolver_ExtractAndStoreGuestName(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		_, _, store, resolver := newIdentityFixture()
		resolver.ExtractAndStoreGuestName(ctx, url.Values{"guest": {namecodec.Encode("Bapak & Ibu Rahman")}})
		assert.Equal(t, "Bapak & Ibu Rahman", store.GuestName(ctx))
	})

	t.Run("garbage is ignored", func(t *testing.T) {
		_, _, store, resolver := newIdentityFixture()
		store.SetGuestName(ctx, "Previous")
		require.NotPanics(t, func() {
			resolver.ExtractAndStoreGuestName(ctx, url.Values{"guest": {"%%%"}})
		})
		assert.Equal(t, "Previous", store.GuestName(ctx))
	})

	t.Run("absent", func(t *testing.T) {
		kv, _, _, resolver := newIdentityFixture()
		resolver.ExtractAndStoreGuestName(ctx, url.Values{})
		_, ok, _ := kv.Get(ctx, KeyGuestName)
		assert.False(t, ok)
	})
}

func TestResolver_NormalizeURL(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		loc       PageLocation
		stored    string
		wantCalls []string
	}{
		{"path with identity", PageLocation{Path: "/abc", Query: url.Values{}}, "abc", []string{"/"}},
		{"guest query", PageLocation{Path: "/", Query: url.Values{"guest": {"QWhtYWQ"}}}, "abc", []string{"/"}},
		{"uid query", PageLocation{Path: "/", Query: url.Values{"uid": {"abc"}}}, "abc", []string{"/"}},
		{"root stays", PageLocation{Path: "/", Query: url.Values{}}, "abc", nil},
		{"no identity stored", PageLocation{Path: "/abc", Query: url.Values{}}, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, store, resolver := newIdentityFixture()
			store.SetUID(ctx, tt.stored)
			bar := &recordingBar{}

			resolver.NormalizeURL(ctx, tt.loc, bar)
			assert.Equal(t, tt.wantCalls, bar.replaced)
		})
	}
}

func TestResolver_Resolve_FirstVisitScenario(t *testing.T) {
	ctx := context.Background()
	_, _, store, resolver := newIdentityFixture()
	u, err := url.Parse("/afreen-hridhin-2025?guest=" + namecodec.Encode("Aisha"))
	require.NoError(t, err)
	bar := &recordingBar{}

	id := resolver.Resolve(ctx, ParseLocation(u), "", bar)

	assert.Equal(t, "afreen-hridhin-2025", id.UID)
	assert.Equal(t, "Aisha", id.GuestName)
	assert.Equal(t, "afreen-hridhin-2025", store.UID(ctx))
	assert.Equal(t, []string{"/"}, bar.replaced)
}

func TestResolver_Resolve_NoIdentity(t *testing.T) {
	ctx := context.Background()
	_, _, _, resolver := newIdentityFixture()
	bar := &recordingBar{}

	id := resolver.Resolve(ctx, PageLocation{Path: "/", Query: url.Values{}}, "", bar)

	assert.Equal(t, "", id.UID)
	assert.Empty(t, bar.replaced)
}
