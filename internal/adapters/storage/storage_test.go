package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakeenah/internal/domain"
)

// exerciseStore runs the shared get/set/remove contract against a backend.
func exerciseStore(t *testing.T, s domain.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "sakeenah_guest_name", "Zoë & Family"))
	v, ok, err := s.Get(ctx, "sakeenah_guest_name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Zoë & Family", v)

	require.NoError(t, s.Set(ctx, "sakeenah_guest_name", "Aisha"))
	v, _, _ = s.Get(ctx, "sakeenah_guest_name")
	assert.Equal(t, "Aisha", v)

	require.NoError(t, s.Remove(ctx, "sakeenah_guest_name"))
	_, ok, err = s.Get(ctx, "sakeenah_guest_name")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Remove(ctx, "never-set"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "store.json"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "sakeenah_wishes", `[{"id":"1"}]`))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "sakeenah_wishes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	require.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := DialRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	exerciseStore(t, NewRedisStore(client, "sakeenah-test:"))

	require.NoError(t, NewRedisStore(client, "sakeenah-test:").Set(context.Background(), "k", "v"))
	assert.True(t, mr.Exists("sakeenah-test:k"), "keys are stored under the prefix")
}

func TestDialRedis_URL(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := DialRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	store := NewRedisStore(client, "")
	require.NoError(t, store.Set(context.Background(), "sakeenah_wishes", "[]"))
	v, ok, err := store.Get(context.Background(), "sakeenah_wishes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := DialRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer client.Close()
	mr.Close()

	store := NewRedisStore(client, "sakeenah-test:")
	require.Error(t, store.Set(context.Background(), "k", "v"))
	_, _, err = store.Get(context.Background(), "k")
	require.Error(t, err)
}

func TestDialRedis_BadURL(t *testing.T) {
	_, err := DialRedis(context.Background(), "redis://localhost:notaport/0")
	require.ErrorContains(t, err, "parse redis url")
}

func TestCookieStore_WithinRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	exerciseStore(t, NewCookieStore(rr, req, CookieOptions{MaxAge: time.Hour}))
}

func TestCookieStore_AcrossRequests(t *testing.T) {
	ctx := context.Background()

	first := httptest.NewRecorder()
	s := NewCookieStore(first, httptest.NewRequest(http.MethodGet, "/", nil), CookieOptions{MaxAge: time.Hour, Secure: true})
	require.NoError(t, s.Set(ctx, "sakeenah_guest_name", "Bapak & Ibu Rahman"))

	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	second := httptest.NewRecorder()
	s2 := NewCookieStore(second, req, CookieOptions{MaxAge: time.Hour})
	v, ok, err := s2.Get(ctx, "sakeenah_guest_name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Bapak & Ibu Rahman", v)

	require.NoError(t, s2.Remove(ctx, "sakeenah_guest_name"))
	removed := second.Result().Cookies()
	require.Len(t, removed, 1)
	assert.Equal(t, -1, removed[0].MaxAge)
}
